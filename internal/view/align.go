package view

import (
	"regexp"
	"strings"

	"github.com/chewxy/math32"

	"viewkit/internal/units"
)

// Align is a 2D alignment bitmask: at most one horizontal and one vertical bit
// is meaningful. Left and top are the zero value on their axis.
type Align int

const (
	AlignLeft   Align = 0x00
	AlignCenter Align = 0x01
	AlignRight  Align = 0x02
	AlignTop    Align = 0x04
	AlignMiddle Align = 0x08
	AlignBottom Align = 0x10
)

// AlignGrammar is the accepted textual form of an alignment.
const AlignGrammar = "left|center|right|top|middle|bottom"

var alignNames = map[string]Align{
	"left":   AlignLeft,
	"center": AlignCenter,
	"right":  AlignRight,
	"top":    AlignTop,
	"middle": AlignMiddle,
	"bottom": AlignBottom,
}

var alignPattern = regexp.MustCompile(`^(left|center|right|top|middle|bottom)(\|(left|center|right|top|middle|bottom))*$`)

// ParseAlign accepts a "|"-joined list of alignment names or an integer bitmask.
// Integral floats pass, since decoders produce them; fractions, NaN and Inf fail.
func ParseAlign(v any) (Align, error) {
	if s, ok := v.(string); ok {
		if !alignPattern.MatchString(s) {
			return 0, &AttributeFormatError{Key: "align", Value: v, Expected: AlignGrammar}
		}
		var a Align
		for _, name := range strings.Split(s, "|") {
			a |= alignNames[name]
		}
		return a, nil
	}
	if f, ok := units.Float(v); ok && !math32.IsNaN(f) && !math32.IsInf(f, 0) && f == math32.Trunc(f) {
		return Align(int(f)), nil
	}
	return 0, &AttributeFormatError{Key: "align", Value: v, Expected: "string (" + AlignGrammar + ") or integer bitmask"}
}

// String renders the mask in the textual grammar; the zero axes are spelled out.
func (a Align) String() string {
	h := "left"
	switch {
	case a&AlignRight != 0:
		h = "right"
	case a&AlignCenter != 0:
		h = "center"
	}
	v := "top"
	switch {
	case a&AlignBottom != 0:
		v = "bottom"
	case a&AlignMiddle != 0:
		v = "middle"
	}
	return h + "|" + v
}
