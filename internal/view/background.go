package view

import (
	"image/color"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"

	"viewkit/internal/host"
	"viewkit/internal/units"
)

// Background is a resolved background style for one selector.
type Background struct {
	Shape       host.ShapeKind
	FillColor   color.RGBA
	FillAlpha   float32
	BorderWidth float32
	BorderColor color.RGBA
	BorderAlpha float32
	// CornerRadius below 1 is a fraction of the shorter layout side.
	CornerRadius float32
}

var shapeNames = map[string]host.ShapeKind{
	"rect":        host.ShapeRect,
	"roundedRect": host.ShapeRoundedRect,
	"circle":      host.ShapeCircle,
}

func (a *Attrs) background(key string, m map[string]any) (*Background, error) {
	bg := &Background{FillAlpha: 1, BorderAlpha: 1}
	if v, ok := m["type"]; ok {
		name, _ := v.(string)
		shape, known := shapeNames[name]
		if !known {
			return nil, &AttributeFormatError{Key: key + ".type", Value: v, Expected: "rect|roundedRect|circle"}
		}
		bg.Shape = shape
	}
	if v, ok := m["fillColor"]; ok {
		c, err := ParseColor(v)
		if err != nil {
			return nil, &AttributeFormatError{Key: key + ".fillColor", Value: v, Expected: "colour"}
		}
		bg.FillColor = c
	} else {
		bg.FillAlpha = 0
	}
	if v, ok := m["borderColor"]; ok {
		c, err := ParseColor(v)
		if err != nil {
			return nil, &AttributeFormatError{Key: key + ".borderColor", Value: v, Expected: "colour"}
		}
		bg.BorderColor = c
	}
	for _, f := range []struct {
		name string
		dst  *float32
	}{
		{"fillAlpha", &bg.FillAlpha},
		{"borderAlpha", &bg.BorderAlpha},
	} {
		if v, ok := m[f.name]; ok {
			alpha, isNum := units.Float(v)
			if !isNum || alpha < 0 || alpha > 1 {
				return nil, &AttributeFormatError{Key: key + "." + f.name, Value: v, Expected: "number in [0, 1]"}
			}
			*f.dst = alpha
		}
	}
	for _, f := range []struct {
		name string
		dst  *float32
	}{
		{"borderWidth", &bg.BorderWidth},
		{"cornerRadius", &bg.CornerRadius},
	} {
		if v, ok := m[f.name]; ok {
			px, err := a.units.Pixels(v)
			if err != nil {
				return nil, err
			}
			*f.dst = px
		}
	}
	return bg, nil
}

// shape lays the background out over a w x h box.
func (bg *Background) shape(w, h float32) host.Shape {
	s := host.Shape{
		Kind:        bg.Shape,
		Bounds:      host.Rect{Width: w, Height: h},
		Fill:        withAlpha(bg.FillColor, bg.FillAlpha),
		BorderWidth: bg.BorderWidth,
		Border:      withAlpha(bg.BorderColor, bg.BorderAlpha),
	}
	short := math32.Min(w, h)
	switch bg.Shape {
	case host.ShapeCircle:
		r := short / 2
		s.Radius = r
		s.Bounds = host.Rect{Width: 2 * r, Height: 2 * r}
	case host.ShapeRoundedRect:
		r := bg.CornerRadius
		if r > 0 && r < 1 {
			r *= short
		}
		s.Radius = r
	}
	return s
}

func withAlpha(c color.RGBA, alpha float32) color.RGBA {
	c.A = uint8(math32.Round(math32.Max(0, math32.Min(1, alpha)) * 255))
	return c
}

// ParseColor accepts #RGB, #RRGGBB, an SVG colour name, or a 0xRRGGBB number.
// The result is opaque; alpha is applied separately.
func ParseColor(v any) (color.RGBA, error) {
	if n, ok := units.Float(v); ok {
		rgb := uint32(n)
		return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}, nil
	}
	s, ok := v.(string)
	if !ok {
		return color.RGBA{}, &AttributeFormatError{Key: "color", Value: v, Expected: "colour"}
	}
	s = strings.TrimSpace(s)
	if c, ok := parseHexColor(s); ok {
		return c, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, &AttributeFormatError{Key: "color", Value: v, Expected: "#RGB, #RRGGBB or colour name"}
}

func parseHexColor(s string) (color.RGBA, bool) {
	if len(s) < 4 || s[0] != '#' {
		return color.RGBA{}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return color.RGBA{}, false
		}
	}
	nib := func(i int) uint8 { b, _ := hexByte(hex[i]); return b }
	switch len(hex) {
	case 3:
		return color.RGBA{R: nib(0) * 17, G: nib(1) * 17, B: nib(2) * 17, A: 255}, true
	case 6:
		return color.RGBA{R: nib(0)<<4 + nib(1), G: nib(2)<<4 + nib(3), B: nib(4)<<4 + nib(5), A: 255}, true
	}
	return color.RGBA{}, false
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
