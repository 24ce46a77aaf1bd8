// Package units converts size values written as bare numbers or unit-suffixed
// strings ("12", "12px", "12dp") into pixels.
package units

import (
	"fmt"
	"io"
	"strings"

	"github.com/chewxy/math32"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/strconv"
)

// Resolver turns a size value into pixels.
type Resolver interface {
	Pixels(v any) (float32, error)
}

// UnresolvedUnitError is returned when a size token cannot be converted.
type UnresolvedUnitError struct {
	Value any
	// Unit is the offending suffix, empty when the value was not a size at all.
	Unit string
}

func (e *UnresolvedUnitError) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("unresolved unit %q in %v", e.Unit, e.Value)
	}
	return fmt.Sprintf("cannot resolve %v (%T) to pixels", e.Value, e.Value)
}

// Density resolves px as identity and dp/dip as Scale pixels per unit.
type Density struct {
	Scale float32
}

// DefaultDensity is one pixel per dp.
var DefaultDensity = Density{Scale: 1}

// Pixels implements Resolver. Numbers of any Go numeric kind are already pixels.
func (d Density) Pixels(v any) (float32, error) {
	if f, ok := Float(v); ok {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return 0, &UnresolvedUnitError{Value: v}
		}
		return f, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, &UnresolvedUnitError{Value: v}
	}
	num, unit, err := split(s)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "", "px":
		return num, nil
	case "dp", "dip":
		scale := d.Scale
		if scale <= 0 {
			scale = 1
		}
		return num * scale, nil
	}
	return 0, &UnresolvedUnitError{Value: s, Unit: unit}
}

// split lexes s as a single CSS number or dimension token.
func split(s string) (float32, string, error) {
	l := css.NewLexer(parse.NewInputString(strings.TrimSpace(s)))
	var num float32
	var unit string
	seen := false
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if l.Err() != io.EOF || !seen {
				return 0, "", &UnresolvedUnitError{Value: s}
			}
			return num, unit, nil
		case css.WhitespaceToken:
			continue
		case css.NumberToken, css.DimensionToken:
			if seen {
				return 0, "", &UnresolvedUnitError{Value: s}
			}
			n, u := parse.Dimension(data)
			f, m := strconv.ParseFloat(data[:n])
			if m != n {
				return 0, "", &UnresolvedUnitError{Value: s}
			}
			num = float32(f)
			unit = strings.ToLower(string(data[n : n+u]))
			seen = true
		default:
			return 0, "", &UnresolvedUnitError{Value: s, Unit: string(data)}
		}
	}
}

// Float reports v as a float32 when it holds a Go numeric value.
func Float(v any) (float32, bool) {
	switch n := v.(type) {
	case float32:
		return n, true
	case float64:
		return float32(n), true
	case int:
		return float32(n), true
	case int8:
		return float32(n), true
	case int16:
		return float32(n), true
	case int32:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint:
		return float32(n), true
	case uint8:
		return float32(n), true
	case uint16:
		return float32(n), true
	case uint32:
		return float32(n), true
	case uint64:
		return float32(n), true
	}
	return 0, false
}
