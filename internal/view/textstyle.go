package view

import (
	"image/color"

	"viewkit/internal/units"
)

// TextStyle is a text style object. Only fontSize is resolved (to float32 pixels);
// every other field passes through as authored.
type TextStyle map[string]any

// Merge returns a copy of s with src's fields laid over it.
func (s TextStyle) Merge(src TextStyle) TextStyle {
	out := make(TextStyle, len(s)+len(src))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range src {
		out[k] = v
	}
	return out
}

// FontSize returns the resolved font size.
func (s TextStyle) FontSize() (float32, bool) {
	return units.Float(s["fontSize"])
}

// Fill returns the text colour from "fill" or "color".
func (s TextStyle) Fill() (color.RGBA, bool) {
	for _, key := range []string{"fill", "color"} {
		if v, ok := s[key]; ok {
			if c, err := ParseColor(v); err == nil {
				return c, true
			}
		}
	}
	return color.RGBA{}, false
}
