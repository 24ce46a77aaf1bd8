package ui

import (
	"fmt"
	"strings"

	"viewkit/internal/view"
)

// Inspector renders the resolved state of views as text lines, one block per
// view: identity, geometry, spacing, alignment and selector.
type Inspector struct {
	// Indent is repeated once per tree depth.
	Indent string
}

// NewInspector returns an inspector indenting with two spaces.
func NewInspector() *Inspector {
	return &Inspector{Indent: "  "}
}

// Selection is the resolved state shown for one view.
type Selection struct {
	Name         string
	LayoutWidth  float32
	LayoutHeight float32
	ViewWidth    float32
	ViewHeight   float32
	OffsetX      float32
	OffsetY      float32
	Margin       view.Insets
	Padding      view.Insets
	Align        view.Align
	Selector     string
	Hints        [2]view.LayoutHint
}

// Select captures the resolved state of v under name.
func Select(name string, v *view.View) Selection {
	hw, hh := v.Hints()
	return Selection{
		Name:         name,
		LayoutWidth:  v.LayoutWidth(),
		LayoutHeight: v.LayoutHeight(),
		ViewWidth:    v.ViewWidth(),
		ViewHeight:   v.ViewHeight(),
		OffsetX:      v.AlignOffsetX(),
		OffsetY:      v.AlignOffsetY(),
		Margin:       v.Margin(),
		Padding:      v.Padding(),
		Align:        v.Align(),
		Selector:     v.Selector(),
		Hints:        [2]view.LayoutHint{hw, hh},
	}
}

// Lines formats one selection.
func (in *Inspector) Lines(sel Selection) []string {
	return []string{
		"Name: " + sel.Name,
		fmt.Sprintf("Layout: %gx%g (%s, %s)", sel.LayoutWidth, sel.LayoutHeight, sel.Hints[0], sel.Hints[1]),
		fmt.Sprintf("Content: %gx%g at %g, %g", sel.ViewWidth, sel.ViewHeight, sel.OffsetX, sel.OffsetY),
		fmt.Sprintf("Margin: %s Padding: %s", sel.Margin, sel.Padding),
		fmt.Sprintf("Align: %s Selector: %q", sel.Align, sel.Selector),
	}
}

// Dump appends the lines of every element under root to dst, indented by depth.
func (in *Inspector) Dump(dst []string, root *Element) []string {
	return in.dump(dst, root, 0)
}

func (in *Inspector) dump(dst []string, el *Element, depth int) []string {
	pad := strings.Repeat(in.Indent, depth)
	for _, line := range in.Lines(Select(elementName(el), el.View)) {
		dst = append(dst, pad+line)
	}
	for _, c := range el.Children {
		dst = in.dump(dst, c, depth+1)
	}
	return dst
}

// elementName is type, then #id, then .class for each class.
func elementName(el *Element) string {
	name := el.Node.Type
	if el.Node.ID != "" {
		name += "#" + el.Node.ID
	}
	for _, c := range strings.Fields(el.Node.Class) {
		name += "." + c
	}
	return name
}
