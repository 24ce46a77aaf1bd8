// Package host describes the rendering primitives a view draws through.
// Implementations own the real scene graph; views only hold Node handles.
package host

import (
	"image/color"

	"viewkit/internal/resource"
)

// Rect is an axis-aligned rectangle in the coordinate space of its node.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Contains reports whether the point lies inside r (right/bottom edges excluded).
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.Width && y < r.Y+r.Height
}

// ShapeKind selects the drawable used for a Shape.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeRoundedRect
	ShapeCircle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRoundedRect:
		return "roundedRect"
	case ShapeCircle:
		return "circle"
	default:
		return "rect"
	}
}

// Shape is a filled and optionally stroked primitive. Alpha is carried in the colours.
// For circles, Bounds is the bounding square and Radius is half its side.
type Shape struct {
	Kind        ShapeKind
	Bounds      Rect
	Radius      float32
	Fill        color.RGBA
	BorderWidth float32
	Border      color.RGBA
}

// Text is a single run of text drawn from its node origin.
type Text struct {
	Content string
	Size    float32
	Color   color.RGBA
}

// Sprite draws a texture scaled to Width x Height.
type Sprite struct {
	Texture resource.Texture
	Width   float32
	Height  float32
}

// TapEvent carries the tap position relative to the tapped node.
type TapEvent struct {
	X, Y float32
}

// Node is a composable element of the host scene graph.
type Node interface {
	AddChild(child Node)
	// AddChildAt inserts child at index; index 0 is drawn first (bottommost).
	AddChildAt(child Node, index int)
	RemoveChild(child Node)
	SetPosition(x, y float32)
	SetInteractive(interactive bool)
	SetTap(fn func(TapEvent))
	SetHitArea(r Rect)
}

// Factory creates host nodes.
type Factory interface {
	NewNode() Node
	NewShape(s Shape) Node
	NewText(t Text) Node
	NewSprite(s Sprite) Node
}
