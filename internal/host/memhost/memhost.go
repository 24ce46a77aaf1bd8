// Package memhost is an in-memory host scene graph. It draws nothing and records
// everything, which makes it the host for tests and headless layout dumps.
package memhost

import (
	"slices"

	"viewkit/internal/host"
)

// Kind tells what a Node was created as.
type Kind int

const (
	KindContainer Kind = iota
	KindShape
	KindText
	KindSprite
)

// Node is a recorded host node.
type Node struct {
	Kind        Kind
	Shape       host.Shape
	Text        host.Text
	Sprite      host.Sprite
	X, Y        float32
	Interactive bool
	HitArea     host.Rect
	Parent      *Node

	children []*Node
	tap      func(host.TapEvent)
}

// Factory implements host.Factory.
type Factory struct{}

// New returns a memhost factory.
func New() *Factory {
	return &Factory{}
}

func (f *Factory) NewNode() host.Node { return &Node{Kind: KindContainer} }

func (f *Factory) NewShape(s host.Shape) host.Node { return &Node{Kind: KindShape, Shape: s} }

func (f *Factory) NewText(t host.Text) host.Node { return &Node{Kind: KindText, Text: t} }

func (f *Factory) NewSprite(s host.Sprite) host.Node { return &Node{Kind: KindSprite, Sprite: s} }

// Children returns the child list in draw order.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) AddChild(child host.Node) {
	n.AddChildAt(child, len(n.children))
}

func (n *Node) AddChildAt(child host.Node, index int) {
	c := child.(*Node)
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	index = max(0, min(index, len(n.children)))
	n.children = slices.Insert(n.children, index, c)
	c.Parent = n
}

func (n *Node) RemoveChild(child host.Node) {
	c, ok := child.(*Node)
	if !ok {
		return
	}
	if i := slices.Index(n.children, c); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
		c.Parent = nil
	}
}

func (n *Node) SetPosition(x, y float32) {
	n.X, n.Y = x, y
}

func (n *Node) SetInteractive(interactive bool) {
	n.Interactive = interactive
}

func (n *Node) SetTap(fn func(host.TapEvent)) {
	n.tap = fn
}

func (n *Node) SetHitArea(r host.Rect) {
	n.HitArea = r
}

// Tap delivers a tap at node-local coordinates. It reports whether a handler ran.
func (n *Node) Tap(x, y float32) bool {
	if !n.Interactive || n.tap == nil {
		return false
	}
	n.tap(host.TapEvent{X: x, Y: y})
	return true
}

// Pick returns the topmost interactive node whose hit area contains the point,
// given in n's coordinate space, and the point translated into that node.
func (n *Node) Pick(x, y float32) (*Node, float32, float32) {
	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		if hit, hx, hy := c.Pick(x-c.X, y-c.Y); hit != nil {
			return hit, hx, hy
		}
	}
	if n.Interactive && n.HitArea.Contains(x, y) {
		return n, x, y
	}
	return nil, 0, 0
}
