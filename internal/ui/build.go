package ui

import (
	"fmt"

	"viewkit/internal/view"
	"viewkit/internal/widgets"
)

// Constructor builds the view for one layout node from its merged attributes and
// its already-built children.
type Constructor func(env view.Env, attrs view.Bag, children []*view.View) (*view.View, error)

// Registry maps layout node types to constructors.
type Registry map[string]Constructor

// DefaultRegistry knows the built-in widget types.
func DefaultRegistry() Registry {
	return Registry{
		"view": func(env view.Env, attrs view.Bag, children []*view.View) (*view.View, error) {
			if len(children) > 0 {
				return nil, fmt.Errorf("view cannot have children")
			}
			return view.New(env, attrs, view.Behavior{})
		},
		"box": func(env view.Env, attrs view.Bag, children []*view.View) (*view.View, error) {
			b, err := widgets.NewBox(env, attrs, children...)
			if err != nil {
				return nil, err
			}
			return b.View, nil
		},
		"label": func(env view.Env, attrs view.Bag, children []*view.View) (*view.View, error) {
			if len(children) > 0 {
				return nil, fmt.Errorf("label cannot have children")
			}
			l, err := widgets.NewLabel(env, attrs)
			if err != nil {
				return nil, err
			}
			return l.View, nil
		},
		"image": func(env view.Env, attrs view.Bag, children []*view.View) (*view.View, error) {
			if len(children) > 0 {
				return nil, fmt.Errorf("image cannot have children")
			}
			im, err := widgets.NewImage(env, attrs)
			if err != nil {
				return nil, err
			}
			return im.View, nil
		},
	}
}

// Element is a built layout node: the document node, its view and its children.
type Element struct {
	Node     *Node
	View     *view.View
	Parent   *Element
	Children []*Element
}

// Walk calls fn for e and every descendant, depth first.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Build turns a layout document into views. Children are built first so a
// container measures them on its first pass.
func Build(doc *Node, env view.Env, sheet *Stylesheet, reg Registry) (*Element, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return build(doc, env, sheet, reg, "root")
}

func build(n *Node, env view.Env, sheet *Stylesheet, reg Registry, path string) (*Element, error) {
	ctor, ok := reg[n.Type]
	if !ok {
		return nil, fmt.Errorf("%s: unknown type %q", path, n.Type)
	}
	el := &Element{Node: n}
	kids := make([]*view.View, 0, len(n.Children))
	for i, c := range n.Children {
		child, err := build(c, env, sheet, reg, fmt.Sprintf("%s/%d", path, i))
		if err != nil {
			return nil, err
		}
		child.Parent = el
		el.Children = append(el.Children, child)
		kids = append(kids, child.View)
	}
	v, err := ctor(env, sheet.Merge(n.Class, n.ID, n.bag()), kids)
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", path, n.Type, err)
	}
	el.View = v
	return el, nil
}
