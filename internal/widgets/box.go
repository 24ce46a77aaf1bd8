package widgets

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"

	"viewkit/internal/view"
)

// Orientation is the stacking direction of a Box.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Box stacks child views along one axis. Attributes: orientation, spacing.
// Children arrive as the view's positional arguments and must be *view.View.
type Box struct {
	*view.View
	children []*view.View
}

// NewBox builds a box around children.
func NewBox(env view.Env, attrs view.Bag, children ...*view.View) (*Box, error) {
	b := &Box{}
	args := make([]any, len(children))
	for i, c := range children {
		args[i] = c
	}
	v, err := view.New(env, attrs, view.Behavior{
		ParseAttrs: b.parseAttrs,
		ParseArgs:  b.parseArgs,
		Init:       b.attach,
		Measure:    b.measure,
		Layout:     b.layout,
		Update:     b.update,
	}, args...)
	if err != nil {
		return nil, fmt.Errorf("box: %w", err)
	}
	b.View = v
	return b, nil
}

func (b *Box) parseAttrs(_ *view.View, a *view.Attrs) error {
	if s, ok := a.String("orientation"); ok {
		switch Orientation(s) {
		case Vertical, Horizontal:
			a.Set("orientation", Orientation(s))
		default:
			return &view.AttributeFormatError{Key: "orientation", Value: s, Expected: "vertical|horizontal"}
		}
	}
	return a.Apply(view.AttrSize, "spacing")
}

func (b *Box) parseArgs(_ *view.View, args []any) error {
	for i, arg := range args {
		c, ok := arg.(*view.View)
		if !ok || c == nil {
			return fmt.Errorf("child %d: %T is not a view", i, arg)
		}
		b.children = append(b.children, c)
	}
	return nil
}

func (b *Box) attach(v *view.View) {
	for _, c := range b.children {
		v.Node().AddChild(c.Node())
	}
}

// Children returns the stacked views in order.
func (b *Box) Children() []*view.View {
	return slices.Clone(b.children)
}

// Add appends a child and re-renders the box.
func (b *Box) Add(c *view.View) {
	b.children = append(b.children, c)
	b.Node().AddChild(c.Node())
	b.Invalidate()
}

// Remove detaches a child and re-renders the box.
func (b *Box) Remove(c *view.View) {
	for i, child := range b.children {
		if child == c {
			b.children = slices.Delete(b.children, i, i+1)
			b.Node().RemoveChild(c.Node())
			b.Invalidate()
			return
		}
	}
}

func orientation(v *view.View) Orientation {
	if o, ok := v.Value("orientation").(Orientation); ok {
		return o
	}
	return Vertical
}

func spacing(v *view.View) float32 {
	s, _ := v.Value("spacing").(float32)
	return s
}

// outer is a child's layout box grown by its margin.
func outer(c *view.View) (float32, float32) {
	m := c.Margin()
	return c.LayoutWidth() + m.Horizontal(), c.LayoutHeight() + m.Vertical()
}

func (b *Box) measure(v *view.View) (float32, float32) {
	var w, h float32
	horizontal := orientation(v) == Horizontal
	for i, c := range b.children {
		cw, ch := outer(c)
		gap := float32(0)
		if i > 0 {
			gap = spacing(v)
		}
		if horizontal {
			w += gap + cw
			h = math32.Max(h, ch)
		} else {
			w = math32.Max(w, cw)
			h += gap + ch
		}
	}
	pad := v.Padding()
	return w + pad.Horizontal(), h + pad.Vertical()
}

// layout places the content block at the align offsets; children sit one after
// another inside it.
func (b *Box) layout(v *view.View) {
	pad := v.Padding()
	x := v.AlignOffsetX() + pad.Left()
	y := v.AlignOffsetY() + pad.Top()
	horizontal := orientation(v) == Horizontal
	for _, c := range b.children {
		m := c.Margin()
		c.Node().SetPosition(x+m.Left(), y+m.Top())
		cw, ch := outer(c)
		if horizontal {
			x += cw + spacing(v)
		} else {
			y += ch + spacing(v)
		}
	}
}

func (b *Box) update(*view.View) {
	for _, c := range b.children {
		c.Update()
	}
}
