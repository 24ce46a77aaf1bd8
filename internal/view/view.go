// Package view implements declarative, attribute-driven views: an attribute bag
// is resolved into pixel geometry, then each render pass measures the view,
// computes alignment offsets inside its layout box and lets the concrete view
// lay out its content.
package view

import (
	"fmt"
	"maps"

	"viewkit/internal/host"
	"viewkit/internal/resource"
	"viewkit/internal/units"
)

// LayoutHint tells whether an axis sizes to content or keeps the assigned size.
type LayoutHint int

const (
	WrapContent LayoutHint = iota
	Exact
)

func (h LayoutHint) String() string {
	if h == Exact {
		return "exact"
	}
	return "wrap_content"
}

// Env holds the collaborators a view resolves through.
type Env struct {
	Host      host.Factory
	Units     units.Resolver
	Resources resource.Resolver
}

// Behavior is the set of optional hooks a concrete view plugs into the pipeline.
// Nil hooks are skipped.
type Behavior struct {
	// ParseAttrs reads node-specific attributes after the base ones.
	ParseAttrs func(v *View, a *Attrs) error
	// ParseArgs receives the positional extension arguments once, after the first parse.
	ParseArgs func(v *View, args []any) error
	Init      func(v *View)
	// Render runs before measurement on every pass.
	Render func(v *View)
	// Measure returns the intrinsic content size.
	Measure func(v *View) (w, h float32)
	// Layout positions content using the align offsets.
	Layout func(v *View)
	Click  func(v *View, e host.TapEvent)
	Update func(v *View)
}

// resolved is the part of a view derived from its attribute bag.
type resolved struct {
	margin     Insets
	padding    Insets
	align      Align
	width      float32
	height     float32
	selector   string
	background *Background
	values     map[string]any
}

func (r resolved) clone() resolved {
	r.values = maps.Clone(r.values)
	if r.values == nil {
		r.values = make(map[string]any)
	}
	return r
}

// View is a positioned, styleable node. It owns a host node and forwards
// geometry and interactivity to it.
type View struct {
	env      Env
	behavior Behavior
	node     host.Node
	attrs    Bag
	resolved

	hintWidth    LayoutHint
	hintHeight   LayoutHint
	layoutWidth  float32
	layoutHeight float32
	viewWidth    float32
	viewHeight   float32
	alignOffsetX float32
	alignOffsetY float32

	decoration host.Node
	onClick    func(host.TapEvent)
}

// New builds a view from attrs: it parses the attributes, hands args to the
// ParseArgs hook, initialises interaction and runs the first render pass.
func New(env Env, attrs Bag, b Behavior, args ...any) (*View, error) {
	if env.Host == nil {
		return nil, fmt.Errorf("view: env has no host factory")
	}
	if env.Units == nil {
		env.Units = units.DefaultDensity
	}
	own, err := attrs.Clone()
	if err != nil {
		return nil, fmt.Errorf("view: copy attributes: %w", err)
	}
	v := &View{
		env:      env,
		behavior: b,
		node:     env.Host.NewNode(),
		attrs:    own,
		resolved: resolved{align: AlignTop | AlignLeft, values: make(map[string]any)},
	}
	if err := v.parseAttrs(); err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}
	if b.ParseArgs != nil {
		if err := b.ParseArgs(v, args); err != nil {
			return nil, fmt.Errorf("view: args: %w", err)
		}
	}
	v.init()
	v.render()
	return v, nil
}

// parseAttrs resolves the bag into a staged copy and commits it only if every
// attribute resolved.
func (v *View) parseAttrs() error {
	next := v.resolved.clone()
	a := v.newAttrs(next.selector, next.values)

	for _, key := range []string{"margin", "padding"} {
		in, _, err := a.Insets(key)
		if err != nil {
			return err
		}
		flat, err := a.edges(key)
		if err != nil {
			return err
		}
		in.Merge(flat)
		if key == "margin" {
			next.margin.Merge(in)
		} else {
			next.padding.Merge(in)
		}
	}
	if al, ok, err := a.Align("align"); err != nil {
		return err
	} else if ok {
		next.align = al
	}
	if w, ok, err := a.Size("layoutWidth"); err != nil {
		return err
	} else if ok {
		next.width = w
	}
	if h, ok, err := a.Size("layoutHeight"); err != nil {
		return err
	} else if ok {
		next.height = h
	}
	bg, _, err := a.Resolve("background", AttrBackground)
	if err != nil {
		return err
	}
	next.background, _ = bg.(*Background)

	plain := v.newAttrs("", next.values)
	if sel, ok := plain.Raw("selector"); ok {
		next.selector = fmt.Sprint(sel)
	}
	if v.behavior.ParseAttrs != nil {
		if err := v.behavior.ParseAttrs(v, a); err != nil {
			return err
		}
	}
	v.resolved = next
	return nil
}

func (v *View) newAttrs(selector string, staged map[string]any) *Attrs {
	return &Attrs{
		bag:      v.attrs,
		selector: selector,
		units:    v.env.Units,
		textures: v.env.Resources,
		staged:   staged,
	}
}

func (v *View) init() {
	v.updateHints()
	v.node.SetInteractive(true)
	v.node.SetTap(v.tap)
	if v.behavior.Init != nil {
		v.behavior.Init(v)
	}
}

// updateHints derives the per-axis hints from the resolved attribute sizes.
func (v *View) updateHints() {
	v.hintWidth, v.hintHeight = WrapContent, WrapContent
	if v.width > 0 {
		v.hintWidth = Exact
		v.layoutWidth = v.width
	}
	if v.height > 0 {
		v.hintHeight = Exact
		v.layoutHeight = v.height
	}
}

func (v *View) tap(e host.TapEvent) {
	switch {
	case v.onClick != nil:
		v.onClick(e)
	case v.behavior.Click != nil:
		v.behavior.Click(v, e)
	}
}

// Invalidate re-runs the render pass with the current resolved attributes.
func (v *View) Invalidate() {
	v.render()
}

// Update runs the per-frame hook, if any.
func (v *View) Update() {
	if v.behavior.Update != nil {
		v.behavior.Update(v)
	}
}

// SetOnClick installs fn as the tap handler and makes the view interactive.
// A nil fn is ignored.
func (v *View) SetOnClick(fn func(host.TapEvent)) {
	if fn == nil {
		return
	}
	v.onClick = fn
	v.node.SetInteractive(true)
	v.node.SetTap(v.tap)
}

// SetSelector switches the active state suffix, re-resolves the attribute bag
// and re-renders. If resolution fails the view keeps its previous state.
// A "selector" key in the bag is re-applied on every pass, so such a view
// stays pinned to that value and SetSelector returns nil without switching.
func (v *View) SetSelector(name string) error {
	if v.selector == name {
		return nil
	}
	prev := v.selector
	v.selector = name
	if err := v.parseAttrs(); err != nil {
		v.selector = prev
		return fmt.Errorf("view: selector %q: %w", name, err)
	}
	v.updateHints()
	v.render()
	return nil
}

// SetLayoutSize assigns the layout box from outside, as a parent does. A
// non-positive side returns that axis to wrap-content.
func (v *View) SetLayoutSize(w, h float32) {
	v.width, v.height = w, h
	v.updateHints()
	v.render()
}

// Node returns the host node the view draws into.
func (v *View) Node() host.Node { return v.node }

// Env returns the collaborators the view was built with.
func (v *View) Env() Env { return v.env }

// Attrs returns the view's own copy of its attribute bag.
func (v *View) Attrs() Bag { return v.attrs }

func (v *View) LayoutWidth() float32  { return v.layoutWidth }
func (v *View) LayoutHeight() float32 { return v.layoutHeight }
func (v *View) ViewWidth() float32    { return v.viewWidth }
func (v *View) ViewHeight() float32   { return v.viewHeight }
func (v *View) AlignOffsetX() float32 { return v.alignOffsetX }
func (v *View) AlignOffsetY() float32 { return v.alignOffsetY }
func (v *View) Margin() Insets        { return v.margin }
func (v *View) Padding() Insets       { return v.padding }
func (v *View) Align() Align          { return v.align }
func (v *View) Selector() string      { return v.selector }

// Hints returns the width and height layout hints.
func (v *View) Hints() (w, h LayoutHint) { return v.hintWidth, v.hintHeight }

// Background returns the background style for the active selector, or nil.
func (v *View) Background() *Background { return v.background }

// Value returns a node-specific value staged by the ParseAttrs hook.
func (v *View) Value(key string) any { return v.values[key] }
