package view

import "viewkit/internal/host"

// render is one full pass: pre-render hook, measure, align, layout hook and
// background decoration.
func (v *View) render() {
	if v.behavior.Render != nil {
		v.behavior.Render(v)
	}
	v.measure()
	v.alignContent()
	if v.behavior.Layout != nil {
		v.behavior.Layout(v)
	}
	v.renderBackground()
}

func (v *View) measure() {
	if v.behavior.Measure != nil {
		v.viewWidth, v.viewHeight = v.behavior.Measure(v)
	}
	if v.hintWidth == WrapContent {
		v.layoutWidth = v.viewWidth
	}
	if v.hintHeight == WrapContent {
		v.layoutHeight = v.viewHeight
	}
	v.node.SetHitArea(host.Rect{Width: v.layoutWidth, Height: v.layoutHeight})
}

// alignContent places the intrinsic box inside the layout box. Right and bottom
// win over center and middle when both bits are set.
func (v *View) alignContent() {
	v.alignOffsetX = 0
	if v.align&AlignCenter != 0 {
		v.alignOffsetX = (v.layoutWidth - v.viewWidth) / 2
	}
	if v.align&AlignRight != 0 {
		v.alignOffsetX = v.layoutWidth - v.viewWidth
	}

	v.alignOffsetY = 0
	if v.align&AlignMiddle != 0 {
		v.alignOffsetY = (v.layoutHeight - v.viewHeight) / 2
	}
	if v.align&AlignBottom != 0 {
		v.alignOffsetY = v.layoutHeight - v.viewHeight
	}
}

// renderBackground replaces the decoration with one built from the active
// background style, kept bottommost. Without a style there is no decoration.
func (v *View) renderBackground() {
	if v.decoration != nil {
		v.node.RemoveChild(v.decoration)
		v.decoration = nil
	}
	if v.background == nil {
		return
	}
	v.decoration = v.env.Host.NewShape(v.background.shape(v.layoutWidth, v.layoutHeight))
	v.node.AddChildAt(v.decoration, 0)
}

// Replace swaps old for a new child at the top of the view's content and
// returns the new child. A nil old is just an add; a nil next is just a remove.
func (v *View) Replace(old, next host.Node) host.Node {
	if old != nil {
		v.node.RemoveChild(old)
	}
	if next != nil {
		v.node.AddChild(next)
	}
	return next
}
