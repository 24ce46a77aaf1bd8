package widgets

import (
	"fmt"

	"viewkit/internal/host"
	"viewkit/internal/resource"
	"viewkit/internal/units"
	"viewkit/internal/view"
)

// Image is a view drawing a texture. Attributes: src (texture id) and scale.
type Image struct {
	*view.View
	content host.Node
}

// NewImage builds an image view. The intrinsic size is the texture size times scale.
func NewImage(env view.Env, attrs view.Bag, args ...any) (*Image, error) {
	im := &Image{}
	v, err := view.New(env, attrs, view.Behavior{
		ParseAttrs: im.parseAttrs,
		Measure:    im.measure,
		Layout:     im.layout,
	}, args...)
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	im.View = v
	return im, nil
}

func (im *Image) parseAttrs(_ *view.View, a *view.Attrs) error {
	if err := a.Apply(view.AttrTexture, "src"); err != nil {
		return err
	}
	return a.Apply(view.AttrValue, "scale")
}

// Texture returns the resolved texture.
func (im *Image) Texture() resource.Texture {
	tex, _ := im.Value("src").(resource.Texture)
	return tex
}

func (im *Image) size(v *view.View) (float32, float32) {
	tex, _ := v.Value("src").(resource.Texture)
	scale, ok := units.Float(v.Value("scale"))
	if !ok || scale <= 0 {
		scale = 1
	}
	return float32(tex.Width) * scale, float32(tex.Height) * scale
}

func (im *Image) measure(v *view.View) (float32, float32) {
	w, h := im.size(v)
	pad := v.Padding()
	return w + pad.Horizontal(), h + pad.Vertical()
}

func (im *Image) layout(v *view.View) {
	tex, ok := v.Value("src").(resource.Texture)
	if !ok {
		im.content = v.Replace(im.content, nil)
		return
	}
	w, h := im.size(v)
	next := v.Env().Host.NewSprite(host.Sprite{Texture: tex, Width: w, Height: h})
	next.SetPosition(v.AlignOffsetX()+v.Padding().Left(), v.AlignOffsetY()+v.Padding().Top())
	im.content = v.Replace(im.content, next)
}
