package graphics

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"viewkit/internal/host"
	"viewkit/internal/host/memhost"
	"viewkit/internal/resource"
)

// roundedSegments is the segment count per corner for rounded rectangles.
const roundedSegments = 8

// Renderer draws a memhost tree with raylib. Textures are uploaded to the GPU on
// first use and cached by resource ID.
type Renderer struct {
	font     rl.Font // optional; zero texture ID means the raylib default font
	textures map[string]rl.Texture2D
}

// NewRenderer returns a renderer with an empty texture cache. Call after the
// window is open.
func NewRenderer() *Renderer {
	return &Renderer{textures: make(map[string]rl.Texture2D)}
}

// SetFont sets the font used for text nodes.
func (r *Renderer) SetFont(font rl.Font) {
	r.font = font
}

// LoadFont loads the font file at path and uses it for text nodes.
func (r *Renderer) LoadFont(path string) error {
	font := rl.LoadFont(path)
	if !rl.IsFontValid(font) {
		return fmt.Errorf("failed to load font %s", path)
	}
	r.font = font
	return nil
}

// Unload releases every cached texture.
func (r *Renderer) Unload() {
	for id, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, id)
	}
}

// Draw renders root and its descendants, with root placed at (x, y).
func (r *Renderer) Draw(root *memhost.Node, x, y float32) {
	r.draw(root, x+root.X, y+root.Y)
}

func (r *Renderer) draw(n *memhost.Node, x, y float32) {
	switch n.Kind {
	case memhost.KindShape:
		drawShape(n.Shape, x, y)
	case memhost.KindText:
		r.drawText(n.Text, x, y)
	case memhost.KindSprite:
		r.drawSprite(n.Sprite, x, y)
	}
	for _, c := range n.Children() {
		r.draw(c, x+c.X, y+c.Y)
	}
}

func drawShape(s host.Shape, x, y float32) {
	b := rl.NewRectangle(x+s.Bounds.X, y+s.Bounds.Y, s.Bounds.Width, s.Bounds.Height)
	switch s.Kind {
	case host.ShapeCircle:
		center := rl.NewVector2(b.X+b.Width/2, b.Y+b.Height/2)
		rl.DrawCircleV(center, s.Radius, s.Fill)
		if s.BorderWidth > 0 {
			rl.DrawRing(center, math32.Max(0, s.Radius-s.BorderWidth), s.Radius, 0, 360, 64, s.Border)
		}
	case host.ShapeRoundedRect:
		round := roundness(s.Radius, b.Width, b.Height)
		rl.DrawRectangleRounded(b, round, roundedSegments, s.Fill)
		if s.BorderWidth > 0 {
			rl.DrawRectangleRoundedLinesEx(b, round, roundedSegments, s.BorderWidth, s.Border)
		}
	default:
		rl.DrawRectangleRec(b, s.Fill)
		if s.BorderWidth > 0 {
			rl.DrawRectangleLinesEx(b, s.BorderWidth, s.Border)
		}
	}
}

// roundness converts a corner radius in pixels into raylib's 0..1 roundness,
// which is relative to the shorter side.
func roundness(radius, w, h float32) float32 {
	short := math32.Min(w, h)
	if short <= 0 || radius <= 0 {
		return 0
	}
	return math32.Min(1, 2*radius/short)
}

func (r *Renderer) drawText(t host.Text, x, y float32) {
	if t.Content == "" {
		return
	}
	if r.font.Texture.ID != 0 {
		rl.DrawTextEx(r.font, t.Content, rl.NewVector2(x, y), t.Size, 1, t.Color)
		return
	}
	rl.DrawText(t.Content, int32(x), int32(y), int32(math32.Round(t.Size)), t.Color)
}

func (r *Renderer) drawSprite(s host.Sprite, x, y float32) {
	tex, ok := r.texture(s.Texture)
	if !ok {
		return
	}
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(x, y, s.Width, s.Height)
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

func (r *Renderer) texture(t resource.Texture) (rl.Texture2D, bool) {
	if tex, ok := r.textures[t.ID]; ok {
		return tex, true
	}
	if t.Image == nil {
		return rl.Texture2D{}, false
	}
	img := rl.NewImageFromImage(t.Image)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(tex) {
		return rl.Texture2D{}, false
	}
	r.textures[t.ID] = tex
	return tex, true
}

// HandleInput picks the interactive node under the mouse and delivers a tap to
// it on a left click. It returns the node under the mouse, or nil.
func HandleInput(root *memhost.Node) *memhost.Node {
	m := rl.GetMousePosition()
	hit, hx, hy := root.Pick(m.X-root.X, m.Y-root.Y)
	if hit != nil && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		hit.Tap(hx, hy)
	}
	return hit
}
