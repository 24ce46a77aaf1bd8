package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"viewkit/internal/host/memhost"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var (
	hitAreaColor = rl.NewColor(0, 228, 48, 160)
	hoverColor   = rl.NewColor(255, 161, 0, 255)
)

// Debug holds the runtime overlays: FPS and heap counters, and outlines around
// the hit areas of interactive nodes. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowHitAreas bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders the enabled overlays. Call last in the draw loop. root is the
// view tree being shown and hovered the node under the mouse; either may be nil.
func (d *Debug) Draw(root, hovered *memhost.Node) {
	if d.ShowHitAreas && root != nil {
		drawHitAreas(root, root.X, root.Y, hovered)
	}
	d.drawCounters()
}

func drawHitAreas(n *memhost.Node, x, y float32, hovered *memhost.Node) {
	if n.Interactive && n.HitArea.Width > 0 && n.HitArea.Height > 0 {
		c, thick := hitAreaColor, float32(1)
		if n == hovered {
			c, thick = hoverColor, 2
		}
		r := rl.NewRectangle(x+n.HitArea.X, y+n.HitArea.Y, n.HitArea.Width, n.HitArea.Height)
		rl.DrawRectangleLinesEx(r, thick, c)
	}
	for _, child := range n.Children() {
		drawHitAreas(child, x+child.X, y+child.Y, hovered)
	}
}

// drawCounters draws FPS and heap allocation at the top-right in green. Text is
// recomputed every updateInterval frames.
func (d *Debug) drawCounters() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 ||
		(d.ShowFPS && d.lastFpsText == "") ||
		(d.ShowMemAlloc && d.lastMemText == "")

	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, y)
	}
}

func drawRight(text string, y int32) {
	if text == "" {
		return
	}
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
