package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"viewkit/internal/engineconfig"
)

// Background is the clear color behind the view tree.
var Background = rl.NewColor(24, 24, 28, 255)

// Run opens the window described by win and runs the main loop. Each frame it
// calls update (input, hover, per-frame view hooks), then clears the screen and
// calls draw. A zero-sized window falls back to the monitor size.
func Run(win engineconfig.Window, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	w, h := win.Width, win.Height
	if w <= 0 || h <= 0 {
		rl.InitWindow(0, 0, win.Title)
		w, h = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
		rl.SetWindowSize(int(w), int(h))
	} else {
		rl.InitWindow(w, h, win.Title)
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(Background)
		draw()
		rl.EndDrawing()
	}
}
