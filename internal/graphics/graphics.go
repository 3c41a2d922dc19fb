package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1440
	windowHeight = 900
	windowTitle  = "Scene Studio"
)

// Run starts the window and main loop. Each frame it calls update (input,
// selection, registry edits), then clears the screen and calls draw (3D
// viewport, panels, terminal). This keeps the graphics layer separate from
// the editor logic.
// ESC toggles the terminal, so it is not the exit key; close via the window
// button.
func Run(update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 26, 30, 255))
		draw()
		rl.EndDrawing()
	}
}
