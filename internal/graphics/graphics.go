package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run opens the window and drives the main loop. Each frame it calls update
// (the physics step), then clears the screen and calls draw (the renderer).
// Update and draw run strictly alternately on this goroutine; a frame's step
// completes before the frame is presented.
func Run(width, height int32, title string, targetFPS int32, vsync bool, update, draw func()) {
	if vsync {
		rl.SetConfigFlags(rl.FlagVsyncHint)
	}
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
