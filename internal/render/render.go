package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tumbler/internal/prefs"
	"tumbler/internal/sim"
)

const (
	wallThickness = 3
	labelFontSize = 14
	overlayX      = 12
	overlayY      = 12
)

var wallColor = rl.NewColor(200, 200, 210, 255)

// Renderer draws one simulation: the rotating container outline, the bodies,
// and optional debug overlays. It only reads the simulation's accessors and
// never mutates state.
type Renderer struct {
	sim   *sim.Simulation
	prefs prefs.Prefs
}

// New returns a renderer for s using the given overlay preferences.
func New(s *sim.Simulation, p prefs.Prefs) *Renderer {
	return &Renderer{sim: s, prefs: p}
}

// Draw renders the current frame. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw() {
	r.drawContainer()
	r.drawBodies()
	r.drawOverlay()
}

// drawContainer draws the polygon outline edge by edge from the frame's
// vertex set.
func (r *Renderer) drawContainer() {
	verts := r.sim.Vertices()
	for i := 0; i < len(verts); i++ {
		p1 := verts[i]
		p2 := verts[(i+1)%len(verts)]
		rl.DrawLineEx(
			rl.NewVector2(p1.X, p1.Y),
			rl.NewVector2(p2.X, p2.Y),
			wallThickness, wallColor,
		)
	}
}

// drawBodies draws each ball as a filled disc with a darker rim, plus the id
// label when enabled.
func (r *Renderer) drawBodies() {
	for _, b := range r.sim.Bodies() {
		center := rl.NewVector2(b.Pos.X, b.Pos.Y)
		rl.DrawCircleV(center, b.Radius, b.Color)
		rl.DrawCircleLinesV(center, b.Radius, rl.NewColor(
			b.Color.R/2, b.Color.G/2, b.Color.B/2, 255,
		))

		if r.prefs.ShowIDs {
			label := fmt.Sprintf("%d", b.ID)
			w := rl.MeasureText(label, labelFontSize)
			rl.DrawText(label,
				int32(b.Pos.X)-w/2,
				int32(b.Pos.Y)-labelFontSize/2,
				labelFontSize, rl.Black)
		}
	}
}

// drawOverlay draws the FPS counter and frame/angle readout when enabled.
func (r *Renderer) drawOverlay() {
	if !r.prefs.ShowFPS {
		return
	}
	rl.DrawFPS(overlayX, overlayY)
	status := fmt.Sprintf("frame %d  angle %.2f", r.sim.Frame(), r.sim.Angle())
	rl.DrawText(status, overlayX, overlayY+24, labelFontSize, rl.RayWhite)
}
