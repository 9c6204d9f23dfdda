package sim

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tumbler/internal/vec"
)

// Body is one simulated ball. Mass is 1 for every body; the impulse formulas
// below bake that in (the equal-mass divisor 2). Radius is fixed at creation.
// ID is stable for the body's lifetime and used only for display and for
// self-exclusion in pairwise checks, never for ordering.
type Body struct {
	ID     int
	Pos    vec.Vec2
	Vel    vec.Vec2
	Radius float32
	Color  rl.Color
}

// palette colors the balls; picked by id so a body keeps its color for the run.
var palette = []rl.Color{
	rl.Red, rl.Orange, rl.Gold, rl.Lime, rl.SkyBlue,
	rl.Violet, rl.Pink, rl.Beige, rl.Green, rl.Purple,
}

// spawnVelocity is the symmetric range for initial velocity components, in
// pixels/frame.
const spawnVelocity = 3.0

// newBody creates body id at a jittered position around center. Position
// jitter stays within half the container radius so bodies start well inside
// the walls; overlaps at spawn are legal and resolved by the first steps.
func newBody(id int, center vec.Vec2, containerRadius float32, cfg Config, rng *rand.Rand) *Body {
	jitter := containerRadius * 0.5
	return &Body{
		ID: id,
		Pos: vec.Vec2{
			X: center.X + (rng.Float32()*2-1)*jitter,
			Y: center.Y + (rng.Float32()*2-1)*jitter,
		},
		Vel: vec.Vec2{
			X: (rng.Float32()*2 - 1) * spawnVelocity,
			Y: (rng.Float32()*2 - 1) * spawnVelocity,
		},
		Radius: cfg.RadiusMin + rng.Float32()*(cfg.RadiusMax-cfg.RadiusMin),
		Color:  palette[(id-1)%len(palette)],
	}
}
