package sim

import (
	"math/rand"
	"time"

	"tumbler/internal/vec"
)

// Simulation owns all mutable state for one run: the body set, the container
// rotation, and the RNG that seeded the bodies. Nothing is package-global, so
// independent simulations can coexist and tests can run deterministically.
type Simulation struct {
	cfg Config

	center vec.Vec2
	radius float32
	angle  float32
	verts  []vec.Vec2

	bodies []*Body
	frame  int
	rng    *rand.Rand
}

// New validates cfg, spawns the bodies and computes the initial vertex set.
// The container circumradius derives from the smaller window dimension.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	short := cfg.WindowWidth
	if cfg.WindowHeight < short {
		short = cfg.WindowHeight
	}

	s := &Simulation{
		cfg:    cfg,
		center: vec.New(float32(cfg.WindowWidth)/2, float32(cfg.WindowHeight)/2),
		radius: float32(short) * cfg.ContainerFraction,
		rng:    rng,
	}
	s.verts = vec.AppendPolygon(s.verts, s.center, s.radius, cfg.Sides, s.angle)

	s.bodies = make([]*Body, 0, cfg.BodyCount)
	for i := 0; i < cfg.BodyCount; i++ {
		s.bodies = append(s.bodies, newBody(i+1, s.center, s.radius, cfg, rng))
	}
	return s, nil
}

// Step advances the simulation by one frame. The rotation angle advances once
// per frame and the polygon is regenerated once; the sub-steps all see the
// same vertex set. Bodies are processed in slice order every sub-step, so
// resolution outcomes are reproducible for a given state.
func (s *Simulation) Step() {
	s.angle += s.cfg.RotationSpeed
	s.verts = vec.AppendPolygon(s.verts[:0], s.center, s.radius, s.cfg.Sides, s.angle)

	dt := 1 / float32(s.cfg.SubSteps)
	for sub := 0; sub < s.cfg.SubSteps; sub++ {
		for _, b := range s.bodies {
			b.Vel.Y += s.cfg.Gravity * dt
			// Damping is a constant-ratio decay per sub-step, not dt-scaled.
			b.Vel = b.Vel.Scale(s.cfg.Damping)
			b.Pos = b.Pos.Add(b.Vel.Scale(dt))

			for i := 0; i < len(s.verts); i++ {
				s.resolveWall(b, s.verts[i], s.verts[(i+1)%len(s.verts)])
			}
		}

		for i, a := range s.bodies {
			for _, b := range s.bodies[i+1:] {
				if a.ID == b.ID {
					continue
				}
				s.resolvePair(a, b)
			}
		}
	}
	s.frame++
}

// Vertices returns the polygon vertices for the current frame, in winding
// order. Read-only for the renderer; the slice is reused across frames.
func (s *Simulation) Vertices() []vec.Vec2 {
	return s.verts
}

// Bodies returns the simulated bodies. The renderer reads id, position,
// radius and color; it must not mutate.
func (s *Simulation) Bodies() []*Body {
	return s.bodies
}

// Angle returns the container's current rotation angle in radians.
func (s *Simulation) Angle() float32 {
	return s.angle
}

// Frame returns how many frames have been stepped.
func (s *Simulation) Frame() int {
	return s.frame
}

// Center returns the container center.
func (s *Simulation) Center() vec.Vec2 {
	return s.center
}

// Radius returns the container circumradius.
func (s *Simulation) Radius() float32 {
	return s.radius
}
