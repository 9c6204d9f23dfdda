package sim

import "tumbler/internal/vec"

// wallVelocityAt returns the container boundary's local velocity at point p:
// the frame velocity field of a body rotating about the container center at
// RotationSpeed radians/frame, ω × r in 2D. Keeping this as a function of the
// contact point (rather than folding it into the edge response) is what lets
// the container's motion be swapped without touching the impulse math.
func (s *Simulation) wallVelocityAt(p vec.Vec2) vec.Vec2 {
	r := p.Sub(s.center)
	return r.Perp().Scale(s.cfg.RotationSpeed)
}

// resolveWall detects and resolves contact between b and the edge p1→p2.
//
// The normal is re-derived every call because the polygon rotates: take the
// edge perpendicular and flip it if it points away from the container center.
// The signed distance is measured against the infinite edge line, not the
// clipped segment; the container is convex and bodies stay near the interior,
// so the nearest active edge dominates and the approximation holds.
func (s *Simulation) resolveWall(b *Body, p1, p2 vec.Vec2) {
	normal := p2.Sub(p1).Normalize().Perp()
	mid := p1.Add(p2).Scale(0.5)
	if normal.Dot(s.center.Sub(mid)) < 0 {
		normal = normal.Scale(-1)
	}

	dist := b.Pos.Sub(p1).Dot(normal)
	if dist >= b.Radius {
		return
	}

	// Push the center out along the inward normal until tangent to the wall.
	b.Pos = b.Pos.Add(normal.Scale(b.Radius - dist))

	// Impulse in the wall's local frame: the rotating boundary has its own
	// velocity at the contact point, so restitution applies to the relative
	// velocity, not the world velocity.
	contact := b.Pos.Sub(normal.Scale(b.Radius))
	wallVel := s.wallVelocityAt(contact)
	rel := b.Vel.Sub(wallVel)
	vn := rel.Dot(normal)
	if vn >= 0 {
		// Already separating; the position correction above is all this
		// contact gets.
		return
	}
	impulse := -(1 + s.cfg.WallRestitution) * vn
	rel = rel.Add(normal.Scale(impulse))
	b.Vel = rel.Add(wallVel)
}
