package sim

import "tumbler/internal/vec"

// resolvePair detects and resolves overlap between two distinct bodies.
// Masses are equal (1), so the overlap splits evenly and the impulse divisor
// is 2. The symmetric split keeps the correction independent of which body
// came first in the pair.
func (s *Simulation) resolvePair(a, b *Body) {
	delta := b.Pos.Sub(a.Pos)
	d := delta.Length()
	minDist := a.Radius + b.Radius
	if d >= minDist {
		return
	}

	// Coincident centers leave no direction to separate along; fall back to
	// unit X so the pair still comes apart.
	var normal vec.Vec2
	if d > 0 {
		normal = delta.Scale(1 / d)
	} else {
		normal = vec.Vec2{X: 1}
	}

	half := (minDist - d) * 0.5
	a.Pos = a.Pos.Sub(normal.Scale(half))
	b.Pos = b.Pos.Add(normal.Scale(half))

	vn := b.Vel.Sub(a.Vel).Dot(normal)
	if vn > 0 {
		// Separating already; position correction still applied above.
		return
	}
	impulse := -(1 + s.cfg.BallRestitution) * vn / 2
	a.Vel = a.Vel.Sub(normal.Scale(impulse))
	b.Vel = b.Vel.Add(normal.Scale(impulse))
}
