package vec

import "github.com/chewxy/math32"

// Polygon returns the vertices of a regular polygon with the given center,
// circumradius, side count and rotation angle (radians). Vertex i sits at angle
// angle + i*2π/sides, so vertices come out in increasing-angle order; the
// resulting winding is what inward edge normals are derived from.
func Polygon(center Vec2, radius float32, sides int, angle float32) []Vec2 {
	return AppendPolygon(nil, center, radius, sides, angle)
}

// AppendPolygon appends the polygon vertices to dst and returns the extended
// slice. Passing dst[:0] reuses its backing array, so per-frame regeneration
// does not allocate.
func AppendPolygon(dst []Vec2, center Vec2, radius float32, sides int, angle float32) []Vec2 {
	step := 2 * math32.Pi / float32(sides)
	for i := 0; i < sides; i++ {
		a := angle + float32(i)*step
		dst = append(dst, Vec2{
			X: center.X + radius*math32.Cos(a),
			Y: center.Y + radius*math32.Sin(a),
		})
	}
	return dst
}
