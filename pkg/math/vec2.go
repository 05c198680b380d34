package math

// Vec2 is a 2D vector, used for screen-space points.
type Vec2 struct {
	X, Y float32
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Rotate rotates v around pivot by angle radians.
func (v Vec2) Rotate(pivot Vec2, angle float32) Vec2 {
	s, c := sincos(angle)
	d := v.Sub(pivot)
	return Vec2{
		X: pivot.X + d.X*c - d.Y*s,
		Y: pivot.Y + d.Y*c + d.X*s,
	}
}
