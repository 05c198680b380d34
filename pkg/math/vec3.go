// Package math provides the vector types used by the projection pipeline.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// RotateX rotates v around the X axis by angle radians.
func (v Vec3) RotateX(angle float32) Vec3 {
	s, c := sincos(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// RotateY rotates v around the Y axis by angle radians.
func (v Vec3) RotateY(angle float32) Vec3 {
	s, c := sincos(angle)
	return Vec3{
		X: v.X*c - v.Z*s,
		Y: v.Y,
		Z: v.X*s + v.Z*c,
	}
}

// RotateZ rotates v around the Z axis by angle radians.
func (v Vec3) RotateZ(angle float32) Vec3 {
	s, c := sincos(angle)
	return Vec3{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}

// Translate returns v offset by (tx, ty, tz).
func (v Vec3) Translate(tx, ty, tz float32) Vec3 {
	return v.Add(Vec3{tx, ty, tz})
}

// ScaleXYZ multiplies each component by its own factor.
func (v Vec3) ScaleXYZ(sx, sy, sz float32) Vec3 {
	return Vec3{v.X * sx, v.Y * sy, v.Z * sz}
}

func sincos(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}
