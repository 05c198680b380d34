// Package camera provides the fixed viewpoint used by the projection pipeline.
package camera

import "github.com/Faultbox/snowfall/pkg/math"

// DefaultDistance places the camera behind the origin so unit-sized meshes
// stay in front of it.
const DefaultDistance float32 = 5

// Camera is a fixed viewpoint. Only Position.Z affects projection: it is
// subtracted from every transformed vertex depth.
type Camera struct {
	Position math.Vec3
}

// New creates a camera at the given position.
func New(position math.Vec3) Camera {
	return Camera{Position: position}
}

// Default returns the camera at (0, 0, -DefaultDistance).
func Default() Camera {
	return New(math.Vec3{Z: -DefaultDistance})
}

// ViewDepth returns the depth of a world-space point as seen from the camera.
func (c Camera) ViewDepth(p math.Vec3) float32 {
	return p.Z - c.Position.Z
}
