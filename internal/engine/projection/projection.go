// Package projection turns mesh data into screen-space wireframe triangles.
package projection

import (
	"github.com/Faultbox/snowfall/internal/engine/camera"
	"github.com/Faultbox/snowfall/internal/engine/model"
	"github.com/Faultbox/snowfall/pkg/math"
)

// DefaultScalingFactor is the perspective scale applied before dividing by depth.
const DefaultScalingFactor float32 = 1000

// MinDepth is the smallest view depth a vertex may have. Triangles with a
// vertex at or behind it are marked Clipped instead of being divided.
const MinDepth float32 = 1e-3

// RotationAxes selects which rotation components a mesh instance applies.
type RotationAxes uint8

const (
	AxisX RotationAxes = 1 << iota
	AxisY
	AxisZ

	AxesAll = AxisX | AxisY | AxisZ
)

// Transform is the per-instance model transform.
type Transform struct {
	Rotation    math.Vec3 // radians per axis
	Translation math.Vec3
	Scale       math.Vec3
}

// Identity returns a transform with no rotation, no translation and unit scale.
func Identity() Transform {
	return Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Apply runs v through rotation (X, Y, Z as selected), translation and scale.
func (t Transform) Apply(v math.Vec3, axes RotationAxes) math.Vec3 {
	if axes&AxisX != 0 {
		v = v.RotateX(t.Rotation.X)
	}
	if axes&AxisY != 0 {
		v = v.RotateY(t.Rotation.Y)
	}
	if axes&AxisZ != 0 {
		v = v.RotateZ(t.Rotation.Z)
	}
	v = v.Translate(t.Translation.X, t.Translation.Y, t.Translation.Z)
	return v.ScaleXYZ(t.Scale.X, t.Scale.Y, t.Scale.Z)
}

// Triangle is a projected face in pixel coordinates.
type Triangle struct {
	Points  [3]math.Vec2
	Clipped bool
}

// Projector projects view-space points onto a width x height screen.
type Projector struct {
	Width         int
	Height        int
	ScalingFactor float32
	Camera        camera.Camera
}

// NewProjector creates a projector with the default scaling factor.
func NewProjector(width, height int, cam camera.Camera) *Projector {
	return &Projector{
		Width:         width,
		Height:        height,
		ScalingFactor: DefaultScalingFactor,
		Camera:        cam,
	}
}

// ProjectPoint divides a view-space point by its depth and centers it on screen.
// p.Z must be non-zero.
func (p *Projector) ProjectPoint(v math.Vec3) math.Vec2 {
	return math.Vec2{
		X: p.ScalingFactor*v.X/v.Z + float32(p.Width/2),
		Y: p.ScalingFactor*v.Y/v.Z + float32(p.Height/2),
	}
}

// Project writes one triangle per mesh face, in face order, into dst and
// returns it. dst is reallocated only when it is too small.
func (p *Projector) Project(mesh *model.Mesh, t Transform, axes RotationAxes, dst []Triangle) []Triangle {
	n := mesh.FaceCount()
	if cap(dst) < n {
		dst = make([]Triangle, n)
	}
	dst = dst[:n]

	for i := 0; i < n; i++ {
		var tri Triangle
		for j, v := range mesh.FaceVertices(i) {
			v = t.Apply(v, axes)
			v.Z = p.Camera.ViewDepth(v)
			if v.Z <= MinDepth {
				tri.Clipped = true
				continue
			}
			tri.Points[j] = p.ProjectPoint(v)
		}
		dst[i] = tri
	}
	return dst
}
