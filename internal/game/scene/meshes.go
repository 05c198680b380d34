package scene

import (
	stdmath "math"

	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
	"github.com/Faultbox/snowfall/internal/engine/model"
	"github.com/Faultbox/snowfall/internal/engine/projection"
	"github.com/Faultbox/snowfall/internal/engine/raster"
)

const (
	meshSpin = 0.01

	// BounceLimit bounds the bouncer's translation.x and scale.z.
	BounceLimit = 3
	bounceStep  = 0.1
)

// meshEffect projects one mesh instance per frame. Each instance owns its
// triangle buffer so projection does not allocate after the first frame.
type meshEffect struct {
	mesh *model.Mesh
	axes projection.RotationAxes
	tris []projection.Triangle
}

func newMeshEffect(mesh *model.Mesh, axes projection.RotationAxes) *meshEffect {
	return &meshEffect{mesh: mesh, axes: axes}
}

// draw projects t and outlines every unclipped triangle. color is called once
// per triangle.
func (m *meshEffect) draw(r *raster.Rasterizer, p *projection.Projector, t projection.Transform, color func() framebuffer.Color) {
	m.tris = p.Project(m.mesh, t, m.axes, m.tris)
	for _, tri := range m.tris {
		if tri.Clipped {
			continue
		}
		a, b, c := tri.Points[0], tri.Points[1], tri.Points[2]
		r.DrawTriangle(int(a.X), int(a.Y), int(b.X), int(b.Y), int(c.X), int(c.Y), color())
	}
}

// breath is the slow sine used by the breathing pyramids.
func breath(elapsed uint32) float32 {
	return float32(stdmath.Sin(float64(elapsed) * 0.001))
}

func spin(t *projection.Transform) {
	t.Rotation.X += meshSpin
	t.Rotation.Y += meshSpin
	t.Rotation.Z += meshSpin
}

func updateSquarePyramid(t *projection.Transform, elapsed uint32) {
	spin(t)
	b := breath(elapsed)
	t.Scale.X = 0.8 + 0.1*b
	t.Translation.X += 0.1 * b
}

func updateOctahedron(t *projection.Transform) {
	spin(t)
}

func updateTriangularPyramid(t *projection.Transform, elapsed uint32) {
	t.Rotation.X += meshSpin
	b := breath(elapsed)
	t.Scale.Y = 0.8 + 0.01*b
	t.Translation.Y += 0.05 * b
}

// updateBouncer swings translation.x and scale.z together and reverses at
// ±BounceLimit.
func updateBouncer(t *projection.Transform, dir *float32) {
	spin(t)
	t.Translation.X += *dir * bounceStep
	t.Scale.Z += *dir * bounceStep
	switch {
	case *dir < 0 && t.Translation.X <= -BounceLimit:
		*dir = 1
	case *dir > 0 && t.Translation.X >= BounceLimit:
		*dir = -1
	}
}

func fixed(c framebuffer.Color) func() framebuffer.Color {
	return func() framebuffer.Color { return c }
}
