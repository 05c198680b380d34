// Package scene drives the timed show: a data-driven list of cues toggles
// independent effect flags, and every active effect updates and draws itself
// once per frame.
package scene

import (
	"strings"

	"github.com/Faultbox/snowfall/internal/engine/projection"
	"github.com/Faultbox/snowfall/pkg/math"
)

// Effect is a set of visual effects. Flags are independent: any combination
// may be active at once.
type Effect uint16

const (
	EffectCloud Effect = 1 << iota
	EffectSnow
	EffectSnowman
	EffectStar
	EffectSquarePyramid
	EffectOctahedron
	EffectTriangularPyramid
	EffectTree
	EffectPolygons
	EffectBouncer

	EffectNone Effect = 0
	AllEffects        = EffectBouncer<<1 - 1

	Polyhedra = EffectSquarePyramid | EffectOctahedron | EffectTriangularPyramid
)

var effectNames = []string{
	"cloud", "snow", "snowman", "star", "square_pyramid", "octahedron",
	"triangular_pyramid", "tree", "polygons", "bouncer",
}

// String lists the active flags joined by "|".
func (e Effect) String() string {
	if e == EffectNone {
		return "none"
	}
	var names []string
	for i, name := range effectNames {
		if e&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// State is the complete animation state of the show. It is a plain value:
// copying it snapshots the scene.
type State struct {
	Active Effect

	CloudX   int
	SnowmanX int
	PolygonY int

	StarAngle  float32
	StarLayout int
	StarSince  uint32 // elapsed ms when the current star layout started

	SquarePyramid     projection.Transform
	Octahedron        projection.Transform
	TriangularPyramid projection.Transform
	Bouncer           projection.Transform
	BounceDir         float32
}

// NewState returns the state before the first cue.
func NewState() State {
	s := State{
		SquarePyramid:     projection.Identity(),
		Octahedron:        projection.Identity(),
		TriangularPyramid: projection.Identity(),
		Bouncer:           projection.Identity(),
		BounceDir:         -1,
	}
	s.Octahedron.Scale = math.Vec3{X: 1, Y: 3, Z: 1}
	return s
}

// Show activates every effect in e.
func (s *State) Show(e Effect) { s.Active |= e }

// Hide deactivates every effect in e.
func (s *State) Hide(e Effect) { s.Active &^= e }

// IsActive reports whether all effects in e are active.
func (s State) IsActive(e Effect) bool { return e != EffectNone && s.Active&e == e }
