// Package model holds the immutable polyhedra drawn by the scene.
package model

import "github.com/Faultbox/snowfall/pkg/math"

// Face is a triangle given as three 0-based indices into a mesh's vertex list.
type Face struct {
	A, B, C int
}

// Indices returns the face indices in order.
func (f Face) Indices() [3]int {
	return [3]int{f.A, f.B, f.C}
}

// Mesh is an immutable vertex/face set. Construct with NewMesh.
type Mesh struct {
	name     string
	vertices []math.Vec3
	faces    []Face
}
