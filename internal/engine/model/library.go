package model

import "github.com/Faultbox/snowfall/pkg/math"

// Square pyramid: apex plus a 2x2 base at y = -1.
// The base quad is not triangulated; its edges come from the side faces.
// Each side appears twice with opposite winding.
var squarePyramid = mustMesh("square_pyramid",
	[]math.Vec3{
		{X: 0, Y: 1, Z: 0},   // apex
		{X: -1, Y: -1, Z: 1}, // front left
		{X: 1, Y: -1, Z: 1},  // front right
		{X: 1, Y: -1, Z: -1}, // back right
		{X: -1, Y: -1, Z: -1},
	},
	[]Face{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 4},
		{0, 4, 1},
		{1, 2, 0},
		{2, 3, 0},
		{3, 4, 0},
		{4, 1, 0},
	},
)

var octahedron = mustMesh("octahedron",
	[]math.Vec3{
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -1},
		{X: 0, Y: -1, Z: 0},
	},
	[]Face{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 4},
		{0, 4, 1},
		{1, 2, 5},
		{2, 3, 5},
		{3, 4, 5},
		{4, 1, 5},
	},
)

var triangularPyramid = mustMesh("triangular_pyramid",
	[]math.Vec3{
		{X: 0, Y: 1, Z: 0},
		{X: -1, Y: -1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 0, Y: -1, Z: -1},
	},
	[]Face{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 1},
		{1, 2, 3},
	},
)

// SquarePyramid returns the 5-vertex, 8-face pyramid.
func SquarePyramid() *Mesh { return squarePyramid }

// Octahedron returns the 6-vertex, 8-face octahedron.
func Octahedron() *Mesh { return octahedron }

// TriangularPyramid returns the 4-vertex, 4-face tetrahedron.
func TriangularPyramid() *Mesh { return triangularPyramid }
