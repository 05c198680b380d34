package model

import (
	"fmt"

	"github.com/Faultbox/snowfall/pkg/math"
)

// NewMesh copies vertices and faces into a new mesh.
// Every face index must address a vertex.
func NewMesh(name string, vertices []math.Vec3, faces []Face) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mesh %s: no vertices", name)
	}
	for i, f := range faces {
		for _, idx := range f.Indices() {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("mesh %s: face %d index %d out of range [0,%d)", name, i, idx, len(vertices))
			}
		}
	}

	m := &Mesh{
		name:     name,
		vertices: make([]math.Vec3, len(vertices)),
		faces:    make([]Face, len(faces)),
	}
	copy(m.vertices, vertices)
	copy(m.faces, faces)
	return m, nil
}

// Name returns the mesh name.
func (m *Mesh) Name() string { return m.name }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) math.Vec3 { return m.vertices[i] }

// Face returns face i.
func (m *Mesh) Face(i int) Face { return m.faces[i] }

// FaceVertices returns the three vertices of face i.
func (m *Mesh) FaceVertices(i int) [3]math.Vec3 {
	f := m.faces[i]
	return [3]math.Vec3{m.vertices[f.A], m.vertices[f.B], m.vertices[f.C]}
}

func mustMesh(name string, vertices []math.Vec3, faces []Face) *Mesh {
	m, err := NewMesh(name, vertices, faces)
	if err != nil {
		panic(err)
	}
	return m
}
