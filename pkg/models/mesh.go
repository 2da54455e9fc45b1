// Package models loads external meshes and reduces them to wireframe edges.
package models

import (
	"github.com/taigrr/neonwire/pkg/math3d"
)

// Edge is an undirected pair of vertex indices with A < B.
type Edge [2]int

func makeEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Mesh is an imported model reduced to positions and connectivity.
type Mesh struct {
	Name      string
	Positions []math3d.Vec3
	Faces     [][3]int
	// Lines holds segments from line primitives, kept as-is.
	Lines []Edge

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		return
	}

	m.BoundsMin = m.Positions[0]
	m.BoundsMax = m.Positions[0]

	for _, p := range m.Positions[1:] {
		m.BoundsMin = m.BoundsMin.Min(p)
		m.BoundsMax = m.BoundsMax.Max(p)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Positions {
		m.Positions[i] = mat.MulVec3(m.Positions[i])
	}
	m.CalculateBounds()
}

// Normalize centres the mesh on the origin and scales its largest side to
// extent, so any model fits the same projection as the built-in scenes.
func (m *Mesh) Normalize(extent float64) {
	m.CalculateBounds()
	m.Transform(math3d.Normalize(m.BoundsMin, m.BoundsMax, extent))
}

// Edges returns every unique edge of the mesh in first-seen order: triangle
// sides first, then line primitives. Shared triangle sides appear once.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]struct{}, len(m.Faces)*3/2+len(m.Lines))
	var out []Edge
	add := func(e Edge) {
		if e[0] == e[1] {
			return
		}
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	for _, f := range m.Faces {
		add(makeEdge(f[0], f[1]))
		add(makeEdge(f[1], f[2]))
		add(makeEdge(f[2], f[0]))
	}
	for _, l := range m.Lines {
		add(makeEdge(l[0], l[1]))
	}
	return out
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}
