// Package scene defines the animated wireframe scenes and the registry that
// maps effect ids to them.
//
// A scene owns its angle accumulators and any time-varying state. Each tick
// the pipeline calls Advance once, then asks for the tick's lines and
// rotates every endpoint through Rotate. Geometry is regenerated from
// closed form on every call to Lines; scenes are small enough that caching
// would only add invalidation bugs.
package scene

import (
	"fmt"

	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
)

// TicksPerSecond is the nominal tick rate that time-based animations
// (road scroll, hover) are expressed against.
const TicksPerSecond = 60

// Scene is one animated wireframe.
type Scene interface {
	// Advance steps angles and time-varying state by one tick.
	Advance()
	// Lines appends this tick's model-space lines to dst.
	Lines(dst []Line) []Line
	// Rotate applies the scene's rotation chain with the current angles.
	Rotate(p math3d.Vec3) math3d.Vec3
	// Style returns the look of a line with the given tag and depth.
	Style(tag string, depth float64) render.Style
}

// Line is a model-space segment.
type Line struct {
	P1, P2 math3d.Vec3
	Tag    string
}

// Edge joins two vertices of a Mesh by index.
type Edge struct {
	A, B int
	Tag  string
}

// Mesh is hand-authored geometry: a vertex list plus edges into it.
type Mesh struct {
	Vertices []math3d.Vec3
	Edges    []Edge
}

// AppendLines expands the mesh's edges into lines in edge order.
func (m *Mesh) AppendLines(dst []Line) []Line {
	for _, e := range m.Edges {
		dst = append(dst, Line{P1: m.Vertices[e.A], P2: m.Vertices[e.B], Tag: e.Tag})
	}
	return dst
}

// Validate reports the first edge that refers to a missing vertex.
func (m *Mesh) Validate() error {
	for i, e := range m.Edges {
		if e.A < 0 || e.A >= len(m.Vertices) || e.B < 0 || e.B >= len(m.Vertices) {
			return fmt.Errorf("edge %d (%d, %d) out of range for %d vertices", i, e.A, e.B, len(m.Vertices))
		}
	}
	return nil
}

// addLine appends a free-standing segment to a mesh as two new vertices.
func (m *Mesh) addLine(p1, p2 math3d.Vec3, tag string) {
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, p1, p2)
	m.Edges = append(m.Edges, Edge{A: base, B: base + 1, Tag: tag})
}

// edges builds edges sharing one tag from index pairs.
func edges(tag string, pairs ...[2]int) []Edge {
	out := make([]Edge, len(pairs))
	for i, p := range pairs {
		out[i] = Edge{A: p[0], B: p[1], Tag: tag}
	}
	return out
}

// Axis names a rotation axis.
type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

// Angles holds a scene's rotation accumulators and their per-tick
// increments. Only Advance changes the accumulators.
type Angles struct {
	X, Y, Z    float64
	DX, DY, DZ float64
}

// Advance adds one tick of increments.
func (a *Angles) Advance() {
	a.X += a.DX
	a.Y += a.DY
	a.Z += a.DZ
}

// Rotate applies the rotations named by chain, in order.
func (a *Angles) Rotate(p math3d.Vec3, chain ...Axis) math3d.Vec3 {
	for _, ax := range chain {
		switch ax {
		case X:
			p = p.RotateX(a.X)
		case Y:
			p = p.RotateY(a.Y)
		case Z:
			p = p.RotateZ(a.Z)
		}
	}
	return p
}

// StyleFunc picks a style for a tagged line at a depth.
type StyleFunc func(tag string, depth float64) render.Style

// flat returns a StyleFunc that ignores tag and depth.
func flat(role render.ColorRole, thickness, opacity float64) StyleFunc {
	s := render.Style{Role: role, Thickness: thickness, Opacity: opacity}
	return func(string, float64) render.Style { return s }
}

// byTag returns a StyleFunc that looks the tag up, using def for unknown
// tags.
func byTag(def render.Style, styles map[string]render.Style) StyleFunc {
	return func(tag string, _ float64) render.Style {
		if s, ok := styles[tag]; ok {
			return s
		}
		return def
	}
}

// rigid is a scene whose geometry never changes: a fixed mesh spun by a
// rotation chain.
type rigid struct {
	angles Angles
	chain  []Axis
	mesh   Mesh
	style  StyleFunc
}

func (s *rigid) Advance() { s.angles.Advance() }

func (s *rigid) Lines(dst []Line) []Line { return s.mesh.AppendLines(dst) }

func (s *rigid) Rotate(p math3d.Vec3) math3d.Vec3 { return s.angles.Rotate(p, s.chain...) }

func (s *rigid) Style(tag string, depth float64) render.Style { return s.style(tag, depth) }

// Geometry exposes the fixed mesh for validation.
func (s *rigid) Geometry() *Mesh { return &s.mesh }

// generated is a scene whose lines are rebuilt every tick by build.
type generated struct {
	angles Angles
	chain  []Axis
	style  StyleFunc
	step   func()
	build  func(dst []Line) []Line
}

func (s *generated) Advance() {
	s.angles.Advance()
	if s.step != nil {
		s.step()
	}
}

func (s *generated) Lines(dst []Line) []Line { return s.build(dst) }

func (s *generated) Rotate(p math3d.Vec3) math3d.Vec3 { return s.angles.Rotate(p, s.chain...) }

func (s *generated) Style(tag string, depth float64) render.Style { return s.style(tag, depth) }
