package render

import (
	"image/color"
	"slices"

	"github.com/taigrr/neonwire/pkg/math3d"
)

// ColorRole names a palette slot. Scenes choose roles, never concrete
// colors, so swapping palettes never touches geometry.
type ColorRole uint8

const (
	RolePrimary ColorRole = iota
	RoleAccent
	RoleDanger
	RoleSuccess
)

func (r ColorRole) String() string {
	switch r {
	case RoleAccent:
		return "accent"
	case RoleDanger:
		return "danger"
	case RoleSuccess:
		return "success"
	default:
		return "primary"
	}
}

// Palette resolves color roles to concrete colors.
type Palette interface {
	Color(role ColorRole) color.RGBA
	Background() color.RGBA
}

// Style is the visual treatment of one segment.
type Style struct {
	Role      ColorRole
	Thickness float64
	Opacity   float64
}

// Segment is a projected line ready for drawing.
type Segment struct {
	P1, P2 math3d.Vec2
	Depth  float64
	Tag    string
	Style  Style
	// Index is the position of the source line within its tick and breaks
	// depth ties.
	Index int
}

// Frame is the ordered output of one tick.
type Frame struct {
	Scene    string
	Seq      uint64
	Segments []Segment
}

// SortSegments orders segments by ascending depth so that later segments
// paint over earlier ones. Equal depths keep source order.
func SortSegments(segs []Segment) {
	slices.SortStableFunc(segs, func(a, b Segment) int {
		switch {
		case a.Depth < b.Depth:
			return -1
		case a.Depth > b.Depth:
			return 1
		}
		return a.Index - b.Index
	})
}
