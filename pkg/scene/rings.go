package scene

import (
	"math"

	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
)

func init() {
	register("dataDisk", 140, fixed(NewDataDisk))
	register("cyberTorus", 100, fixed(NewCyberTorus))
	register("sea", 150, fixed(NewSea))
}

// NewDataDisk returns a tilted platter of concentric tracks and sectors.
// Lines on the far half dim.
func NewDataDisk() Scene {
	const segments = 24
	radii := []float64{0.2, 0.5, 0.8, 1.0}

	return &generated{
		angles: Angles{X: 0.6, DY: 0.015},
		chain:  []Axis{X, Y},
		style: func(tag string, depth float64) render.Style {
			s := render.Style{Role: render.RolePrimary, Thickness: 1.5, Opacity: 0.6}
			if tag == "sector" {
				s.Role, s.Thickness = render.RoleAccent, 1
			}
			if depth <= 0 {
				s.Opacity = 0.2
			}
			return s
		},
		build: func(dst []Line) []Line {
			for k, r := range radii {
				for i := range segments {
					t1, t2 := segmentAngle(i, segments), segmentAngle(i+1, segments)
					p1 := ringPoint(t1, r, 0)
					dst = append(dst, Line{P1: p1, P2: ringPoint(t2, r, 0), Tag: "ring"})
					if k > 0 {
						dst = append(dst, Line{P1: p1, P2: ringPoint(t1, radii[k-1], 0), Tag: "sector"})
					}
				}
			}
			return dst
		},
	}
}

// torusPoint returns the point at major angle u and minor angle v.
func torusPoint(u, v, major, minor float64) math3d.Vec3 {
	su, cu := math.Sincos(u)
	sv, cv := math.Sincos(v)
	ring := major + minor*cv
	return math3d.Vec3{X: ring * cu, Y: minor * sv, Z: ring * su}
}

// NewCyberTorus returns a tilted torus whose far side fades.
func NewCyberTorus() Scene {
	const (
		majorSegments = 16
		minorSegments = 8
		majorR        = 1.0
		minorR        = 0.4
	)

	return &generated{
		angles: Angles{X: 0.5, DY: 0.01},
		chain:  []Axis{X, Y},
		style: func(tag string, depth float64) render.Style {
			s := render.Style{Role: render.RolePrimary, Thickness: 1, Opacity: 0.5}
			if tag == "minor" {
				s.Role = render.RoleAccent
			}
			if depth <= 0 {
				s.Opacity = 0.15
			}
			return s
		},
		build: func(dst []Line) []Line {
			for i := range majorSegments {
				u1, u2 := segmentAngle(i, majorSegments), segmentAngle(i+1, majorSegments)
				for j := range minorSegments {
					v1, v2 := segmentAngle(j, minorSegments), segmentAngle(j+1, minorSegments)
					p1 := torusPoint(u1, v1, majorR, minorR)
					dst = append(dst,
						Line{P1: p1, P2: torusPoint(u2, v1, majorR, minorR), Tag: "major"},
						Line{P1: p1, P2: torusPoint(u1, v2, majorR, minorR), Tag: "minor"},
					)
				}
			}
			return dst
		},
	}
}

// Sea grid layout.
const (
	seaGrid    = 10
	seaSpacing = 0.3
	seaLevel   = 0.5
)

// NewSea returns a rolling wave grid seen from above.
func NewSea() Scene {
	var t float64
	height := func(x, z float64) float64 {
		return math.Sin(x*2+t)*0.15 + math.Cos(z*2+t*0.8)*0.15 + seaLevel
	}
	offset := seaGrid * seaSpacing / 2
	coord := func(i int) float64 { return float64(i)*seaSpacing - offset }

	return &generated{
		// the heading turns at a tenth of the wave clock
		angles: Angles{X: 0.4, DY: 0.003},
		chain:  []Axis{X, Y},
		step:   func() { t += 0.03 },
		style:  flat(render.RolePrimary, 1, 0.4),
		build: func(dst []Line) []Line {
			for i := 0; i <= seaGrid; i++ {
				for j := 0; j <= seaGrid; j++ {
					x, z := coord(i), coord(j)
					p := math3d.V3(x, height(x, z), z)
					if i < seaGrid {
						nx := coord(i + 1)
						dst = append(dst, Line{P1: p, P2: math3d.V3(nx, height(nx, z), z)})
					}
					if j < seaGrid {
						nz := coord(j + 1)
						dst = append(dst, Line{P1: p, P2: math3d.V3(x, height(x, nz), nz)})
					}
				}
			}
			return dst
		},
	}
}
