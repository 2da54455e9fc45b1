package scene

import (
	"math"

	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
)

func init() {
	register("retroPC", 110, fixed(NewRetroPC))
	register("keypadPhone", 130, fixed(NewKeypadPhone))
	register("typewriter", 110, fixed(NewTypewriter))
	register("walkman", 130, fixed(NewWalkman))
	register("gramophone", 110, fixed(NewGramophone))
}

// NewRetroPC returns a beige-box computer with keyboard and mouse on a
// gridded desk.
func NewRetroPC() Scene {
	m := Mesh{
		Vertices: []math3d.Vec3{
			// Monitor body
			{X: -0.6, Y: -0.6, Z: -0.6}, {X: 0.6, Y: -0.6, Z: -0.6},
			{X: 0.6, Y: 0.3, Z: -0.6}, {X: -0.6, Y: 0.3, Z: -0.6},
			{X: -0.7, Y: -0.7, Z: 0.2}, {X: 0.7, Y: -0.7, Z: 0.2},
			{X: 0.7, Y: 0.4, Z: 0.2}, {X: -0.7, Y: 0.4, Z: 0.2},
			// Screen
			{X: -0.55, Y: -0.55, Z: 0.22}, {X: 0.55, Y: -0.55, Z: 0.22},
			{X: 0.55, Y: 0.3, Z: 0.22}, {X: -0.55, Y: 0.3, Z: 0.22},
			// Keyboard
			{X: -0.8, Y: 0.5, Z: 0.4}, {X: 0.8, Y: 0.5, Z: 0.4},
			{X: -0.8, Y: 0.6, Z: 0.4}, {X: 0.8, Y: 0.6, Z: 0.4},
			{X: -0.85, Y: 0.7, Z: 1.1}, {X: 0.85, Y: 0.7, Z: 1.1},
			{X: -0.85, Y: 0.8, Z: 1.1}, {X: 0.85, Y: 0.8, Z: 1.1},
			// Mouse
			{X: 1.0, Y: 0.8, Z: 0.75}, {X: 1.25, Y: 0.8, Z: 0.75},
			{X: 1.25, Y: 0.8, Z: 1.0}, {X: 1.0, Y: 0.8, Z: 1.0},
			{X: 1.0, Y: 0.72, Z: 0.75}, {X: 1.25, Y: 0.72, Z: 0.75},
			{X: 1.25, Y: 0.76, Z: 1.0}, {X: 1.0, Y: 0.76, Z: 1.0},
			// Table
			{X: -1.6, Y: 0.82, Z: -0.8}, {X: 1.6, Y: 0.82, Z: -0.8},
			{X: 1.6, Y: 0.82, Z: 1.3}, {X: -1.6, Y: 0.82, Z: 1.3},
		},
		Edges: edges("", join(
			boxPairs(0),
			loop(8, 4),
			[][2]int{
				{12, 13}, {13, 17}, {17, 16}, {16, 12},
				{14, 15}, {15, 19}, {19, 18}, {18, 14},
				{12, 14}, {13, 15}, {16, 18}, {17, 19},
			},
			loop(20, 4), loop(24, 4),
			[][2]int{{20, 24}, {21, 25}, {22, 26}, {23, 27}, {24, 27}},
		)...),
	}
	m.Edges = append(m.Edges, edges("table", loop(28, 4)...)...)
	for _, gx := range steps(-1.2, 1.2, 0.4) {
		m.addLine(math3d.V3(gx, 0.82, -0.8), math3d.V3(gx, 0.82, 1.3), "table")
	}
	for _, gz := range steps(-0.4, 0.8, 0.4) {
		m.addLine(math3d.V3(-1.6, 0.82, gz), math3d.V3(1.6, 0.82, gz), "table")
	}

	return &rigid{
		angles: Angles{Y: -0.5, DY: 0.01},
		chain:  []Axis{Y},
		mesh:   m,
		style: byTag(render.Style{Role: render.RolePrimary, Thickness: 1.5, Opacity: 0.6}, map[string]render.Style{
			"table": {Role: render.RolePrimary, Thickness: 1, Opacity: 0.3},
		}),
	}
}

// NewKeypadPhone returns a candybar phone with antenna and keypad grid.
func NewKeypadPhone() Scene {
	m := Mesh{
		Vertices: append(
			boxVertices(math3d.V3(-0.4, -0.8, -0.1), math3d.V3(0.4, 0.8, 0.1)),
			// Screen
			math3d.V3(-0.32, -0.72, 0.11), math3d.V3(0.32, -0.72, 0.11),
			math3d.V3(0.32, -0.1, 0.11), math3d.V3(-0.32, -0.1, 0.11),
			// Antenna
			math3d.V3(0.25, -0.8, -0.05), math3d.V3(0.25, -1.0, -0.05),
		),
		Edges: edges("", join(boxPairs(0), loop(8, 4), [][2]int{{12, 13}})...),
	}
	for _, gy := range steps(0.1, 0.7, 0.2) {
		m.addLine(math3d.V3(-0.3, gy, 0.11), math3d.V3(0.3, gy, 0.11), "keypad")
	}
	for _, gx := range steps(-0.3, 0.3, 0.2) {
		m.addLine(math3d.V3(gx, 0.1, 0.11), math3d.V3(gx, 0.7, 0.11), "keypad")
	}

	return &rigid{
		angles: Angles{X: 0.2, DY: 0.015},
		chain:  []Axis{X, Y},
		mesh:   m,
		style:  flat(render.RolePrimary, 1.2, 0.6),
	}
}

// NewTypewriter returns a typewriter with carriage, paper and key rows.
func NewTypewriter() Scene {
	m := Mesh{
		Vertices: []math3d.Vec3{
			// Base body
			{X: -0.7, Y: 0.4, Z: -0.4}, {X: 0.7, Y: 0.4, Z: -0.4},
			{X: 0.7, Y: 0.4, Z: 0.5}, {X: -0.7, Y: 0.4, Z: 0.5},
			{X: -0.7, Y: 0.1, Z: -0.4}, {X: 0.7, Y: 0.1, Z: -0.4},
			{X: 0.7, Y: 0.2, Z: 0.1}, {X: -0.7, Y: 0.2, Z: 0.1},
			{X: -0.7, Y: 0.35, Z: 0.5}, {X: 0.7, Y: 0.35, Z: 0.5},
			// Carriage
			{X: -0.8, Y: -0.05, Z: -0.4}, {X: 0.8, Y: -0.05, Z: -0.4},
			{X: 0.8, Y: 0.15, Z: -0.4}, {X: -0.8, Y: 0.15, Z: -0.4},
			{X: -0.8, Y: -0.05, Z: -0.25}, {X: 0.8, Y: -0.05, Z: -0.25},
			{X: 0.8, Y: 0.15, Z: -0.25}, {X: -0.8, Y: 0.15, Z: -0.25},
			// Paper
			{X: -0.4, Y: -0.05, Z: -0.32}, {X: 0.4, Y: -0.05, Z: -0.32},
			{X: 0.4, Y: -0.7, Z: -0.32}, {X: -0.4, Y: -0.7, Z: -0.32},
		},
		Edges: edges("", join(
			loop(0, 4), loop(4, 4),
			[][2]int{{6, 9}, {9, 8}, {8, 7}},
			[][2]int{{0, 4}, {1, 5}, {2, 9}, {3, 8}},
			boxPairs(10),
			loop(18, 4),
		)...),
	}
	for _, kx := range steps(-0.5, 0.5, 0.25) {
		for _, kz := range steps(0.2, 0.4, 0.1) {
			ky := 0.2 + (kz-0.2)*1.5
			m.addLine(math3d.V3(kx-0.05, ky, kz), math3d.V3(kx+0.05, ky, kz), "key")
		}
	}

	return &rigid{
		angles: Angles{X: 0.3, DY: 0.01},
		chain:  []Axis{X, Y},
		mesh:   m,
		style:  flat(render.RolePrimary, 1.3, 0.6),
	}
}

// Walkman reel geometry.
const (
	reelRadius   = 0.1
	reelSegments = 6
	reelDepth    = 0.15
)

// NewWalkman returns a cassette player whose reels spin inside the window.
func NewWalkman() Scene {
	body := Mesh{
		Vertices: append(
			boxVertices(math3d.V3(-0.6, -0.8, -0.2), math3d.V3(0.6, 0.8, 0.2)),
			math3d.V3(-0.4, -0.3, 0.21), math3d.V3(0.4, -0.3, 0.21),
			math3d.V3(0.4, 0.3, 0.21), math3d.V3(-0.4, 0.3, 0.21),
		),
		Edges: edges("body", join(boxPairs(0), loop(8, 4))...),
	}
	antenna := Line{P1: math3d.V3(-0.4, -0.8, 0), P2: math3d.V3(-0.4, -1.2, 0), Tag: "body"}

	var reel float64
	return &generated{
		angles: Angles{DY: 0.008},
		chain:  []Axis{Y},
		step:   func() { reel += 0.05 },
		style: func(tag string, _ float64) render.Style {
			switch tag {
			case "reel":
				return render.Style{Role: render.RoleAccent, Thickness: 1, Opacity: 0.6}
			case "body":
				return render.Style{Role: render.RolePrimary, Thickness: 1.5, Opacity: 0.6}
			}
			return render.Style{Role: render.RolePrimary, Thickness: 1, Opacity: 0.6}
		},
		build: func(dst []Line) []Line {
			dst = body.AppendLines(dst)
			for _, cx := range []float64{-0.2, 0.2} {
				center := math3d.V3(cx, 0, reelDepth)
				for i := range reelSegments {
					s1, c1 := math.Sincos(segmentAngle(i, reelSegments) + reel)
					s2, c2 := math.Sincos(segmentAngle(i+1, reelSegments) + reel)
					p1 := math3d.V3(cx+c1*reelRadius, s1*reelRadius, reelDepth)
					p2 := math3d.V3(cx+c2*reelRadius, s2*reelRadius, reelDepth)
					dst = append(dst,
						Line{P1: p1, P2: p2, Tag: "reel"},
						Line{P1: p1, P2: center, Tag: "reel"},
					)
				}
			}
			return append(dst, antenna)
		},
	}
}

// NewGramophone returns a record player with a flared horn.
func NewGramophone() Scene {
	m := Mesh{
		Vertices: boxVertices(math3d.V3(-0.6, 0.4, -0.6), math3d.V3(0.6, 0.8, 0.6)),
		Edges:    edges("base", boxPairs(0)...),
	}

	const segments = 12
	var lines []Line
	lines = appendRing(lines, 0.5, 0.38, segments, "platter")

	const hornRings = 8
	horn := make([][]math3d.Vec3, hornRings+1)
	for i := range horn {
		t := float64(i) / hornRings
		r := 0.1 + t*t*0.8
		hy := 0.3 - t*0.8
		hz := -0.3 - math.Sin(t*math.Pi/2)*0.5
		horn[i] = make([]math3d.Vec3, segments)
		for j := range segments {
			s, c := math.Sincos(segmentAngle(j, segments))
			horn[i][j] = math3d.V3(c*r, hy+s*r*0.2, hz)
		}
	}
	for i := range horn {
		for j := range segments {
			lines = append(lines, Line{P1: horn[i][j], P2: horn[i][(j+1)%segments], Tag: "horn"})
			if i < hornRings {
				lines = append(lines, Line{P1: horn[i][j], P2: horn[i+1][j], Tag: "horn"})
			}
		}
	}
	for _, l := range lines {
		m.addLine(l.P1, l.P2, l.Tag)
	}

	return &rigid{
		angles: Angles{DY: 0.01},
		chain:  []Axis{Y},
		mesh:   m,
		style: func(tag string, _ float64) render.Style {
			s := render.Style{Role: render.RolePrimary, Thickness: 1.2, Opacity: 0.6}
			if tag == "horn" {
				s.Role = render.RoleAccent
			}
			if tag == "base" {
				s.Thickness = 2
			}
			return s
		},
	}
}
