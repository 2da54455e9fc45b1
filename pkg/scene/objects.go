package scene

import (
	"math"

	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
)

func init() {
	register("wireframeHouse", 120, fixed(NewHouse))
	register("roseInPot", 130, fixed(NewRoseInPot))
	register("cyberObelisk", 130, fixed(NewCyberObelisk))
}

// NewHouse returns a gabled house with chimney, door and windows.
func NewHouse() Scene {
	verts := []math3d.Vec3{
		// Main body
		{X: -0.6, Y: 0.6, Z: -0.6}, {X: 0.6, Y: 0.6, Z: -0.6},
		{X: 0.6, Y: 0.6, Z: 0.6}, {X: -0.6, Y: 0.6, Z: 0.6},
		{X: -0.6, Y: -0.2, Z: -0.6}, {X: 0.6, Y: -0.2, Z: -0.6},
		{X: 0.6, Y: -0.2, Z: 0.6}, {X: -0.6, Y: -0.2, Z: 0.6},
		// Roof ridge
		{X: 0, Y: -0.8, Z: -0.6}, {X: 0, Y: -0.8, Z: 0.6},
		// Chimney
		{X: 0.2, Y: -0.5, Z: -0.3}, {X: 0.4, Y: -0.5, Z: -0.3},
		{X: 0.4, Y: -0.5, Z: -0.1}, {X: 0.2, Y: -0.5, Z: -0.1},
		{X: 0.2, Y: -0.9, Z: -0.3}, {X: 0.4, Y: -0.9, Z: -0.3},
		{X: 0.4, Y: -0.9, Z: -0.1}, {X: 0.2, Y: -0.9, Z: -0.1},
		// Door
		{X: -0.15, Y: 0.6, Z: 0.61}, {X: 0.15, Y: 0.6, Z: 0.61},
		{X: 0.15, Y: 0.2, Z: 0.61}, {X: -0.15, Y: 0.2, Z: 0.61},
		// Front window
		{X: -0.45, Y: 0.2, Z: 0.61}, {X: -0.25, Y: 0.2, Z: 0.61},
		{X: -0.25, Y: 0, Z: 0.61}, {X: -0.45, Y: 0, Z: 0.61},
		// Side window
		{X: 0.61, Y: 0.2, Z: -0.1}, {X: 0.61, Y: 0.2, Z: 0.1},
		{X: 0.61, Y: 0, Z: 0.1}, {X: 0.61, Y: 0, Z: -0.1},
	}
	pairs := join(
		boxPairs(0),
		[][2]int{{4, 8}, {5, 8}, {6, 9}, {7, 9}, {8, 9}},
		loop(14, 4),
		[][2]int{{10, 14}, {11, 15}, {12, 16}, {13, 17}},
		loop(18, 4),
		loop(22, 4), [][2]int{{22, 24}, {23, 25}},
		loop(26, 4), [][2]int{{26, 28}, {27, 29}},
	)

	return &rigid{
		angles: Angles{DY: 0.01},
		chain:  []Axis{Y},
		mesh:   Mesh{Vertices: verts, Edges: edges("", pairs...)},
		style:  flat(render.RolePrimary, 1.5, 0.6),
	}
}

// NewRoseInPot returns a five-petal rose on a stem in a tapered pot.
func NewRoseInPot() Scene {
	const (
		segments   = 12
		potTopR    = 0.5
		potBottomR = 0.35
		potTopY    = 0.4
		potBottomY = 0.8
		petals     = 5
		petalR     = 0.25
		roseY      = -0.2
	)

	var m Mesh
	for i := range segments {
		t1, t2 := segmentAngle(i, segments), segmentAngle(i+1, segments)
		m.addLine(ringPoint(t1, potTopR, potTopY), ringPoint(t2, potTopR, potTopY), "pot")
		m.addLine(ringPoint(t1, potBottomR, potBottomY), ringPoint(t2, potBottomR, potBottomY), "pot")
		m.addLine(ringPoint(t1, potTopR, potTopY), ringPoint(t1, potBottomR, potBottomY), "pot")
	}

	stem := []math3d.Vec3{{X: 0, Y: 0.4, Z: 0}, {X: 0.1, Y: 0.1, Z: 0.05}, {X: -0.05, Y: -0.2, Z: 0}}
	for i := range len(stem) - 1 {
		m.addLine(stem[i], stem[i+1], "stem")
	}

	petal := func(t float64) math3d.Vec3 {
		s, c := math.Sincos(t)
		return math3d.V3(c*petalR-0.05, roseY-0.2, s*petalR)
	}
	for i := range petals {
		t1, t2 := segmentAngle(i, petals), segmentAngle(i+1, petals)
		m.addLine(math3d.V3(0, roseY, 0), petal(t1), "rose")
		m.addLine(petal(t1), petal(t2), "rose")
	}

	return &rigid{
		angles: Angles{DY: 0.01},
		chain:  []Axis{Y},
		mesh:   m,
		style: byTag(render.Style{Role: render.RolePrimary, Thickness: 2, Opacity: 0.7}, map[string]render.Style{
			"pot":  {Role: render.RolePrimary, Thickness: 1.5, Opacity: 0.7},
			"stem": {Role: render.RoleSuccess, Thickness: 2, Opacity: 0.7},
			"rose": {Role: render.RoleDanger, Thickness: 2, Opacity: 0.7},
		}),
	}
}

// NewCyberObelisk returns a square pyramid.
func NewCyberObelisk() Scene {
	verts := []math3d.Vec3{
		{X: -0.6, Y: 0.6, Z: -0.6}, {X: 0.6, Y: 0.6, Z: -0.6},
		{X: 0.6, Y: 0.6, Z: 0.6}, {X: -0.6, Y: 0.6, Z: 0.6},
		{X: 0, Y: -0.8, Z: 0}, // tip
	}
	pairs := join(loop(0, 4), [][2]int{{0, 4}, {1, 4}, {2, 4}, {3, 4}})

	return &rigid{
		angles: Angles{DY: 0.01},
		chain:  []Axis{Y},
		mesh:   Mesh{Vertices: verts, Edges: edges("", pairs...)},
		style:  flat(render.RolePrimary, 1.5, 0.6),
	}
}
