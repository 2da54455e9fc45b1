package scene

import (
	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
)

func init() {
	register("aiHead", 90, fixed(NewAIHead))
	register("cyberSkull", 120, fixed(NewCyberSkull))
}

// NewAIHead returns a low-poly humanoid head turning slowly.
func NewAIHead() Scene {
	verts := []math3d.Vec3{
		{X: 0, Y: 1.2, Z: 0}, // 0: crown
		{X: 0.4, Y: 1, Z: 0.3}, {X: -0.4, Y: 1, Z: 0.3}, // 1, 2: upper front
		{X: 0.4, Y: 1, Z: -0.3}, {X: -0.4, Y: 1, Z: -0.3}, // 3, 4: upper back
		{X: 0.5, Y: 0.6, Z: 0.4}, {X: -0.5, Y: 0.6, Z: 0.4}, // 5, 6: temples front
		{X: 0.5, Y: 0.6, Z: -0.4}, {X: -0.5, Y: 0.6, Z: -0.4}, // 7, 8: temples back
		{X: 0.6, Y: 0.2, Z: 0.3}, {X: -0.6, Y: 0.2, Z: 0.3}, // 9, 10: cheeks
		{X: 0.3, Y: 0.2, Z: 0.5}, {X: -0.3, Y: 0.2, Z: 0.5}, // 11, 12: eyes
		{X: 0, Y: -0.1, Z: 0.6}, // 13: nose
		{X: 0.5, Y: -0.3, Z: 0.3}, {X: -0.5, Y: -0.3, Z: 0.3}, // 14, 15: jaw
		{X: 0, Y: -0.5, Z: 0.4}, // 16: chin
		{X: 0.4, Y: -0.3, Z: -0.2}, {X: -0.4, Y: -0.3, Z: -0.2}, // 17, 18: back of jaw
		{X: 0.3, Y: -0.8, Z: 0}, {X: -0.3, Y: -0.8, Z: 0}, // 19, 20: neck
	}
	pairs := [][2]int{
		// Top of head
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {3, 4}, {1, 3}, {2, 4},
		// Upper face
		{1, 5}, {2, 6}, {3, 7}, {4, 8},
		{5, 6}, {7, 8}, {5, 7}, {6, 8},
		// Mid face
		{5, 9}, {6, 10}, {5, 11}, {6, 12},
		{9, 11}, {10, 12}, {11, 12}, {9, 10},
		// Nose
		{11, 13}, {12, 13}, {13, 16},
		// Jaw
		{9, 14}, {10, 15}, {14, 15},
		{14, 16}, {15, 16},
		{9, 17}, {10, 18}, {17, 18},
		// Neck
		{14, 19}, {15, 20}, {17, 19}, {18, 20},
		{19, 20},
		// Back of head
		{7, 17}, {8, 18},
	}

	return &rigid{
		angles: Angles{Y: 0.3, DY: 0.008},
		chain:  []Axis{X, Y},
		mesh:   Mesh{Vertices: verts, Edges: edges("", pairs...)},
		style:  flat(render.RolePrimary, 1.5, 0.6),
	}
}

// NewCyberSkull returns a skull with a circuit pattern on the forehead.
func NewCyberSkull() Scene {
	verts := []math3d.Vec3{
		// Cranium
		{X: 0, Y: -0.8, Z: 0},
		{X: 0.5, Y: -0.5, Z: 0.4}, {X: -0.5, Y: -0.5, Z: 0.4},
		{X: 0.5, Y: -0.5, Z: -0.4}, {X: -0.5, Y: -0.5, Z: -0.4},
		{X: 0.6, Y: 0, Z: 0.5}, {X: -0.6, Y: 0, Z: 0.5},
		{X: 0.6, Y: 0, Z: -0.5}, {X: -0.6, Y: 0, Z: -0.5},
		// Face
		{X: 0.2, Y: 0.2, Z: 0.7}, {X: -0.2, Y: 0.2, Z: 0.7}, // 9, 10: eye sockets
		{X: 0, Y: 0.4, Z: 0.8}, // 11: nose bridge
		{X: 0.3, Y: 0.5, Z: 0.6}, {X: -0.3, Y: 0.5, Z: 0.6}, // 12, 13: cheekbones
		// Jaw
		{X: 0.25, Y: 0.8, Z: 0.4}, {X: -0.25, Y: 0.8, Z: 0.4},
		{X: 0, Y: 0.9, Z: 0.5}, // 16: chin
	}
	es := edges("", [][2]int{
		// Cranium
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 5}, {2, 6}, {3, 7}, {4, 8},
		{5, 6}, {7, 8}, {5, 7}, {6, 8},
		// Face
		{5, 9}, {6, 10}, {9, 11}, {10, 11},
		{9, 12}, {10, 13}, {11, 16},
		// Jaw
		{12, 14}, {13, 15}, {14, 16}, {15, 16},
		{5, 12}, {6, 13},
	}...)

	// forehead circuit traces
	for i := range 3 {
		fy := -0.4 - float64(i)*0.1
		base := len(verts)
		verts = append(verts, math3d.V3(-0.3, fy, 0.55), math3d.V3(0.3, fy, 0.55))
		es = append(es, Edge{A: base, B: base + 1, Tag: "circuit"})
	}

	return &rigid{
		angles: Angles{DY: 0.008},
		chain:  []Axis{Y},
		mesh:   Mesh{Vertices: verts, Edges: es},
		style: byTag(render.Style{Role: render.RolePrimary, Thickness: 1.5, Opacity: 0.6}, map[string]render.Style{
			"circuit": {Role: render.RoleAccent, Thickness: 1, Opacity: 0.6},
		}),
	}
}
