package scene

import (
	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
)

func init() {
	register("cube", 80, fixed(NewCube))
	register("hyperCube", 100, fixed(NewHyperCube))
}

// tumble is the three-axis spin shared by the cube scenes.
func tumble() Angles {
	return Angles{DX: 0.006, DY: 0.009, DZ: 0.004}
}

// NewCube returns the unit cube spinning on all three axes.
func NewCube() Scene {
	return &rigid{
		angles: tumble(),
		chain:  []Axis{X, Y, Z},
		mesh: Mesh{
			Vertices: boxVertices(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1)),
			Edges:    edges("", boxPairs(0)...),
		},
		style: flat(render.RolePrimary, 2, 0.7),
	}
}

// NewHyperCube returns a tesseract projection: a cube inside a cube with
// their corners joined.
func NewHyperCube() Scene {
	verts := boxVertices(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
	verts = append(verts, boxVertices(math3d.V3(-0.5, -0.5, -0.5), math3d.V3(0.5, 0.5, 0.5))...)

	es := edges("outer", boxPairs(0)...)
	es = append(es, edges("inner", boxPairs(8)...)...)
	for i := range 8 {
		es = append(es, Edge{A: i, B: i + 8, Tag: "connector"})
	}

	return &rigid{
		angles: tumble(),
		chain:  []Axis{X, Y, Z},
		mesh:   Mesh{Vertices: verts, Edges: es},
		style: byTag(render.Style{Role: render.RolePrimary, Thickness: 1.5, Opacity: 0.6}, map[string]render.Style{
			"inner":     {Role: render.RolePrimary, Thickness: 1, Opacity: 0.6},
			"connector": {Role: render.RoleAccent, Thickness: 1.5, Opacity: 0.6},
		}),
	}
}
