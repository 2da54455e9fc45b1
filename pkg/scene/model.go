package scene

import (
	"errors"
	"fmt"

	"github.com/taigrr/neonwire/pkg/models"
	"github.com/taigrr/neonwire/pkg/render"
)

// ErrNoModelPath is returned by the model scene when Options.ModelPath is
// empty.
var ErrNoModelPath = errors.New("model scene needs a model path")

// modelExtent is the side of the cube imported models are fitted into.
const modelExtent = 2.0

func init() {
	register("model", 100, loadModel)
}

func loadModel(opts Options) (Scene, error) {
	if opts.ModelPath == "" {
		return nil, ErrNoModelPath
	}
	mesh, err := models.LoadGLB(opts.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return NewModel(mesh), nil
}

// NewModel returns a scene that spins an imported mesh, fitted into the
// [-1, 1] cube. The mesh is modified in place.
func NewModel(mesh *models.Mesh) Scene {
	mesh.Normalize(modelExtent)

	m := Mesh{Vertices: mesh.Positions}
	for _, e := range mesh.Edges() {
		m.Edges = append(m.Edges, Edge{A: e[0], B: e[1]})
	}

	return &rigid{
		angles: Angles{X: 0.3, DY: 0.01},
		chain:  []Axis{X, Y},
		mesh:   m,
		style:  flat(render.RolePrimary, 1, 0.6),
	}
}
