package models

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/neonwire/pkg/math3d"
)

// ErrNoGeometry is returned when a file holds no triangle or line data.
var ErrNoGeometry = errors.New("no drawable geometry")

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// MaxEdges caps how many edges a model may contribute; zero means no
	// limit. Dense scans are unreadable as wireframes anyway.
	MaxEdges int
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{MaxEdges: 4096}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(filepath.Base(path), doc)
}

// FromDocument extracts geometry from an already decoded document.
func (l *GLTFLoader) FromDocument(name string, doc *gltf.Document) (*Mesh, error) {
	mesh := NewMesh(name)

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Faces) == 0 && len(mesh.Lines) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoGeometry)
	}
	if l.MaxEdges > 0 {
		if n := len(mesh.Edges()); n > l.MaxEdges {
			return nil, fmt.Errorf("%s has %d edges, limit is %d", name, n, l.MaxEdges)
		}
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		lines := prim.Mode == gltf.PrimitiveLines
		if !lines && prim.Mode != gltf.PrimitiveTriangles {
			// points, strips and fans are skipped
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		base := len(mesh.Positions)
		mesh.Positions = append(mesh.Positions, positions...)

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}
		for _, idx := range indices {
			if idx < 0 || idx >= len(positions) {
				return fmt.Errorf("index %d out of range for %d vertices", idx, len(positions))
			}
		}

		if lines {
			for i := 0; i+1 < len(indices); i += 2 {
				mesh.Lines = append(mesh.Lines, Edge{base + indices[i], base + indices[i+1]})
			}
			continue
		}
		for i := 0; i+2 < len(indices); i += 3 {
			mesh.Faces = append(mesh.Faces, [3]int{
				base + indices[i],
				base + indices[i+1],
				base + indices[i+2],
			})
		}
	}

	return nil
}

// readPositions decodes a VEC3 float accessor into model-space points.
func readPositions(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	acr, err := accessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	raw, err := modeler.ReadPosition(doc, acr, nil)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, len(raw))
	for i, p := range raw {
		result[i] = math3d.V3(float64(p[0]), float64(p[1]), float64(p[2]))
	}
	return result, nil
}

// readIndices decodes a SCALAR index accessor of any unsigned width.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	acr, err := accessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	raw, err := modeler.ReadIndices(doc, acr, nil)
	if err != nil {
		return nil, err
	}

	result := make([]int, len(raw))
	for i, idx := range raw {
		result[i] = int(idx)
	}
	return result, nil
}

func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	acr := doc.Accessors[idx]
	if acr.BufferView == nil && acr.Sparse == nil {
		return nil, fmt.Errorf("accessor %d has no data", idx)
	}
	// modeler slices the view at ByteOffset without checking it
	if v := acr.BufferView; v != nil && *v >= 0 && *v < len(doc.BufferViews) && acr.ByteOffset > doc.BufferViews[*v].ByteLength {
		return nil, fmt.Errorf("accessor %d starts past its buffer view", idx)
	}
	return acr, nil
}
