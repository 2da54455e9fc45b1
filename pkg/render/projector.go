package render

import (
	"github.com/taigrr/neonwire/pkg/math3d"
)

// Default perspective constants shared by every scene.
const (
	DefaultFOV      = 300.0
	DefaultDistance = 2.5
)

// Lens carries the per-scene projection overrides. Zero fields fall back
// to the defaults.
type Lens struct {
	FOV float64
	// CenterY is the vertical position of the origin as a fraction of the
	// viewport height (0.5 when zero).
	CenterY float64
	// ShiftY is added to projected y as a fraction of the viewport height.
	ShiftY float64
}

// Projected is a point on the screen plane plus the rotated (unprojected)
// depth it came from.
type Projected struct {
	math3d.Vec2
	Z float64
}

// Projector maps rotated model-space points onto a viewport with a simple
// pinhole perspective: factor = FOV / (FOV + z + Distance).
type Projector struct {
	FOV      float64
	Distance float64
	Width    float64
	Height   float64
	CenterX  float64
	CenterY  float64
	OffsetY  float64
}

// NewProjector creates a projector for a viewport with the default lens.
func NewProjector(width, height int) *Projector {
	return &Projector{
		FOV:      DefaultFOV,
		Distance: DefaultDistance,
		Width:    float64(width),
		Height:   float64(height),
		CenterX:  float64(width) / 2,
		CenterY:  float64(height) / 2,
	}
}

// WithLens returns a copy of the projector with the lens overrides applied.
func (p Projector) WithLens(l Lens) *Projector {
	if l.FOV > 0 {
		p.FOV = l.FOV
	}
	if l.CenterY > 0 {
		p.CenterY = p.Height * l.CenterY
	}
	p.OffsetY = p.Height * l.ShiftY
	return &p
}

// Factor returns the perspective scale for a point at depth z.
func (p *Projector) Factor(z float64) float64 {
	return p.FOV / (p.FOV + z + p.Distance)
}

// Project maps a rotated point to screen coordinates at the given size.
// The input z is carried through unchanged.
func (p *Projector) Project(v math3d.Vec3, size float64) Projected {
	f := p.Factor(v.Z)
	return Projected{
		Vec2: math3d.Vec2{
			X: v.X*f*size + p.CenterX,
			Y: v.Y*f*size + p.CenterY + p.OffsetY,
		},
		Z: v.Z,
	}
}
