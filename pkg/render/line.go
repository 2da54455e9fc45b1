package render

import (
	"math"

	"github.com/taigrr/neonwire/pkg/math3d"
)

// MinSegmentLength is the shortest segment, in pixels, worth drawing.
const MinSegmentLength = 0.1

// Rect is a line expressed as a rotated rectangle anchored at its
// left-centre.
type Rect struct {
	Anchor math3d.Vec2
	Width  float64
	Height float64
	// Angle is the rotation around Anchor in degrees.
	Angle float64
}

// LineRect converts a segment into its drawable rectangle. It reports false
// for degenerate or non-finite segments, which must not be drawn.
func LineRect(p1, p2 math3d.Vec2, thickness float64) (Rect, bool) {
	if !p1.IsFinite() || !p2.IsFinite() {
		return Rect{}, false
	}
	d := p2.Sub(p1)
	length := d.Len()
	if length < MinSegmentLength {
		return Rect{}, false
	}
	return Rect{
		Anchor: p1,
		Width:  length,
		Height: thickness,
		Angle:  math.Atan2(d.Y, d.X) * 180 / math.Pi,
	}, true
}

// Corners returns the rectangle's corners in drawing order.
func (r Rect) Corners() [4]math3d.Vec2 {
	s, c := math.Sincos(r.Angle * math.Pi / 180)
	// unit vectors along and across the line
	ux, uy := c, s
	nx, ny := -s*r.Height/2, c*r.Height/2
	ax, ay := r.Anchor.X, r.Anchor.Y
	bx, by := ax+ux*r.Width, ay+uy*r.Width
	return [4]math3d.Vec2{
		{X: ax + nx, Y: ay + ny},
		{X: bx + nx, Y: by + ny},
		{X: bx - nx, Y: by - ny},
		{X: ax - nx, Y: ay - ny},
	}
}
