package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Painter draws frames into a framebuffer. Every segment becomes a rotated,
// anti-aliased rectangle so thickness and opacity survive at any angle.
type Painter struct {
	fb      *Framebuffer
	palette Palette
	z       *vector.Rasterizer

	// LineScale multiplies each segment's thickness. Terminal cells are
	// coarse, so players usually draw thinner than the nominal width.
	LineScale float64
}

// NewPainter creates a painter targeting fb.
func NewPainter(fb *Framebuffer, palette Palette) *Painter {
	return &Painter{
		fb:        fb,
		palette:   palette,
		z:         vector.NewRasterizer(1, 1),
		LineScale: 1,
	}
}

// SetPalette swaps the palette used for subsequent frames.
func (p *Painter) SetPalette(palette Palette) {
	p.palette = palette
}

// DrawFrame clears the framebuffer and paints the frame's segments in order.
// It returns the number of segments that produced a rectangle.
func (p *Painter) DrawFrame(f Frame) int {
	p.fb.Clear(p.palette.Background())
	drawn := 0
	for _, seg := range f.Segments {
		if p.DrawSegment(seg) {
			drawn++
		}
	}
	return drawn
}

// DrawSegment paints one segment. Degenerate segments are dropped and
// reported as false.
func (p *Painter) DrawSegment(seg Segment) bool {
	thickness := max(seg.Style.Thickness*p.LineScale, 1)
	rect, ok := LineRect(seg.P1, seg.P2, thickness)
	if !ok {
		return false
	}

	corners := rect.Corners()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(p.fb.Bounds())
	if bounds.Empty() {
		return true
	}

	p.z.Reset(bounds.Dx(), bounds.Dy())
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	p.z.MoveTo(float32(corners[0].X-ox), float32(corners[0].Y-oy))
	for _, c := range corners[1:] {
		p.z.LineTo(float32(c.X-ox), float32(c.Y-oy))
	}
	p.z.ClosePath()

	col := p.palette.Color(seg.Style.Role)
	alpha := math.Max(0, math.Min(1, seg.Style.Opacity))
	src := image.NewUniform(color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(alpha*255 + 0.5)})
	p.z.Draw(p.fb, bounds, src, image.Point{})
	return true
}
