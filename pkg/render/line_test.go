package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/taigrr/neonwire/pkg/math3d"
)

func TestLineRect(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 math3d.Vec2
		ok     bool
		width  float64
		angle  float64
	}{
		{"horizontal", math3d.V2(0, 0), math3d.V2(10, 0), true, 10, 0},
		{"vertical down", math3d.V2(5, 5), math3d.V2(5, 15), true, 10, 90},
		{"diagonal back", math3d.V2(3, 4), math3d.V2(0, 0), true, 5, -180 + math.Atan2(4, 3)*180/math.Pi},
		{"just long enough", math3d.V2(0, 0), math3d.V2(0.1, 0), true, 0.1, 0},
		{"degenerate", math3d.V2(1, 1), math3d.V2(1.05, 1), false, 0, 0},
		{"same point", math3d.V2(7, 7), math3d.V2(7, 7), false, 0, 0},
		{"nan endpoint", math3d.V2(math.NaN(), 0), math3d.V2(10, 0), false, 0, 0},
		{"inf endpoint", math3d.V2(0, 0), math3d.V2(math.Inf(1), 0), false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := LineRect(tt.p1, tt.p2, 2)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if math.Abs(r.Width-tt.width) > 1e-9 {
				t.Errorf("width = %v, want %v", r.Width, tt.width)
			}
			if math.Abs(r.Angle-tt.angle) > 1e-9 {
				t.Errorf("angle = %v, want %v", r.Angle, tt.angle)
			}
			if r.Height != 2 {
				t.Errorf("height = %v, want 2", r.Height)
			}
			if r.Anchor != tt.p1 {
				t.Errorf("anchor = %v, want %v", r.Anchor, tt.p1)
			}
		})
	}
}

func TestRectCorners(t *testing.T) {
	r, _ := LineRect(math3d.V2(10, 10), math3d.V2(20, 10), 4)
	want := [4]math3d.Vec2{{X: 10, Y: 12}, {X: 20, Y: 12}, {X: 20, Y: 8}, {X: 10, Y: 8}}

	for i, c := range r.Corners() {
		if c.Distance(want[i]) > 1e-9 {
			t.Errorf("corner %d = %v, want %v", i, c, want[i])
		}
	}
}

type testPalette struct{}

func (testPalette) Color(role ColorRole) color.RGBA {
	if role == RoleAccent {
		return color.RGBA{0, 255, 0, 255}
	}
	return color.RGBA{255, 0, 0, 255}
}

func (testPalette) Background() color.RGBA { return color.RGBA{0, 0, 0, 255} }

func TestPainterDrawSegment(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	p := NewPainter(fb, testPalette{})

	drawn := p.DrawFrame(Frame{Segments: []Segment{
		{P1: math3d.V2(2, 10), P2: math3d.V2(18, 10), Style: Style{Thickness: 2, Opacity: 1}},
		{P1: math3d.V2(5, 5), P2: math3d.V2(5.01, 5), Style: Style{Thickness: 2, Opacity: 1}},
	}})

	if drawn != 1 {
		t.Errorf("drawn = %d, want 1", drawn)
	}
	if got := fb.GetPixel(10, 10); got.R < 200 || got.G != 0 {
		t.Errorf("pixel on the line = %v, want red", got)
	}
	if got := fb.GetPixel(10, 2); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("pixel off the line = %v, want background", got)
	}
	if got := fb.GetPixel(5, 5); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("degenerate segment painted %v", got)
	}
}

func TestPainterOpacityAndRole(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	p := NewPainter(fb, testPalette{})

	p.DrawFrame(Frame{Segments: []Segment{
		{P1: math3d.V2(0, 10), P2: math3d.V2(20, 10), Style: Style{Role: RoleAccent, Thickness: 4, Opacity: 0.5}},
	}})

	got := fb.GetPixel(10, 10)
	if got.G < 120 || got.G > 135 || got.R != 0 {
		t.Errorf("half-opacity accent pixel = %v, want G≈128", got)
	}
}

func TestPainterClipsOffscreen(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	p := NewPainter(fb, testPalette{})

	ok := p.DrawSegment(Segment{P1: math3d.V2(-50, -50), P2: math3d.V2(-40, -40), Style: Style{Thickness: 1, Opacity: 1}})
	if !ok {
		t.Error("offscreen segment reported degenerate")
	}

	// partially visible lines must not panic and must paint the visible part
	p.DrawSegment(Segment{P1: math3d.V2(-5, 5), P2: math3d.V2(15, 5), Style: Style{Thickness: 2, Opacity: 1}})
	if got := fb.GetPixel(5, 5); got.R == 0 {
		t.Errorf("visible part of clipped line not painted: %v", got)
	}
}
