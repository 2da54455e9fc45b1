package render

import (
	"math"
	"testing"

	"github.com/taigrr/neonwire/pkg/math3d"
)

func TestProjectOriginIsViewportCenter(t *testing.T) {
	p := NewProjector(400, 800)
	got := p.Project(math3d.V3(0, 0, 0), 80)

	if got.X != 200 || got.Y != 400 {
		t.Errorf("origin projected to (%v, %v), want (200, 400)", got.X, got.Y)
	}
	if got.Z != 0 {
		t.Errorf("z = %v, want 0", got.Z)
	}
}

func TestProjectKeepsDepth(t *testing.T) {
	p := NewProjector(100, 100)
	for _, z := range []float64{-2, -0.5, 0, 1.25, 7} {
		if got := p.Project(math3d.V3(1, 1, z), 50).Z; got != z {
			t.Errorf("Project z=%v returned z=%v", z, got)
		}
	}
}

func TestFactorShrinksWithDepth(t *testing.T) {
	p := NewProjector(400, 800)
	prev := math.Inf(1)
	for z := -2.0; z <= 5; z += 0.25 {
		f := p.Factor(z)
		if f >= prev {
			t.Fatalf("factor(%v) = %v, not below factor at smaller z (%v)", z, f, prev)
		}
		prev = f
	}
}

func TestProjectCubeCornerFirstTick(t *testing.T) {
	p := NewProjector(400, 800)
	const size = 80

	v := math3d.V3(-1, -1, -1)
	rotated := v.RotateX(0.006).RotateY(0.009).RotateZ(0.004)
	got := p.Project(rotated, size)

	f := 300 / (300 + rotated.Z + 2.5)
	wantX := rotated.X*f*size + 200
	wantY := rotated.Y*f*size + 400
	if math.Abs(got.X-wantX) > 1e-9 || math.Abs(got.Y-wantY) > 1e-9 {
		t.Errorf("got (%v, %v), want (%v, %v)", got.X, got.Y, wantX, wantY)
	}

	// close to the unrotated corner, up and to the left of centre
	still := p.Project(v, size)
	if math.Abs(still.X-120.398) > 1e-3 || math.Abs(still.Y-320.398) > 1e-3 {
		t.Errorf("unrotated corner at (%v, %v), want (120.398, 320.398)", still.X, still.Y)
	}
	if d := got.Distance(still.Vec2); d > 2 {
		t.Errorf("first tick moved corner %v px, want < 2", d)
	}
	if got.X >= 200 || got.Y >= 400 {
		t.Errorf("corner (%v, %v) not in upper-left quadrant", got.X, got.Y)
	}
}

func TestWithLens(t *testing.T) {
	base := NewProjector(400, 300)

	tests := []struct {
		name    string
		lens    Lens
		fov     float64
		centerY float64
		offsetY float64
	}{
		{"zero lens keeps defaults", Lens{}, DefaultFOV, 150, 0},
		{"wider fov", Lens{FOV: 400}, 400, 150, 0},
		{"upper third", Lens{CenterY: 1.0 / 3}, DefaultFOV, 100, 0},
		{"shifted", Lens{ShiftY: 0.15}, DefaultFOV, 150, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base.WithLens(tt.lens)
			if p.FOV != tt.fov {
				t.Errorf("FOV = %v, want %v", p.FOV, tt.fov)
			}
			if math.Abs(p.CenterY-tt.centerY) > 1e-9 {
				t.Errorf("CenterY = %v, want %v", p.CenterY, tt.centerY)
			}
			if math.Abs(p.OffsetY-tt.offsetY) > 1e-9 {
				t.Errorf("OffsetY = %v, want %v", p.OffsetY, tt.offsetY)
			}
		})
	}

	if base.FOV != DefaultFOV {
		t.Error("WithLens mutated the base projector")
	}
}
