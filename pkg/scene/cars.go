package scene

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
)

func init() {
	register("cyberCar", 100, fixed(NewCyberCar))
	register("flyingCar", 110, fixed(NewFlyingCar))
}

const (
	roadSpacing = 0.8
	roadY       = 0.8
)

// NewCyberCar returns a sports car seen from a fixed three-quarter angle,
// driving over a scrolling floor grid.
func NewCyberCar() Scene {
	body := Mesh{
		Vertices: []math3d.Vec3{
			{X: -0.5, Y: 0.6, Z: 0.8}, {X: 0.5, Y: 0.6, Z: 0.8}, // 0, 1: front bumper
			{X: -0.5, Y: 0.4, Z: 0.4}, {X: 0.5, Y: 0.4, Z: 0.4}, // 2, 3: hood top
			{X: -0.4, Y: 0.1, Z: 0.1}, {X: 0.4, Y: 0.1, Z: 0.1}, // 4, 5: roof front
			{X: -0.4, Y: 0.1, Z: -0.4}, {X: 0.4, Y: 0.1, Z: -0.4}, // 6, 7: roof back
			{X: -0.6, Y: 0.5, Z: -0.8}, {X: 0.6, Y: 0.5, Z: -0.8}, // 8, 9: rear bumper
		},
		Edges: edges("car",
			[2]int{0, 1}, [2]int{1, 3}, [2]int{3, 2}, [2]int{2, 0}, // front face
			[2]int{2, 4}, [2]int{3, 5}, [2]int{4, 5}, // hood to roof
			[2]int{4, 6}, [2]int{5, 7}, [2]int{6, 7}, // roof
			[2]int{6, 8}, [2]int{7, 9}, [2]int{8, 9}, // roof to rear
			[2]int{0, 8}, [2]int{1, 9}, // sills
		),
	}
	for _, w := range []math3d.Vec2{{X: -0.55, Y: 0.5}, {X: 0.55, Y: 0.5}, {X: -0.55, Y: -0.5}, {X: 0.55, Y: -0.5}} {
		base := len(body.Vertices)
		body.Vertices = append(body.Vertices,
			math3d.V3(w.X, 0.6, w.Y+0.1), math3d.V3(w.X, 0.8, w.Y),
			math3d.V3(w.X, 0.6, w.Y-0.1), math3d.V3(w.X, 0.4, w.Y),
		)
		body.Edges = append(body.Edges, edges("wheel", loop(base, 4)...)...)
	}

	var tick int
	return &generated{
		angles: Angles{Y: -0.3},
		chain:  []Axis{Y},
		step:   func() { tick++ },
		style: func(tag string, _ float64) render.Style {
			switch tag {
			case "car":
				return render.Style{Role: render.RolePrimary, Thickness: 1.5, Opacity: 0.6}
			case "wheel":
				return render.Style{Role: render.RoleAccent, Thickness: 1, Opacity: 0.6}
			}
			return render.Style{Role: render.RolePrimary, Thickness: 1, Opacity: 0.2}
		},
		build: func(dst []Line) []Line {
			dst = body.AppendLines(dst)
			// one grid spacing per second
			offset := float64(tick%TicksPerSecond) / TicksPerSecond * roadSpacing
			for i := -2; i <= 2; i++ {
				x := float64(i) * roadSpacing
				dst = append(dst, Line{P1: math3d.V3(x, roadY, -2+offset), P2: math3d.V3(x, roadY, 2+offset), Tag: "grid"})
			}
			for j := -2; j <= 3; j++ {
				z := float64(j)*roadSpacing - offset
				dst = append(dst, Line{P1: math3d.V3(-1.6, roadY, z), P2: math3d.V3(1.6, roadY, z), Tag: "grid"})
			}
			return dst
		},
	}
}

// Hover timing for the flying car.
const (
	hoverPeriod    = 2 * TicksPerSecond
	hoverAmplitude = 0.1
	hoverFrequency = 3.0
	hoverDamping   = 1.0
)

// hover eases between rest and full lift, flipping target every period.
type hover struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	ticks  int
}

func newHover() *hover {
	return &hover{
		spring: harmonica.NewSpring(harmonica.FPS(TicksPerSecond), hoverFrequency, hoverDamping),
		target: 1,
	}
}

func (h *hover) step() {
	h.ticks++
	if h.ticks%hoverPeriod == 0 {
		h.target = 1 - h.target
	}
	h.pos, h.vel = h.spring.Update(h.pos, h.vel, h.target)
}

func (h *hover) offset() float64 { return h.pos * hoverAmplitude }

var flyingCarVertices = []math3d.Vec3{
	{X: 0, Y: 0.45, Z: 1.0}, // 0: nose
	{X: -0.4, Y: 0.35, Z: 0.4}, {X: 0.4, Y: 0.35, Z: 0.4}, // 1, 2: front cabin top
	{X: -0.5, Y: 0.25, Z: -0.6}, {X: 0.5, Y: 0.25, Z: -0.6}, // 3, 4: back cabin top
	{X: -0.5, Y: 0.65, Z: 0.4}, {X: 0.5, Y: 0.65, Z: 0.4}, // 5, 6: front bottom
	{X: -0.6, Y: 0.75, Z: -0.8}, {X: 0.6, Y: 0.75, Z: -0.8}, // 7, 8: back bottom
	{X: -1.3, Y: 0.5, Z: -0.4}, {X: 1.3, Y: 0.5, Z: -0.4}, // 9, 10: wing tips
	{X: -0.4, Y: 0.1, Z: -0.7}, {X: 0.4, Y: 0.1, Z: -0.7}, // 11, 12: fins
}

var flyingCarEdges = edges("",
	// Nose
	[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 5}, [2]int{0, 6},
	// Cabin
	[2]int{1, 2}, [2]int{2, 4}, [2]int{4, 3}, [2]int{3, 1},
	[2]int{5, 6}, [2]int{6, 8}, [2]int{8, 7}, [2]int{7, 5},
	[2]int{1, 5}, [2]int{2, 6}, [2]int{3, 7}, [2]int{4, 8},
	// Wings
	[2]int{1, 9}, [2]int{3, 9}, [2]int{7, 9}, [2]int{5, 9},
	[2]int{2, 10}, [2]int{4, 10}, [2]int{8, 10}, [2]int{6, 10},
	// Fins
	[2]int{3, 11}, [2]int{4, 12},
)

// NewFlyingCar returns a hovering winged car that bobs on a spring.
func NewFlyingCar() Scene {
	h := newHover()
	body := Mesh{Vertices: make([]math3d.Vec3, len(flyingCarVertices)), Edges: flyingCarEdges}

	return &generated{
		angles: Angles{DY: 0.01},
		chain:  []Axis{Y},
		step:   h.step,
		style:  flat(render.RolePrimary, 1.5, 0.6),
		build: func(dst []Line) []Line {
			lift := h.offset()
			for i, v := range flyingCarVertices {
				v.Y += lift
				body.Vertices[i] = v
			}
			return body.AppendLines(dst)
		},
	}
}
