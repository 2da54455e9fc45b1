package scene

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
)

func init() {
	registerLens("cyberCity", 100, render.Lens{ShiftY: 0.15}, NewCyberCity)
	register("warpSpeed", 100, NewWarpSpeed)
}

// defaultSeed seeds the random scenes when Options.Seed is zero.
const defaultSeed = 0x6e656f6e77697265

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform value in [lo, hi).
func between(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

const (
	cityBuildings = 15
	cityCars      = 5
	carLength     = 0.2
	carLaneEnd    = 3.0
)

type car struct {
	pos   math3d.Vec3
	speed float64
}

// NewCyberCity returns a random block of towers with cars streaking
// between them. The layout depends only on opts.Seed.
func NewCyberCity(opts Options) (Scene, error) {
	r := newRand(opts.Seed)

	var city Mesh
	for range cityBuildings {
		w := between(r, 0.2, 0.5)
		h := between(r, 0.5, 2.5)
		d := between(r, 0.2, 0.5)
		x := between(r, -2, 2)
		z := between(r, -2, 2)
		base := len(city.Vertices)
		city.Vertices = append(city.Vertices, boxVertices(
			math3d.V3(x-w/2, 0, z-d/2),
			math3d.V3(x+w/2, -h, z+d/2),
		)...)
		city.Edges = append(city.Edges, edges("building", boxPairs(base)...)...)
	}

	cars := make([]car, cityCars)
	for i := range cars {
		cars[i] = car{
			pos:   math3d.V3(between(r, -2, 2), -between(r, 0, 1.5), between(r, -2, 2)),
			speed: between(r, 0.02, 0.05),
		}
	}

	return &generated{
		angles: Angles{DY: 0.005},
		chain:  []Axis{Y},
		step: func() {
			for i := range cars {
				cars[i].pos.X += cars[i].speed
				if cars[i].pos.X > carLaneEnd {
					cars[i].pos.X = -carLaneEnd
				}
			}
		},
		style: byTag(render.Style{Role: render.RolePrimary, Thickness: 1, Opacity: 0.4}, map[string]render.Style{
			"car": {Role: render.RoleAccent, Thickness: 2, Opacity: 0.8},
		}),
		build: func(dst []Line) []Line {
			dst = city.AppendLines(dst)
			for _, c := range cars {
				tail := c.pos
				tail.X -= carLength
				dst = append(dst, Line{P1: c.pos, P2: tail, Tag: "car"})
			}
			return dst
		},
	}, nil
}

const (
	warpStars    = 50
	warpSpeed    = 0.15
	warpNear     = 0.1
	warpSpread   = 20.0
	warpDotScale = 10.0
	// size given to tags that name no star
	warpMeanSize = 2.0
)

type star struct {
	x, y, z float64
	size    float64 // 1..3, scales both the dot and its dash
	accent  bool
}

func spawnStar(r *rand.Rand, accent bool) star {
	return star{
		x:      (r.Float64() - 0.5) * warpSpread,
		y:      (r.Float64() - 0.5) * warpSpread,
		z:      between(r, 2, 12),
		size:   between(r, 1, 3),
		accent: accent,
	}
}

// NewWarpSpeed returns a star field rushing toward the viewer. Stars are
// drawn as dashes that grow as they approach; the scene does not rotate.
// Each line is tagged with its star so the style can read its size.
func NewWarpSpeed(opts Options) (Scene, error) {
	r := newRand(opts.Seed)
	stars := make([]star, warpStars)
	tags := make([]string, warpStars)
	byTag := make(map[string]int, warpStars)
	for i := range stars {
		stars[i] = spawnStar(r, i%3 == 0)
		tags[i] = "star:" + strconv.Itoa(i)
		byTag[tags[i]] = i
	}

	return &generated{
		step: func() {
			for i := range stars {
				stars[i].z -= warpSpeed
				if stars[i].z <= warpNear {
					stars[i] = spawnStar(r, stars[i].accent)
				}
			}
		},
		style: func(tag string, depth float64) render.Style {
			s := render.Style{Role: render.RolePrimary}
			size := warpMeanSize
			if i, ok := byTag[tag]; ok {
				size = stars[i].size
				if stars[i].accent {
					s.Role = render.RoleAccent
				}
			}
			s.Thickness = size * warpDotScale / depth
			s.Opacity = math.Max(0, math.Min(1, (10-depth)/5))
			return s
		},
		build: func(dst []Line) []Line {
			for i, s := range stars {
				half := 0.05 * s.size / s.z
				dst = append(dst, Line{
					P1:  math3d.V3(s.x-half, s.y, s.z),
					P2:  math3d.V3(s.x+half, s.y, s.z),
					Tag: tags[i],
				})
			}
			return dst
		},
	}, nil
}
