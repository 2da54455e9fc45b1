package scene

import (
	"math"

	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
)

func init() {
	register("dna", 100, fixed(NewDNA))
}

const (
	helixTurns         = 2.5
	helixPointsPerTurn = 12
	helixHeight        = 2.5
	helixRadius        = 0.5
)

// NewDNA returns a double helix tilted 30° and spinning about its axis.
func NewDNA() Scene {
	return &generated{
		angles: Angles{Z: math.Pi / 6, DY: 0.02},
		chain:  []Axis{Y, Z},
		style: byTag(render.Style{Role: render.RoleAccent, Thickness: 1, Opacity: 0.5}, map[string]render.Style{
			"strand": {Role: render.RolePrimary, Thickness: 2, Opacity: 0.8},
		}),
		build: appendHelix,
	}
}

// appendHelix appends a base pair per point and, between consecutive
// points, one segment per strand.
func appendHelix(dst []Line) []Line {
	total := int(helixTurns * helixPointsPerTurn)
	step := helixHeight / float64(total)

	strands := func(i int) (a, b math3d.Vec3) {
		t := float64(i) / helixPointsPerTurn * 2 * math.Pi
		y := float64(i)*step - helixHeight/2
		return ringPoint(t, helixRadius, y), ringPoint(t+math.Pi, helixRadius, y)
	}

	for i := range total {
		a, b := strands(i)
		dst = append(dst, Line{P1: a, P2: b, Tag: "basePair"})
		if i < total-1 {
			na, nb := strands(i + 1)
			dst = append(dst,
				Line{P1: a, P2: na, Tag: "strand"},
				Line{P1: b, P2: nb, Tag: "strand"},
			)
		}
	}
	return dst
}
