package scene

import (
	"math"
	"strings"

	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
)

func init() {
	register("gridSphere", 140, fixed(NewGridSphere))
	register("saturn", 80, fixed(NewSaturn))
	registerLens("netMap", 160, render.Lens{FOV: 400, CenterY: 1.0 / 3}, fixed(NewNetMap))
}

// latLong returns the point at latitude lat and longitude lon on the unit
// sphere.
func latLong(lat, lon float64) math3d.Vec3 {
	sLat, cLat := math.Sincos(lat)
	sLon, cLon := math.Sincos(lon)
	return math3d.Vec3{X: cLat * cLon, Y: sLat, Z: cLat * sLon}
}

// polar returns the point at polar angle phi (from +y) and azimuth theta on
// the unit sphere.
func polar(phi, theta float64) math3d.Vec3 {
	sPhi, cPhi := math.Sincos(phi)
	sTh, cTh := math.Sincos(theta)
	return math3d.Vec3{X: sPhi * cTh, Y: cPhi, Z: sPhi * sTh}
}

// appendLatLongSphere appends latitude circles (including the degenerate
// pole circles) followed by meridians.
func appendLatLongSphere(dst []Line, segments int) []Line {
	lat := func(i int) float64 { return math.Pi*float64(i)/float64(segments) - math.Pi/2 }
	for i := 0; i <= segments; i++ {
		for j := range segments {
			dst = append(dst, Line{
				P1: latLong(lat(i), segmentAngle(j, segments)),
				P2: latLong(lat(i), segmentAngle(j+1, segments)),
			})
		}
	}
	for j := range segments {
		lon := segmentAngle(j, segments)
		for i := range segments {
			dst = append(dst, Line{P1: latLong(lat(i), lon), P2: latLong(lat(i+1), lon)})
		}
	}
	return dst
}

// appendPolarSphere appends rings+1 latitude rings of segments each. With
// meridians set, every ring point but the last ring's also links to the
// same azimuth on the next ring.
func appendPolarSphere(dst []Line, rings, segments int, meridians bool, tag string) []Line {
	for i := 0; i <= rings; i++ {
		phi := math.Pi * float64(i) / float64(rings)
		for j := range segments {
			p := polar(phi, segmentAngle(j, segments))
			dst = append(dst, Line{P1: p, P2: polar(phi, segmentAngle(j+1, segments)), Tag: tag})
			if meridians && i < rings {
				next := math.Pi * float64(i+1) / float64(rings)
				dst = append(dst, Line{P1: p, P2: polar(next, segmentAngle(j, segments)), Tag: tag})
			}
		}
	}
	return dst
}

// NewGridSphere returns a 12x12 latitude/longitude globe.
func NewGridSphere() Scene {
	return &generated{
		angles: Angles{DX: 0.005, DY: 0.008},
		chain:  []Axis{X, Y},
		style:  flat(render.RolePrimary, 1, 0.4),
		build: func(dst []Line) []Line {
			return appendLatLongSphere(dst, 12)
		},
	}
}

// NewSaturn returns a tilted planet with three flat rings.
func NewSaturn() Scene {
	return &generated{
		angles: Angles{X: 0.4, DY: 0.008},
		chain:  []Axis{X, Y},
		style: byTag(render.Style{Role: render.RolePrimary, Thickness: 1.5, Opacity: 0.6}, map[string]render.Style{
			"ring": {Role: render.RoleAccent, Thickness: 1, Opacity: 0.4},
		}),
		build: func(dst []Line) []Line {
			dst = appendPolarSphere(dst, 6, 12, true, "planet")
			for _, r := range []float64{1.4, 1.6, 1.8} {
				dst = appendRing(dst, r, 0, 24, "ring")
			}
			return dst
		},
	}
}

// Categories are the note categories marked on the net map globe, in
// drawing order.
var Categories = []struct {
	Name string
	Pos  math3d.Vec3
}{
	{"work", math3d.V3(0.7, -0.2, 0)},
	{"personal", math3d.V3(-0.5, 0.5, 0.5)},
	{"ideas", math3d.V3(0, -0.8, 0.3)},
	{"todo", math3d.V3(-0.2, 0.1, -0.9)},
	{"all", math3d.V3(0, 0, 1)},
}

const nodeTagPrefix = "node:"

// markerSize is the half-width of a category marker cross.
const markerSize = 0.06

// appendMarker appends a small three-axis cross centred on p.
func appendMarker(dst []Line, p math3d.Vec3, tag string) []Line {
	for _, d := range []math3d.Vec3{{X: markerSize}, {Y: markerSize}, {Z: markerSize}} {
		dst = append(dst, Line{P1: p.Sub(d), P2: p.Add(d), Tag: tag})
	}
	return dst
}

// NewNetMap returns the category globe: latitude rings with a marker per
// note category. Far-side lines fade and far markers disappear.
func NewNetMap() Scene {
	return &generated{
		angles: Angles{DY: 0.005},
		chain:  []Axis{Y},
		style: func(tag string, depth float64) render.Style {
			if strings.HasPrefix(tag, nodeTagPrefix) {
				s := render.Style{Role: render.RoleAccent, Thickness: 2, Opacity: 1}
				switch {
				case depth > 0:
				case depth > -0.5:
					s.Opacity = 0.2
				default:
					s.Opacity = 0
				}
				return s
			}
			if depth > 0 {
				return render.Style{Role: render.RolePrimary, Thickness: 1, Opacity: 0.2}
			}
			return render.Style{Role: render.RolePrimary, Thickness: 1, Opacity: 0.05}
		},
		build: func(dst []Line) []Line {
			dst = appendPolarSphere(dst, 6, 12, false, "")
			for _, c := range Categories {
				dst = appendMarker(dst, c.Pos, nodeTagPrefix+c.Name)
			}
			return dst
		},
	}
}
