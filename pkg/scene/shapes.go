package scene

import (
	"math"

	"github.com/taigrr/neonwire/pkg/math3d"
)

// boxVertices returns the 8 corners of an axis-aligned box:
// 0-3 the z=lo face counter-clockwise from (-,-), 4-7 the z=hi face.
func boxVertices(lo, hi math3d.Vec3) []math3d.Vec3 {
	return []math3d.Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z}, // 0: bottom-left-back
		{X: hi.X, Y: lo.Y, Z: lo.Z}, // 1: bottom-right-back
		{X: hi.X, Y: hi.Y, Z: lo.Z}, // 2: top-right-back
		{X: lo.X, Y: hi.Y, Z: lo.Z}, // 3: top-left-back
		{X: lo.X, Y: lo.Y, Z: hi.Z}, // 4: bottom-left-front
		{X: hi.X, Y: lo.Y, Z: hi.Z}, // 5: bottom-right-front
		{X: hi.X, Y: hi.Y, Z: hi.Z}, // 6: top-right-front
		{X: lo.X, Y: hi.Y, Z: hi.Z}, // 7: top-left-front
	}
}

// boxPairs are the 12 edges of boxVertices, offset by base.
func boxPairs(base int) [][2]int {
	pairs := [][2]int{
		// Back face
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		// Front face
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		// Connecting edges
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for i := range pairs {
		pairs[i][0] += base
		pairs[i][1] += base
	}
	return pairs
}

// loop returns the pairs closing a polygon over vertices base..base+n-1.
func loop(base, n int) [][2]int {
	pairs := make([][2]int, n)
	for i := range n {
		pairs[i] = [2]int{base + i, base + (i+1)%n}
	}
	return pairs
}

// join concatenates pair lists.
func join(lists ...[][2]int) [][2]int {
	var out [][2]int
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// ringPoint returns the point at angle theta on a circle of radius r in
// the plane y = y0, centred on the y axis.
func ringPoint(theta, r, y0 float64) math3d.Vec3 {
	s, c := math.Sincos(theta)
	return math3d.Vec3{X: c * r, Y: y0, Z: s * r}
}

// appendRing appends a closed horizontal circle of n segments.
func appendRing(dst []Line, r, y0 float64, n int, tag string) []Line {
	for i := range n {
		t1 := float64(i) * 2 * math.Pi / float64(n)
		t2 := float64(i+1) * 2 * math.Pi / float64(n)
		dst = append(dst, Line{P1: ringPoint(t1, r, y0), P2: ringPoint(t2, r, y0), Tag: tag})
	}
	return dst
}

// segmentAngle is the angle of step i of n around a full turn.
func segmentAngle(i, n int) float64 {
	return float64(i) * 2 * math.Pi / float64(n)
}

// steps returns from, from+step, ... up to and including to, tolerating
// float drift at the end.
func steps(from, to, step float64) []float64 {
	var out []float64
	for v := from; v <= to+step*1e-6; v += step {
		out = append(out, v)
	}
	return out
}
