package expand

import (
	"math"

	"github.com/katalvlaran/isochrone/graph"
)

// clipGeometry returns the portion of geom spanning arc-length fractions
// [startFrac, endFrac] (each in [0, 1], startFrac <= endFrac), measured
// along the polyline's own length — not its cost. This is the spec's
// acknowledged approximation: cost and geometric length need not vary
// together along an edge, so a cost-domain fraction is applied in the
// length domain as the closest available proxy.
//
// The returned slice always starts and ends with the interpolated
// boundary points, with any original vertices strictly between them
// preserved in order.
func clipGeometry(geom []graph.Point, startFrac, endFrac float64) []graph.Point {
	if len(geom) == 0 {
		return nil
	}
	if len(geom) == 1 {
		return []graph.Point{geom[0], geom[0]}
	}

	cum := make([]float64, len(geom))
	for i := 1; i < len(geom); i++ {
		cum[i] = cum[i-1] + dist(geom[i-1], geom[i])
	}
	total := cum[len(cum)-1]

	if total == 0 {
		return []graph.Point{geom[0], geom[len(geom)-1]}
	}

	startPos := startFrac * total
	endPos := endFrac * total

	out := make([]graph.Point, 0, len(geom)+1)
	out = append(out, pointAt(geom, cum, startPos))
	for i, c := range cum {
		if c > startPos && c < endPos {
			out = append(out, geom[i])
		}
	}
	out = append(out, pointAt(geom, cum, endPos))
	return out
}

// pointAt interpolates the point on geom at cumulative arc-length pos,
// where cum holds geom's running arc-length at each vertex (cum[0] == 0).
func pointAt(geom []graph.Point, cum []float64, pos float64) graph.Point {
	total := cum[len(cum)-1]
	if pos <= 0 {
		return geom[0]
	}
	if pos >= total {
		return geom[len(geom)-1]
	}
	for i := 1; i < len(cum); i++ {
		if pos <= cum[i] {
			segLen := cum[i] - cum[i-1]
			if segLen == 0 {
				return geom[i-1]
			}
			t := (pos - cum[i-1]) / segLen
			a, b := geom[i-1], geom[i]
			return graph.Point{
				X: a.X + t*(b.X-a.X),
				Y: a.Y + t*(b.Y-a.Y),
			}
		}
	}
	return geom[len(geom)-1]
}

// dist is the Euclidean distance between two points.
func dist(a, b graph.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// reverseGeometry returns a new slice with geom's points in reverse order,
// used to orient an edge's polyline when it was traversed target->source.
func reverseGeometry(geom []graph.Point) []graph.Point {
	out := make([]graph.Point, len(geom))
	for i, p := range geom {
		out[len(geom)-1-i] = p
	}
	return out
}
