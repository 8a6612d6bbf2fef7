package hull

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// ConvexHull computes the convex hull of points using Andrew's monotone
// chain algorithm: sort by (X, Y), then build the lower and upper chains by
// repeatedly discarding the middle point of any non-left turn.
//
// Duplicate points are tolerated and collapsed. Returns ErrTooFewPoints if
// fewer than 3 distinct points remain after deduplication.
func ConvexHull(points []r2.Vec) (Polygon, error) {
	pts := dedupe(points)
	if len(pts) < 3 {
		return Polygon{}, ErrTooFewPoints
	}

	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	n := len(pts)
	hullPts := make([]r2.Vec, 0, 2*n)

	// Lower chain.
	for _, p := range pts {
		for len(hullPts) >= 2 && cross(hullPts[len(hullPts)-2], hullPts[len(hullPts)-1], p) <= 0 {
			hullPts = hullPts[:len(hullPts)-1]
		}
		hullPts = append(hullPts, p)
	}

	// Upper chain, appended onto the same slice; lower[len-1] is the
	// rightmost point and is shared, so the upper chain starts one before
	// the end and omits the final point (== lower chain's first point).
	lowerLen := len(hullPts) + 1
	for i := n - 2; i >= 0; i-- {
		p := pts[i]
		for len(hullPts) >= lowerLen && cross(hullPts[len(hullPts)-2], hullPts[len(hullPts)-1], p) <= 0 {
			hullPts = hullPts[:len(hullPts)-1]
		}
		hullPts = append(hullPts, p)
	}

	// The last point of each chain duplicates the first point of the next.
	hullPts = hullPts[:len(hullPts)-1]

	if len(hullPts) < 3 {
		return Polygon{}, ErrTooFewPoints
	}
	return Polygon{Points: hullPts}, nil
}

// cross returns the z-component of (b-a) x (c-a); positive means a->b->c
// turns left (counter-clockwise).
func cross(a, b, c r2.Vec) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.Cross(ac)
}

// dedupe returns points with exact duplicates removed, preserving first
// occurrence order.
func dedupe(points []r2.Vec) []r2.Vec {
	seen := make(map[r2.Vec]struct{}, len(points))
	out := make([]r2.Vec, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
