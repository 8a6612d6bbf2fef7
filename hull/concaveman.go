package hull

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Concaveman refines the convex hull of points into a concave polygon,
// following the concaveman algorithm (Vladimir Agafonkin's JS
// implementation, ported to Go idiom here): starting from the convex hull,
// each edge longer than lengthThreshold is considered for replacement by a
// path through a nearby interior point, provided that point keeps the
// boundary simple (no new self-intersection) and does not exceed the
// concavity bound (the ratio between the larger of the candidate's
// distances to the edge's two endpoints and the edge's length).
//
// Concaveman never fails: refinement that cannot find a qualifying
// candidate for an edge simply leaves that edge alone, and fewer than 3
// distinct points produce a degenerate polygon directly rather than an
// error — 0 points an empty polygon, 1 a single-vertex polygon, 2 a
// two-vertex segment, and ≥3 colinear points collapse to their two
// extremes.
func Concaveman(points []r2.Vec, opts ...Option) (Polygon, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	convex := degenerateOrConvex(points)
	if len(convex.Points) < 3 {
		return convex, nil
	}

	interior := interiorPoints(points, convex.Points)
	if len(interior) == 0 {
		return convex, nil
	}
	index := newRTree(interior)

	ring := append([]r2.Vec(nil), convex.Points...)
	queue := make([]edge, 0, len(ring))
	for i := range ring {
		queue = append(queue, edge{a: i, b: (i + 1) % len(ring)})
	}

	used := make(map[int]bool, len(interior))

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		a, b := ring[e.a], ring[e.b]
		edgeLen := dist2(a, b)
		if edgeLen < cfg.lengthThreshold {
			continue
		}

		cand, ok := bestCandidate(interior, index, used, a, b, cfg.concavity, ring, e)
		if !ok {
			continue
		}
		used[cand.idx] = true

		ring = insertAfter(ring, e.a, cand.point)
		// Every queued edge index referring to a ring position at or after
		// the insertion point shifts by one; indices are recomputed fresh
		// below rather than patched in place, since the queue is small
		// relative to a full re-scan of a concave hull's edge count.
		newA := edge{a: e.a, b: e.a + 1}
		newB := edge{a: e.a + 1, b: wrapIndex(e.a+2, len(ring))}
		queue = shiftQueue(queue, e.a)
		queue = append(queue, newA, newB)
	}

	return Polygon{Points: ring}, nil
}

// degenerateOrConvex computes the convex hull of points, short-circuiting
// the cases where no true polygon is possible rather than letting
// ConvexHull's stricter "at least 3 distinct points" contract reject them:
// a true polygon only exists once the dedup'd point set is genuinely 2-D
// (≥3 points, not all colinear).
func degenerateOrConvex(points []r2.Vec) Polygon {
	pts := dedupe(points)
	if len(pts) < 3 {
		return Polygon{Points: pts}
	}

	poly, err := ConvexHull(pts)
	if err == nil {
		return poly
	}

	// ConvexHull only fails past this point because every point is
	// colinear; the hull collapses to its two extremes.
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	return Polygon{Points: []r2.Vec{pts[0], pts[len(pts)-1]}}
}

type edge struct {
	a, b int
}

type candidate struct {
	idx   int
	point r2.Vec
}

// bestCandidate finds the interior point, not yet used, that lies closest
// to the midpoint of edge (a, b) among those within the concavity bound
// whose two new segments (a,candidate) and (candidate,b) cross no existing
// ring edge.
func bestCandidate(interior []r2.Vec, index *rtree, used map[int]bool, a, b r2.Vec, concavity float64, ring []r2.Vec, e edge) (candidate, bool) {
	mid := a.Add(b).Scale(0.5)
	edgeLen := dist2(a, b)

	searchRadius := edgeLen * concavity
	box := r2.Box{
		Min: r2.Vec{X: mid.X - searchRadius, Y: mid.Y - searchRadius},
		Max: r2.Vec{X: mid.X + searchRadius, Y: mid.Y + searchRadius},
	}

	var candidates []int
	candidates = index.rangeQuery(interior, box, candidates)

	best := candidate{idx: -1}
	bestScore := math.Inf(1)
	for _, idx := range candidates {
		if used[idx] {
			continue
		}
		p := interior[idx]
		if p == a || p == b {
			continue
		}
		score := dist2(mid, p)
		if score >= bestScore {
			continue
		}
		maxEdge := math.Max(dist2(a, p), dist2(b, p))
		if maxEdge == 0 {
			continue
		}
		if edgeLen/maxEdge < 1/concavity {
			continue // candidate too far relative to the edge for the concavity bound
		}
		if segmentsCrossRing(ring, e, a, p) || segmentsCrossRing(ring, e, p, b) {
			continue
		}
		best = candidate{idx: idx, point: p}
		bestScore = score
	}
	if best.idx == -1 {
		return candidate{}, false
	}
	return best, true
}

// segmentsCrossRing reports whether segment (p, q) properly intersects any
// edge of ring other than the edge being replaced (skip), which shares an
// endpoint with (p, q) by construction and would otherwise register as a
// spurious touching intersection.
func segmentsCrossRing(ring []r2.Vec, skip edge, p, q r2.Vec) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if i == skip.a && j == skip.b {
			continue
		}
		if segmentsIntersect(p, q, ring[i], ring[j]) {
			return true
		}
	}
	return false
}

// segmentsIntersect reports whether open segments (p1,p2) and (p3,p4)
// properly cross, using the standard orientation test.
func segmentsIntersect(p1, p2, p3, p4 r2.Vec) bool {
	d1 := orientation(p3, p4, p1)
	d2 := orientation(p3, p4, p2)
	d3 := orientation(p1, p2, p3)
	d4 := orientation(p1, p2, p4)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func orientation(a, b, c r2.Vec) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func dist2(a, b r2.Vec) float64 {
	d := a.Sub(b)
	return math.Hypot(d.X, d.Y)
}

// interiorPoints returns every point not already a hull vertex.
func interiorPoints(all, hull []r2.Vec) []r2.Vec {
	onHull := make(map[r2.Vec]struct{}, len(hull))
	for _, p := range hull {
		onHull[p] = struct{}{}
	}
	out := make([]r2.Vec, 0, len(all))
	for _, p := range all {
		if _, ok := onHull[p]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}

func insertAfter(ring []r2.Vec, afterIdx int, p r2.Vec) []r2.Vec {
	out := make([]r2.Vec, 0, len(ring)+1)
	out = append(out, ring[:afterIdx+1]...)
	out = append(out, p)
	out = append(out, ring[afterIdx+1:]...)
	return out
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// shiftQueue increments every queued edge's ring index that lies past the
// insertion point, keeping the queue consistent with ring's new length. The
// just-split edge needs no handling here: it was already dequeued.
func shiftQueue(queue []edge, insertAfterIdx int) []edge {
	out := make([]edge, 0, len(queue))
	for _, e := range queue {
		a, b := e.a, e.b
		if a > insertAfterIdx {
			a++
		}
		if b > insertAfterIdx {
			b++
		}
		out = append(out, edge{a: a, b: b})
	}
	return out
}
