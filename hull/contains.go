package hull

import "gonum.org/v1/gonum/spatial/r2"

// Contains reports whether p lies inside polygon, using the standard
// ray-casting parity test. Points exactly on the boundary may resolve
// either way; callers that need boundary points included should buffer the
// polygon before calling Contains.
func Contains(polygon Polygon, p r2.Vec) bool {
	pts := polygon.Points
	n := len(pts)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		crosses := (pi.Y > p.Y) != (pj.Y > p.Y)
		if !crosses {
			continue
		}
		xIntersect := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
		if p.X < xIntersect {
			inside = !inside
		}
	}
	return inside
}
