package isochrone

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/isochrone/expand"
	"github.com/katalvlaran/isochrone/graph"
	"github.com/katalvlaran/isochrone/hull"
	"gonum.org/v1/gonum/spatial/r2"
)

// ComputeIsochrone builds a graph from edges and, for every (start,
// cutoff) pair, computes the reachable network and its enclosing concave
// polygon.
//
// onlyMinimumCover trims the returned network to edges bordering the
// cutoff polygon: a reached-edge record is dropped when every point of its
// clipped geometry lies strictly interior to the polygon (the "dominance
// by polygon interior" reading of the call interface's only_minimum_cover
// flag).
//
// Malformed edge directions are silently made impassable, unknown start
// vertices contribute no records, and zero starts or zero cutoffs yields
// an empty Result — none of these are errors. The only error this returns
// comes from graph.Build itself (a structurally invalid edge, e.g. missing
// geometry).
func ComputeIsochrone(edges []graph.EdgeInput, starts []int64, cutoffs []float64, onlyMinimumCover bool, opts ...Option) (*Result, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := graph.Build(edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}

	perStart := make([]*expand.Result, len(starts))
	if cfg.concurrency <= 1 {
		for i, start := range starts {
			res, err := expand.Expand(g, start, cutoffs)
			if err != nil {
				return nil, err
			}
			perStart[i] = res
		}
	} else {
		sem := make(chan struct{}, cfg.concurrency)
		var wg sync.WaitGroup
		errs := make([]error, len(starts))
		for i, start := range starts {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, start int64) {
				defer wg.Done()
				defer func() { <-sem }()
				res, err := expand.Expand(g, start, cutoffs)
				if err != nil {
					errs[i] = err
					return
				}
				perStart[i] = res
			}(i, start)
		}
		wg.Wait()
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	result := &Result{}
	for _, res := range perStart {
		if !res.Reached {
			continue
		}
		for _, cr := range res.Cutoffs {
			records := toNetworkRecords(res.StartID, cr)
			polygon, ok := buildPolygon(cr.Points, cfg)
			if ok && onlyMinimumCover {
				records = filterMinimumCover(records, polygon)
			}
			result.Network = append(result.Network, records...)
			if ok {
				result.Isochrone = append(result.Isochrone, IsochroneRecord{
					StartID: res.StartID,
					Cutoff:  cr.Cutoff,
					Shape:   toPoints(polygon.Points),
				})
			}
		}
	}
	return result, nil
}

func toNetworkRecords(startID int64, cr expand.CutoffResult) []NetworkRecord {
	records := make([]NetworkRecord, 0, len(cr.Edges))
	for _, re := range cr.Edges {
		records = append(records, NetworkRecord{
			StartID:       startID,
			EdgeID:        re.EdgeID,
			Cutoff:        cr.Cutoff,
			StartFraction: re.StartFraction,
			EndFraction:   re.EndFraction,
			StartCost:     re.StartCost,
			EndCost:       re.EndCost,
			Geometry:      re.Geometry,
		})
	}
	return records
}

// buildPolygon wraps points in a concave hull. ok is false only when the
// point cloud is entirely empty (no vertex reached at all, e.g. an
// unreachable start); 1 or 2 distinct points still produce a (degenerate)
// polygon record.
func buildPolygon(points []graph.Point, cfg Options) (hull.Polygon, bool) {
	vecs := make([]r2.Vec, len(points))
	for i, p := range points {
		vecs[i] = r2.Vec{X: p.X, Y: p.Y}
	}
	polygon, _ := hull.Concaveman(vecs, hull.WithConcavity(cfg.concavity), hull.WithLengthThreshold(cfg.lengthThreshold))
	return polygon, len(polygon.Points) > 0
}

func toPoints(vecs []r2.Vec) []graph.Point {
	pts := make([]graph.Point, len(vecs))
	for i, v := range vecs {
		pts[i] = graph.Point{X: v.X, Y: v.Y}
	}
	return pts
}

// filterMinimumCover drops every record whose clipped geometry lies
// entirely strictly interior to polygon, keeping only edges that border
// it. An edge with no geometry points is kept, since there is nothing to
// test.
func filterMinimumCover(records []NetworkRecord, polygon hull.Polygon) []NetworkRecord {
	out := make([]NetworkRecord, 0, len(records))
	for _, rec := range records {
		if allInterior(rec.Geometry, polygon) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func allInterior(geom []graph.Point, polygon hull.Polygon) bool {
	if len(geom) == 0 {
		return false
	}
	for _, p := range geom {
		if !hull.Contains(polygon, r2.Vec{X: p.X, Y: p.Y}) {
			return false
		}
	}
	return true
}
