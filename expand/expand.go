package expand

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/isochrone/graph"
)

// Expand runs a single-source, multi-cutoff frontier expansion from
// startID over g, and returns one CutoffResult per entry of cutoffs (same
// order, tagged by the original value — cutoffs need not be sorted on
// input).
//
// If startID is not a vertex g's builder ever saw, Expand returns a Result
// with Reached=false and every CutoffResult empty; this is a normal,
// non-error outcome for an unknown start vertex.
func Expand(g *graph.Graph, startID int64, cutoffs []float64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	result := &Result{StartID: startID, Cutoffs: make([]CutoffResult, len(cutoffs))}
	for i, c := range cutoffs {
		result.Cutoffs[i] = CutoffResult{Cutoff: c}
	}

	startIdx, ok := g.VertexIndex(startID)
	if !ok {
		return result, nil
	}
	result.Reached = true

	if len(cutoffs) == 0 {
		return result, nil
	}

	maxCutoff := cutoffs[0]
	for _, c := range cutoffs[1:] {
		if c > maxCutoff {
			maxCutoff = c
		}
	}

	r := &runner{
		g:         g,
		maxCutoff: maxCutoff,
		eps:       cfg.epsilon,
	}
	r.run(startIdx)

	records := r.resolveEdges()
	for i := range result.Cutoffs {
		result.Cutoffs[i].Edges, result.Cutoffs[i].Points = clipRecordsToCutoff(records, result.Cutoffs[i].Cutoff)
	}
	result.Stats = r.stats
	return result, nil
}

// runner holds the mutable state of a single Expand call: tentative
// distances, the settled set, and running stats, kept separate from the
// public entry point so Expand itself stays a thin options-resolving
// wrapper.
type runner struct {
	g         *graph.Graph
	maxCutoff float64
	eps       float64

	dist    []float64
	settled []bool
	stats   Stats
}

func (r *runner) run(startIdx int64) {
	V := r.g.NumVertices()
	r.dist = make([]float64, V)
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	r.dist[startIdx] = 0
	r.settled = make([]bool, V)

	pq := make(nodePQ, 0, V)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{idx: startIdx, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.idx
		d := item.dist

		if r.settled[u] {
			continue // stale lazy-decrease-key entry
		}
		if d > r.maxCutoff {
			break // frontier has exceeded the budget; nothing further to settle
		}
		r.settled[u] = true
		r.stats.VerticesSettled++

		for _, arc := range r.g.Neighbors(u) {
			w := arc.Weight
			if w < 0 {
				continue // defensive: Build already excludes negative-cost arcs
			}
			nd := d + w
			if nd > r.maxCutoff {
				continue // bounded expansion; resolveEdges recovers the boundary fraction
			}
			if nd < r.dist[arc.To] {
				r.dist[arc.To] = nd
				heap.Push(&pq, &nodeItem{idx: arc.To, dist: nd})
				r.stats.ArcsRelaxed++
			}
		}
	}
}

// maxRecord is the reached-edge state for one edge at the run's maximum
// cutoff. Every record has start-fraction 0: an edge is always entered at
// its tail vertex, never mid-span.
type maxRecord struct {
	edgeID    int64
	startCost float64
	endCost   float64 // == min(startCost+weight, maxCutoff)
	weight    float64
	full      bool // true if both endpoints were reached via this direction
	// geom is the edge's polyline oriented in the direction actually
	// traversed (forward: source->target as supplied; reverse: reversed).
	geom []graph.Point
}

// resolveEdges decides, for every edge in the graph, which direction (if
// any) produced a reached-edge record: if both endpoints are reached, the
// arc satisfying dist[head] == dist[tail] + weight wins (ties prefer
// forward=true); if only one endpoint is reached, the boundary arc from
// that endpoint outward is used.
func (r *runner) resolveEdges() []maxRecord {
	g := r.g
	records := make([]maxRecord, 0, len(g.EdgeIDs()))

	for _, edgeID := range g.EdgeIDs() {
		fwdArc, revArc, ok := g.ArcsForEdge(edgeID)
		if !ok {
			continue
		}
		srcIdx, dstIdx, _ := g.EdgeEndpoints(edgeID)
		srcReached := r.reached(srcIdx)
		dstReached := r.reached(dstIdx)

		fullGeom, _, _ := g.EdgeGeometry(edgeID)

		switch {
		case !srcReached && !dstReached:
			continue

		case srcReached && dstReached:
			fwdWins := fwdArc != -1 && floatsEqual(r.dist[dstIdx], r.dist[srcIdx]+g.Arcs[fwdArc].Weight, r.eps)
			revWins := revArc != -1 && floatsEqual(r.dist[srcIdx], r.dist[dstIdx]+g.Arcs[revArc].Weight, r.eps)
			switch {
			case fwdWins:
				records = append(records, maxRecord{
					edgeID: edgeID, startCost: r.dist[srcIdx], weight: g.Arcs[fwdArc].Weight,
					endCost: r.dist[srcIdx] + g.Arcs[fwdArc].Weight, full: true, geom: fullGeom,
				})
			case revWins:
				records = append(records, maxRecord{
					edgeID: edgeID, startCost: r.dist[dstIdx], weight: g.Arcs[revArc].Weight,
					endCost: r.dist[dstIdx] + g.Arcs[revArc].Weight, full: true, geom: reverseGeometry(fullGeom),
				})
			default:
				// Edge exists and both endpoints are reached, but this
				// edge is not on any shortest-path witness — omit.
			}

		case srcReached: // only source reached: boundary arc outward from source
			if fwdArc == -1 {
				continue
			}
			w := g.Arcs[fwdArc].Weight
			endCost := math.Min(r.dist[srcIdx]+w, r.maxCutoff)
			records = append(records, maxRecord{
				edgeID: edgeID, startCost: r.dist[srcIdx], weight: w, endCost: endCost, full: false, geom: fullGeom,
			})
			r.stats.BoundaryArcs++

		default: // dstReached only: boundary arc outward from target, via reverse direction
			if revArc == -1 {
				continue
			}
			w := g.Arcs[revArc].Weight
			endCost := math.Min(r.dist[dstIdx]+w, r.maxCutoff)
			records = append(records, maxRecord{
				edgeID: edgeID, startCost: r.dist[dstIdx], weight: w, endCost: endCost, full: false, geom: reverseGeometry(fullGeom),
			})
			r.stats.BoundaryArcs++
		}
	}
	return records
}

func (r *runner) reached(idx int64) bool {
	return r.settled[idx] && !math.IsInf(r.dist[idx], 1)
}

func floatsEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// clipRecordsToCutoff derives the reached-edge set and point cloud for one
// cutoff from the records computed at the run's maximum cutoff, by
// re-clipping each record's cost interval against the smaller cutoff
// rather than re-running the search.
func clipRecordsToCutoff(records []maxRecord, cutoff float64) ([]ReachedEdge, []graph.Point) {
	edges := make([]ReachedEdge, 0, len(records))
	var points []graph.Point

	for _, rec := range records {
		if rec.startCost >= cutoff {
			continue
		}
		endCost := math.Min(rec.endCost, cutoff)
		var endFraction float64
		if rec.weight <= 0 {
			endFraction = 1
		} else {
			endFraction = (endCost - rec.startCost) / rec.weight
			if endFraction > 1 {
				endFraction = 1
			}
			if endFraction < 0 {
				endFraction = 0
			}
		}
		geom := clipGeometry(rec.geom, 0, endFraction)
		edges = append(edges, ReachedEdge{
			EdgeID:        rec.edgeID,
			StartFraction: 0,
			EndFraction:   endFraction,
			StartCost:     rec.startCost,
			EndCost:       endCost,
			Geometry:      geom,
		})
		points = append(points, geom...)
	}
	return edges, points
}
