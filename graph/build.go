package graph

import (
	"fmt"
	"math"
	"sort"
)

// Build translates a flat edge table into a compact adjacency
// representation with stable, densified 0-based vertex indices.
//
// Algorithm (bucket-sort CSR build):
//
//  1. Collect every distinct vertex id appearing as a Source or Target,
//     across all edges, and assign dense indices in ascending-id order.
//     This makes the mapping a pure function of the id set, independent of
//     input edge order.
//  2. For each edge, classify its forward and reverse direction as
//     passable or impassable (finite, non-negative cost; non-negative
//     length), and count the passable arcs per source index.
//  3. Prefix-sum the per-vertex counts into Head, then bucket-fill Arcs in
//     a second pass, preserving input edge order within each bucket.
//
// Duplicate edges (same or different cost) are permitted; each becomes an
// independent arc. Build never fails because of a malformed cost or
// direction — see the package doc comment — only because an edge's
// Geometry violates the ≥2-point contract, which would make downstream
// partial-edge clipping ill-defined.
func Build(edges []EdgeInput) (*Graph, error) {
	ids := collectVertexIDs(edges)
	indexOf := make(map[int64]int64, len(ids))
	for i, id := range ids {
		indexOf[id] = int64(i)
	}

	V := int64(len(ids))
	counts := make([]int64, V+1) // counts[v] = arcs leaving vertex v; use V+1 slots for the prefix sum

	for _, e := range edges {
		if len(e.Geometry) < 2 {
			return nil, fmt.Errorf("graph: edge %d: %w", e.ID, ErrEdgeGeometryTooShort)
		}
		if isPassable(e.Cost, e.Length) {
			counts[indexOf[e.Source]]++
		}
		if isPassable(e.ReverseCost, e.Length) {
			counts[indexOf[e.Target]]++
		}
	}

	head := make([]int64, V+1)
	var running int64
	for v := int64(0); v < V; v++ {
		head[v] = running
		running += counts[v]
	}
	head[V] = running

	arcs := make([]Arc, running)
	cursor := append([]int64(nil), head...) // next free slot per source vertex
	byEdge := make(map[int64]edgeArcs, len(edges))
	edgeOrder := make([]int64, 0, len(edges))
	geometry := make(map[int64][]Point, len(edges))
	length := make(map[int64]float64, len(edges))
	endpoints := make(map[int64][2]int64, len(edges))

	for _, e := range edges {
		edgeOrder = append(edgeOrder, e.ID)
		geometry[e.ID] = e.Geometry
		length[e.ID] = e.Length

		ea := edgeArcs{fwd: -1, rev: -1}
		srcIdx := indexOf[e.Source]
		dstIdx := indexOf[e.Target]
		endpoints[e.ID] = [2]int64{srcIdx, dstIdx}

		if isPassable(e.Cost, e.Length) {
			slot := cursor[srcIdx]
			cursor[srcIdx]++
			arcs[slot] = Arc{To: dstIdx, Weight: e.Cost, EdgeID: e.ID, Forward: true}
			ea.fwd = slot
		}
		if isPassable(e.ReverseCost, e.Length) {
			slot := cursor[dstIdx]
			cursor[dstIdx]++
			arcs[slot] = Arc{To: srcIdx, Weight: e.ReverseCost, EdgeID: e.ID, Forward: false}
			ea.rev = slot
		}
		byEdge[e.ID] = ea
	}

	return &Graph{
		Head:      head,
		Arcs:      arcs,
		ids:       ids,
		indexOf:   indexOf,
		byEdge:    byEdge,
		edgeOrder: edgeOrder,
		geometry:  geometry,
		length:    length,
		endpoints: endpoints,
	}, nil
}

// isPassable reports whether a direction with the given cost is
// traversable. A negative length is treated as malformed-edge data and
// makes every direction of that edge impassable, matching §7's grouping of
// "non-finite cost, negative length" under the same silent-degrade rule.
func isPassable(cost, length float64) bool {
	if length < 0 {
		return false
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return false
	}
	return cost >= 0
}

// collectVertexIDs returns the sorted, deduplicated set of vertex ids
// appearing as a Source or Target across edges.
func collectVertexIDs(edges []EdgeInput) []int64 {
	seen := make(map[int64]struct{}, 2*len(edges))
	for _, e := range edges {
		seen[e.Source] = struct{}{}
		seen[e.Target] = struct{}{}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
