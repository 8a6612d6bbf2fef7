package graph

// Point is a planar (x, y) coordinate. Inputs are assumed pre-projected;
// this package never interprets them as geodesic coordinates.
type Point struct {
	X, Y float64
}

// EdgeInput is one row of the caller's edge table: a directed road segment
// with independent forward and reverse traversal costs.
//
// Geometry runs from the Source endpoint to the Target endpoint, in that
// order, and must contain at least 2 points.
type EdgeInput struct {
	ID          int64
	Source      int64
	Target      int64
	Cost        float64
	ReverseCost float64
	Length      float64
	Geometry    []Point
}

// Arc is one directed traversal of an EdgeInput, stored in CSR adjacency.
// Two arcs are considered per input edge (forward and reverse); an arc is
// omitted entirely when its direction's cost is impassable.
type Arc struct {
	To      int64   // target vertex index (dense, 0-based)
	Weight  float64 // arc cost; always finite and >= 0
	EdgeID  int64   // the original EdgeInput.ID this arc was derived from
	Forward bool    // true if this arc traverses the edge source->target
}

// edgeArcs records, per input edge id, the arc index of its forward and
// reverse arcs within Graph.Arcs. An index of -1 means that direction was
// impassable and no arc was emitted.
type edgeArcs struct {
	fwd int64
	rev int64
}

// Graph is the immutable CSR adjacency representation produced by Build.
// Head has length NumVertices()+1; the arcs leaving vertex index v are
// Arcs[Head[v]:Head[v+1]].
type Graph struct {
	Head []int64
	Arcs []Arc

	ids       []int64         // index -> original vertex id, ascending
	indexOf   map[int64]int64 // original vertex id -> index
	byEdge    map[int64]edgeArcs
	edgeOrder []int64 // edge ids in original input order, for deterministic iteration
	// geometry holds, per input edge id, the source->target ordered
	// polyline exactly as supplied. Reverse arcs reuse it reversed on
	// demand rather than storing a second copy.
	geometry  map[int64][]Point
	length    map[int64]float64
	endpoints map[int64][2]int64 // edge id -> [sourceIdx, targetIdx]
}

// EdgeEndpoints returns the dense source and target vertex indices of the
// edge identified by edgeID, as originally supplied (independent of which
// directions turned out passable). ok is false if edgeID is unknown.
func (g *Graph) EdgeEndpoints(edgeID int64) (sourceIdx, targetIdx int64, ok bool) {
	ends, found := g.endpoints[edgeID]
	if !found {
		return 0, 0, false
	}
	return ends[0], ends[1], true
}

// EdgeIDs returns the ids of every edge passed to Build, in original input
// order. Iterating this slice (rather than a map) keeps downstream
// traversals of "every edge" deterministic.
func (g *Graph) EdgeIDs() []int64 {
	return g.edgeOrder
}

// NumVertices returns the number of distinct vertices densified during
// Build, i.e. len(Head)-1.
func (g *Graph) NumVertices() int64 {
	return int64(len(g.Head) - 1)
}

// NumArcs returns the number of directional arcs retained after dropping
// impassable directions.
func (g *Graph) NumArcs() int64 {
	return int64(len(g.Arcs))
}

// VertexIndex translates an original vertex id to its dense index. The
// second return value is false if id never appeared in the edge table
// passed to Build.
func (g *Graph) VertexIndex(id int64) (int64, bool) {
	idx, ok := g.indexOf[id]
	return idx, ok
}

// VertexID translates a dense index back to the original vertex id. It
// panics if idx is out of range, since only this package ever produces
// vertex indices and a bad one indicates a programming error, not bad
// input.
func (g *Graph) VertexID(idx int64) int64 {
	return g.ids[idx]
}

// Neighbors returns the arcs leaving vertex index idx.
func (g *Graph) Neighbors(idx int64) []Arc {
	return g.Arcs[g.Head[idx]:g.Head[idx+1]]
}

// ArcsForEdge returns the arc indices (into Arcs) of the forward and
// reverse arcs derived from the input edge identified by edgeID. Either
// index is -1 if that direction was impassable. ok is false if edgeID was
// never seen by Build.
func (g *Graph) ArcsForEdge(edgeID int64) (fwd, rev int64, ok bool) {
	ea, found := g.byEdge[edgeID]
	if !found {
		return -1, -1, false
	}
	return ea.fwd, ea.rev, true
}

// EdgeGeometry returns the source->target polyline recorded for edgeID, and
// the edge's pass-through Length. ok is false if edgeID is unknown.
func (g *Graph) EdgeGeometry(edgeID int64) (geom []Point, length float64, ok bool) {
	geom, found := g.geometry[edgeID]
	if !found {
		return nil, 0, false
	}
	return geom, g.length[edgeID], true
}

// Clone returns a defensive deep copy of g, for a caller that needs to
// retain a Graph beyond the lifetime of the slices Build was handed, since
// Build itself never copies the caller's Geometry slices.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		Head:      append([]int64(nil), g.Head...),
		Arcs:      append([]Arc(nil), g.Arcs...),
		ids:       append([]int64(nil), g.ids...),
		indexOf:   make(map[int64]int64, len(g.indexOf)),
		byEdge:    make(map[int64]edgeArcs, len(g.byEdge)),
		edgeOrder: append([]int64(nil), g.edgeOrder...),
		geometry:  make(map[int64][]Point, len(g.geometry)),
		length:    make(map[int64]float64, len(g.length)),
		endpoints: make(map[int64][2]int64, len(g.endpoints)),
	}
	for k, v := range g.indexOf {
		clone.indexOf[k] = v
	}
	for k, v := range g.byEdge {
		clone.byEdge[k] = v
	}
	for k, v := range g.geometry {
		clone.geometry[k] = append([]Point(nil), v...)
	}
	for k, v := range g.length {
		clone.length[k] = v
	}
	for k, v := range g.endpoints {
		clone.endpoints[k] = v
	}
	return clone
}
