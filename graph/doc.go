// Package graph builds the compact, read-only adjacency representation the
// isochrone expander runs over.
//
// A caller hands Build a flat table of directed edges — id, source, target,
// forward and reverse cost, pass-through length, and an ordered polyline
// geometry — and receives back a Graph: a CSR-style (compressed sparse row)
// adjacency list keyed on densified 0-based vertex indices, plus the maps
// needed to translate back to the caller's original 64-bit vertex ids.
//
// Construction is O(V log V + E) time (the distinct vertex ids are sorted)
// and O(V + E) space. The resulting Graph is immutable:
// nothing in this package mutates a Graph after Build returns, which is what
// lets callers fan a single Graph out across many concurrent per-start
// traversals without locking.
//
// Edge validity:
//
//   - An edge contributes a forward arc (source→target, weight=Cost) only if
//     Cost is finite and non-negative.
//   - It contributes a reverse arc (target→source, weight=ReverseCost) only
//     if ReverseCost is finite and non-negative.
//   - A negative Length, or a direction whose cost fails the check above, is
//     treated as impassable in that direction — never as a build error.
//
// Errors:
//
//   - ErrEdgeGeometryTooShort: an edge's Geometry has fewer than 2 points,
//     which would make partial-edge clipping ill-defined.
package graph
