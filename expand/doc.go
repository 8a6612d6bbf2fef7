// Package expand implements the isochrone frontier expansion: a Dijkstra-like,
// single-source, multi-cutoff traversal that produces not just "which
// vertices are reachable" but, per edge, the fraction of it actually
// traversed before the cost budget ran out.
//
// Overview:
//
//   - Expand runs one traversal per start vertex (callers fan out across
//     starts themselves; the graph is read-only and safe to share).
//   - The traversal is bounded by the largest requested cutoff. Smaller
//     cutoffs are derived from the largest one by clipping, not by
//     re-running the search — see clipRecordsToCutoff.
//   - Every edge ends up in one of three states per cutoff: absent (neither
//     endpoint reached within budget, or both reached but neither direction
//     of the edge lies on a shortest path), full (both endpoints on a shortest
//     path from the start, fractions [0,1]), or partial (one endpoint
//     reached, the far one beyond budget; fractions [0,f] for the fraction
//     of cost-domain distance actually covered).
//
// Determinism: the priority queue breaks distance ties by ascending vertex
// index (see nodePQ.Less), and the full/partial decision for a given edge
// is resolved deterministically — see resolveEdges.
//
// Internally, a private runner type holds the per-call mutable search
// state (distances, settled set, heap, stats) behind a lazy-decrease-key
// binary heap: stale entries are left in the heap and filtered out on pop
// rather than removed eagerly, avoiding a decrease-key operation the
// standard heap interface does not expose.
package expand
