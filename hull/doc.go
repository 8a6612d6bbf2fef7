// Package hull builds a boundary polygon around a cloud of reached points
// produced by package expand.
//
// Two stages are involved. ConvexHull computes the ordinary convex hull via
// Andrew's monotone chain. Concaveman then relaxes that hull inward,
// replacing long edges with a path through nearby interior points whenever
// doing so does not self-intersect the polygon-in-progress and does not
// violate a concavity bound, following the concaveman algorithm: a
// non-crossing refinement of the convex hull driven by a spatial index over
// the candidate points.
//
// Coordinates are represented with gonum.org/v1/gonum/spatial/r2.Vec and
// r2.Box, reusing the same geometry primitives the rest of the ecosystem
// pack exercises rather than hand-rolling a parallel vector type.
package hull
