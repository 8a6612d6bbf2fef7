// Package fixtures generates synthetic []graph.EdgeInput networks for tests
// and benchmarks: deterministic topology constructors configured with
// functional options, seeded for reproducible random generation, emitting
// vertices and edges in a fixed, documented order.
//
// Each constructor returns a complete edge table ready for graph.Build.
// Every edge also carries synthetic straight-line Geometry between its
// endpoints' coordinates, since isochrone output requires a polyline per
// edge.
package fixtures
