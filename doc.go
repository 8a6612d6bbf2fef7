// Command-free library package isochrone orchestrates the three
// lower-level packages of this module into the single call described by
// its external interface: build a graph from a flat edge table (package
// graph), expand outward from each start vertex up to each cutoff
// (package expand), and wrap each cutoff's reached-point cloud in a
// concave boundary polygon (package hull).
//
// The engine is synchronous and deterministic: the same edge table, start
// vertices, and cutoffs always produce byte-identical output, regardless
// of whether ComputeIsochrone processes starts sequentially or
// concurrently (see WithConcurrency).
package isochrone
