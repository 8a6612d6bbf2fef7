package isochrone

import "errors"

// Sentinel errors returned by ComputeIsochrone.
var (
	// ErrBuildFailed wraps a failure from graph.Build, e.g. a malformed
	// edge geometry.
	ErrBuildFailed = errors.New("isochrone: failed to build graph")
)
