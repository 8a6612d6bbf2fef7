package hull

import "errors"

// Sentinel errors returned by this package's entry points.
var (
	// ErrTooFewPoints indicates fewer than 3 distinct points were supplied;
	// a polygon requires at least a triangle.
	ErrTooFewPoints = errors.New("hull: at least 3 distinct points are required")
)
