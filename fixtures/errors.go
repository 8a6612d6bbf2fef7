package fixtures

import "errors"

// Sentinel errors returned by this package's constructors.
var (
	// ErrTooFewVertices indicates a requested topology size below the
	// minimum the constructor can produce.
	ErrTooFewVertices = errors.New("fixtures: too few vertices requested")
	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("fixtures: probability must be in [0, 1]")
)
