package graph

import "errors"

// Sentinel errors returned by Build.
var (
	// ErrEdgeGeometryTooShort indicates an edge whose Geometry has fewer
	// than the two points (source and target endpoints) the contract
	// requires.
	ErrEdgeGeometryTooShort = errors.New("graph: edge geometry must have at least 2 points")
)
