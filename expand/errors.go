package expand

import "errors"

// Sentinel errors returned by Expand.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Expand.
	ErrNilGraph = errors.New("expand: graph is nil")
)
