package hull

import "gonum.org/v1/gonum/spatial/r2"

// Polygon is a closed ring of vertices in winding order, first point not
// repeated at the end.
type Polygon struct {
	Points []r2.Vec
}

// defaultConcavity and defaultLengthThreshold mirror the reference
// concaveman implementation's tuning defaults: concavity trades off
// boundary tightness against the number of edges introduced, and
// lengthThreshold skips refinement of edges already shorter than it
// (in the same units as the input coordinates).
const (
	defaultConcavity       = 2.0
	defaultLengthThreshold = 0.0
)

// Options configures Concaveman.
type Options struct {
	concavity       float64
	lengthThreshold float64
}

// Option is a functional option for Concaveman.
type Option func(*Options)

// WithConcavity sets the concavity bound: a candidate point is admitted
// only while its larger endpoint distance is at most concavity times the
// edge's length, so larger values admit more candidates (a more concave
// hull) and smaller values approach the convex hull; below 0.5 no candidate
// qualifies. Must be positive.
func WithConcavity(c float64) Option {
	if c <= 0 {
		panic("hull: WithConcavity must be positive")
	}
	return func(o *Options) {
		o.concavity = c
	}
}

// WithLengthThreshold skips concave refinement of hull edges shorter than
// threshold, trading boundary tightness for fewer output vertices on dense
// point clouds. Must be non-negative.
func WithLengthThreshold(threshold float64) Option {
	if threshold < 0 {
		panic("hull: WithLengthThreshold must be non-negative")
	}
	return func(o *Options) {
		o.lengthThreshold = threshold
	}
}

func defaultOptions() Options {
	return Options{concavity: defaultConcavity, lengthThreshold: defaultLengthThreshold}
}
