package fixtures

import "math/rand"

const defaultSpacing = 1.0

// config holds the resolved state of a fixtures constructor call.
type config struct {
	rng     *rand.Rand
	cost    float64
	spacing float64
}

// Option is a functional option shared by every constructor in this
// package.
type Option func(*config)

// WithSeed freezes the random source used by probabilistic constructors
// (RandomSparse) so repeated calls with the same parameters produce
// identical edge tables. Constructors that are not probabilistic ignore it.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithUniformCost sets both the forward and reverse cost of every
// generated edge to cost, overriding the default of matching the edge's
// Euclidean length.
func WithUniformCost(cost float64) Option {
	return func(c *config) {
		c.cost = cost
	}
}

// WithSpacing sets the coordinate spacing between adjacent grid/path
// vertices. Default is 1.0.
func WithSpacing(spacing float64) Option {
	return func(c *config) {
		c.spacing = spacing
	}
}

func newConfig(opts ...Option) config {
	c := config{cost: -1, spacing: defaultSpacing} // cost: -1 sentinel means "use edge length"
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
