package fixtures

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/isochrone/graph"
)

const minRandomSparseVertices = 1

// RandomSparse builds an Erdos-Renyi-like graph over n vertices placed on
// the unit circle (so every edge has a well-defined, non-degenerate
// length), including each ordered pair (i, j), i != j, independently with
// probability p. WithSeed selects the random seed; without it, a source
// seeded with 1 is used, so successive calls still produce the same edge
// set.
func RandomSparse(n int, p float64, opts ...Option) ([]graph.EdgeInput, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("fixtures: RandomSparse(n=%d): %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("fixtures: RandomSparse(p=%g): %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	point := func(i int) graph.Point {
		theta := 2 * math.Pi * float64(i) / float64(n)
		return graph.Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}

	var edges []graph.EdgeInput
	var nextID int64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() > p {
				continue
			}
			p1, p2 := point(i), point(j)
			length := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
			cost := length
			if cfg.cost >= 0 {
				cost = cfg.cost
			}
			edges = append(edges, graph.EdgeInput{
				ID:          nextID,
				Source:      int64(i),
				Target:      int64(j),
				Cost:        cost,
				ReverseCost: math.Inf(1), // directed sample: only i->j is passable
				Length:      length,
				Geometry:    []graph.Point{p1, p2},
			})
			nextID++
		}
	}
	return edges, nil
}
