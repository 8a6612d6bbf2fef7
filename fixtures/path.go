package fixtures

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isochrone/graph"
)

const minPathVertices = 2

// Path builds a simple n-vertex chain 0 -> 1 -> ... -> n-1, laid out along
// the X axis with the given spacing. Useful for exercising the partial-edge
// clipping behavior of package expand with a predictable, hand-checkable
// geometry.
func Path(n int, opts ...Option) ([]graph.EdgeInput, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("fixtures: Path(n=%d): %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	edges := make([]graph.EdgeInput, 0, n-1)
	for i := 0; i < n-1; i++ {
		p1 := graph.Point{X: float64(i) * cfg.spacing, Y: 0}
		p2 := graph.Point{X: float64(i+1) * cfg.spacing, Y: 0}
		length := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
		cost := length
		if cfg.cost >= 0 {
			cost = cfg.cost
		}
		edges = append(edges, graph.EdgeInput{
			ID:          int64(i),
			Source:      int64(i),
			Target:      int64(i + 1),
			Cost:        cost,
			ReverseCost: cost,
			Length:      length,
			Geometry:    []graph.Point{p1, p2},
		})
	}
	return edges, nil
}
