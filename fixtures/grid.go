package fixtures

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isochrone/graph"
)

const minGridDim = 1

// Grid builds a rows x cols 4-neighborhood orthogonal grid. Vertex ids
// follow row-major order: id = r*cols + c. Coordinates place vertex (r, c)
// at (c*spacing, r*spacing); edges connect each cell to its right and
// bottom neighbors, bidirectionally, with cost equal to spacing unless
// WithUniformCost overrides it.
func Grid(rows, cols int, opts ...Option) ([]graph.EdgeInput, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("fixtures: Grid(rows=%d, cols=%d): %w", rows, cols, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	id := func(r, c int) int64 { return int64(r*cols + c) }
	point := func(r, c int) graph.Point {
		return graph.Point{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing}
	}

	var edges []graph.EdgeInput
	var nextID int64

	addEdge := func(r1, c1, r2, c2 int) {
		p1, p2 := point(r1, c1), point(r2, c2)
		length := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
		cost := length
		if cfg.cost >= 0 {
			cost = cfg.cost
		}
		edges = append(edges, graph.EdgeInput{
			ID:          nextID,
			Source:      id(r1, c1),
			Target:      id(r2, c2),
			Cost:        cost,
			ReverseCost: cost,
			Length:      length,
			Geometry:    []graph.Point{p1, p2},
		})
		nextID++
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				addEdge(r, c, r, c+1)
			}
			if r+1 < rows {
				addEdge(r, c, r+1, c)
			}
		}
	}
	return edges, nil
}
