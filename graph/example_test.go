package graph_test

import (
	"fmt"

	"github.com/katalvlaran/isochrone/graph"
)

// ExampleBuild shows a two-edge chain with equal forward/reverse costs,
// and how the CSR adjacency exposes both directions.
func ExampleBuild() {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: 5, ReverseCost: 5, Length: 1, Geometry: pts(0, 0, 1, 0)},
		{ID: 2, Source: 20, Target: 30, Cost: 5, ReverseCost: 5, Length: 1, Geometry: pts(1, 0, 2, 0)},
	}
	g, err := graph.Build(edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", g.NumVertices())
	fmt.Println("arcs:", g.NumArcs())
	// Output:
	// vertices: 3
	// arcs: 4
}
