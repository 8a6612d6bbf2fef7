package graph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/isochrone/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(xy ...float64) []graph.Point {
	out := make([]graph.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, graph.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestBuild_DensifiesAscendingByID(t *testing.T) {
	// Vertex ids are synthetic, near-int64 sentinels; dense indices must be
	// assigned in ascending id order regardless of edge table order.
	edges := []graph.EdgeInput{
		{ID: 1, Source: 999999999, Target: 2147483647, Cost: 1, ReverseCost: 1, Length: 1, Geometry: pts(0, 0, 1, 0)},
		{ID: 2, Source: 10, Target: 999999999, Cost: 1, ReverseCost: 1, Length: 1, Geometry: pts(-1, 0, 0, 0)},
	}
	g, err := graph.Build(edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NumVertices() != 3 {
		t.Fatalf("NumVertices = %d, want 3", g.NumVertices())
	}
	idx10, _ := g.VertexIndex(10)
	idxBig1, _ := g.VertexIndex(999999999)
	idxBig2, _ := g.VertexIndex(2147483647)
	if !(idx10 < idxBig1 && idxBig1 < idxBig2) {
		t.Fatalf("dense indices not ascending by original id: %d %d %d", idx10, idxBig1, idxBig2)
	}
}

func TestBuild_TwoArcsPerEdge(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: 5, ReverseCost: 7, Length: 1, Geometry: pts(0, 0, 1, 0)},
	}
	g, err := graph.Build(edges)
	require.NoError(t, err)
	require.Equal(t, int64(2), g.NumArcs())
	fwd, rev, ok := g.ArcsForEdge(1)
	require.True(t, ok)
	require.GreaterOrEqual(t, fwd, int64(0))
	require.GreaterOrEqual(t, rev, int64(0))
	assert.Equal(t, 5.0, g.Arcs[fwd].Weight)
	assert.True(t, g.Arcs[fwd].Forward)
	assert.Equal(t, 7.0, g.Arcs[rev].Weight)
	assert.False(t, g.Arcs[rev].Forward)
}

func TestBuild_ImpassableDirectionOmitted(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: -1, ReverseCost: 3, Length: 1, Geometry: pts(0, 0, 1, 0)},
		{ID: 2, Source: 20, Target: 30, Cost: math.Inf(1), ReverseCost: 4, Length: 1, Geometry: pts(1, 0, 2, 0)},
		{ID: 3, Source: 30, Target: 40, Cost: math.NaN(), ReverseCost: 5, Length: 1, Geometry: pts(2, 0, 3, 0)},
	}
	g, err := graph.Build(edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, id := range []int64{1, 2, 3} {
		fwd, rev, ok := g.ArcsForEdge(id)
		if !ok {
			t.Fatalf("edge %d not found", id)
		}
		if fwd != -1 {
			t.Errorf("edge %d: expected impassable forward arc, got index %d", id, fwd)
		}
		if rev == -1 {
			t.Errorf("edge %d: expected passable reverse arc", id)
		}
	}
}

func TestBuild_NegativeLengthMakesBothDirectionsImpassable(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: 1, ReverseCost: 1, Length: -1, Geometry: pts(0, 0, 1, 0)},
	}
	g, err := graph.Build(edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	fwd, rev, ok := g.ArcsForEdge(1)
	if !ok {
		t.Fatalf("edge not found")
	}
	if fwd != -1 || rev != -1 {
		t.Errorf("expected both directions impassable, got fwd=%d rev=%d", fwd, rev)
	}
	if g.NumArcs() != 0 {
		t.Errorf("NumArcs = %d, want 0", g.NumArcs())
	}
}

func TestBuild_DuplicateParallelEdgesIndependent(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: 5, ReverseCost: 5, Length: 1, Geometry: pts(0, 0, 1, 0)},
		{ID: 2, Source: 10, Target: 20, Cost: 2, ReverseCost: 2, Length: 1, Geometry: pts(0, 0, 1, 0)},
	}
	g, err := graph.Build(edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	srcIdx, _ := g.VertexIndex(10)
	if len(g.Neighbors(srcIdx)) != 2 {
		t.Fatalf("expected 2 outgoing arcs from duplicate edges, got %d", len(g.Neighbors(srcIdx)))
	}
}

func TestBuild_GeometryTooShort(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: 1, ReverseCost: 1, Length: 1, Geometry: pts(0, 0)},
	}
	_, err := graph.Build(edges)
	if !errors.Is(err, graph.ErrEdgeGeometryTooShort) {
		t.Fatalf("expected ErrEdgeGeometryTooShort, got %v", err)
	}
}

func TestGraph_Clone(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: 5, ReverseCost: 5, Length: 1, Geometry: pts(0, 0, 1, 0)},
	}
	g, err := graph.Build(edges)
	require.NoError(t, err)
	clone := g.Clone()
	assert.Equal(t, g.NumVertices(), clone.NumVertices())
	assert.Equal(t, g.NumArcs(), clone.NumArcs())
	geom, _, _ := clone.EdgeGeometry(1)
	geom[0].X = 999
	orig, _, _ := g.EdgeGeometry(1)
	assert.NotEqual(t, 999.0, orig[0].X, "Clone should deep-copy geometry slices")
}
