package expand_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/isochrone/expand"
	"github.com/katalvlaran/isochrone/graph"
)

func pts(xy ...float64) []graph.Point {
	out := make([]graph.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, graph.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

// TestExpand_TwoEdgeChainPartialCover builds a straight three-vertex chain
// 10 -> 20 -> 30 with unit-speed costs equal to length, and a cutoff that
// fully covers the first edge but only half the second.
func TestExpand_TwoEdgeChainPartialCover(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: 4, ReverseCost: 4, Length: 4, Geometry: pts(0, 0, 4, 0)},
		{ID: 2, Source: 20, Target: 30, Cost: 6, ReverseCost: 6, Length: 6, Geometry: pts(4, 0, 10, 0)},
	}
	g, err := graph.Build(edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res, err := expand.Expand(g, 10, []float64{7})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !res.Reached {
		t.Fatalf("expected start vertex to be found")
	}
	cr := res.Cutoffs[0]
	if len(cr.Edges) != 2 {
		t.Fatalf("expected 2 reached edges, got %d", len(cr.Edges))
	}

	var first, second *expand.ReachedEdge
	for i := range cr.Edges {
		switch cr.Edges[i].EdgeID {
		case 1:
			first = &cr.Edges[i]
		case 2:
			second = &cr.Edges[i]
		}
	}
	if first == nil || second == nil {
		t.Fatalf("missing expected edge ids in result: %+v", cr.Edges)
	}

	if first.EndFraction != 1 {
		t.Errorf("edge 1 should be fully covered, got EndFraction=%v", first.EndFraction)
	}
	wantFrac := 0.5 // (7-4)/6
	if math.Abs(second.EndFraction-wantFrac) > 1e-9 {
		t.Errorf("edge 2 EndFraction = %v, want %v", second.EndFraction, wantFrac)
	}
	wantEnd := graph.Point{X: 7, Y: 0}
	gotEnd := second.Geometry[len(second.Geometry)-1]
	if math.Abs(gotEnd.X-wantEnd.X) > 1e-9 || math.Abs(gotEnd.Y-wantEnd.Y) > 1e-9 {
		t.Errorf("edge 2 clipped endpoint = %+v, want %+v", gotEnd, wantEnd)
	}
}

// TestExpand_BidirectionalAsymmetry gives forward and reverse costs that
// differ enough that only one direction's distance witnesses each vertex,
// and checks the correct direction's geometry/fraction is reported.
func TestExpand_BidirectionalAsymmetry(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: 1, ReverseCost: 100, Length: 1, Geometry: pts(0, 0, 1, 0)},
	}
	g, err := graph.Build(edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res, err := expand.Expand(g, 10, []float64{50})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(res.Cutoffs[0].Edges) != 1 {
		t.Fatalf("expected exactly 1 reached edge, got %d", len(res.Cutoffs[0].Edges))
	}
	re := res.Cutoffs[0].Edges[0]
	if re.EndFraction != 1 {
		t.Errorf("forward-cheap edge should be fully covered from source, got EndFraction=%v", re.EndFraction)
	}
	if re.Geometry[0] != (graph.Point{X: 0, Y: 0}) {
		t.Errorf("expected forward orientation starting at source, got %+v", re.Geometry[0])
	}
}

// TestExpand_UnreachableStart exercises the "start id unknown to graph"
// failure mode: Expand must not error, but Reached is false and every
// cutoff's result is empty.
func TestExpand_UnreachableStart(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: 1, ReverseCost: 1, Length: 1, Geometry: pts(0, 0, 1, 0)},
	}
	g, err := graph.Build(edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res, err := expand.Expand(g, 999, []float64{5, 10})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if res.Reached {
		t.Fatalf("expected Reached=false for unknown start vertex")
	}
	if len(res.Cutoffs) != 2 {
		t.Fatalf("expected one CutoffResult per input cutoff, got %d", len(res.Cutoffs))
	}
	for _, cr := range res.Cutoffs {
		if len(cr.Edges) != 0 || len(cr.Points) != 0 {
			t.Errorf("expected empty cutoff result, got %+v", cr)
		}
	}
}

// TestExpand_MultiCutoffClipping derives several cutoffs from a single run
// and checks that smaller cutoffs are strict subsets, clipped consistently
// with the maximum-cutoff run rather than independently recomputed.
func TestExpand_MultiCutoffClipping(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 10, Target: 20, Cost: 10, ReverseCost: 10, Length: 10, Geometry: pts(0, 0, 10, 0)},
	}
	g, err := graph.Build(edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res, err := expand.Expand(g, 10, []float64{2, 5, 20})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	fracAt := func(c float64) float64 {
		for _, cr := range res.Cutoffs {
			if cr.Cutoff == c {
				if len(cr.Edges) == 0 {
					return 0
				}
				return cr.Edges[0].EndFraction
			}
		}
		t.Fatalf("missing cutoff %v in result", c)
		return 0
	}

	f2, f5, f20 := fracAt(2), fracAt(5), fracAt(20)
	if !(f2 < f5 && f5 < f20) {
		t.Errorf("expected monotonically increasing coverage, got f2=%v f5=%v f20=%v", f2, f5, f20)
	}
	if f20 != 1 {
		t.Errorf("cutoff beyond edge length should fully cover it, got %v", f20)
	}
}

// TestExpand_Deterministic re-runs the same expansion and checks the
// reached-edge set and fractions are bit-identical, as required by the
// ascending-vertex-index tie-break in the frontier priority queue.
func TestExpand_Deterministic(t *testing.T) {
	edges := []graph.EdgeInput{
		{ID: 1, Source: 1, Target: 2, Cost: 1, ReverseCost: 1, Length: 1, Geometry: pts(0, 0, 1, 0)},
		{ID: 2, Source: 1, Target: 3, Cost: 1, ReverseCost: 1, Length: 1, Geometry: pts(0, 0, 0, 1)},
		{ID: 3, Source: 2, Target: 4, Cost: 1, ReverseCost: 1, Length: 1, Geometry: pts(1, 0, 1, 1)},
		{ID: 4, Source: 3, Target: 4, Cost: 1, ReverseCost: 1, Length: 1, Geometry: pts(0, 1, 1, 1)},
	}
	g, err := graph.Build(edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var runs [][]expand.ReachedEdge
	for i := 0; i < 3; i++ {
		res, err := expand.Expand(g, 1, []float64{3})
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		runs = append(runs, res.Cutoffs[0].Edges)
	}
	for i := 1; i < len(runs); i++ {
		if len(runs[i]) != len(runs[0]) {
			t.Fatalf("run %d produced %d edges, want %d", i, len(runs[i]), len(runs[0]))
		}
		for j := range runs[0] {
			a, b := runs[0][j], runs[i][j]
			if a.EdgeID != b.EdgeID || a.StartFraction != b.StartFraction || a.EndFraction != b.EndFraction {
				t.Errorf("run %d edge %d: got %+v, want %+v", i, j, b, a)
			}
		}
	}
}

// TestExpand_NilGraph checks the sentinel-error contract.
func TestExpand_NilGraph(t *testing.T) {
	_, err := expand.Expand(nil, 1, []float64{1})
	if err != expand.ErrNilGraph {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}
