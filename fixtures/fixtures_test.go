package fixtures_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/isochrone/fixtures"
	"github.com/katalvlaran/isochrone/graph"
)

func TestGrid_EdgeCount(t *testing.T) {
	edges, err := fixtures.Grid(3, 4)
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	// 3x4 grid: 3*(4-1) horizontal + 4*(3-1) vertical = 9 + 8 = 17
	if len(edges) != 17 {
		t.Fatalf("edge count = %d, want 17", len(edges))
	}
	if _, err := graph.Build(edges); err != nil {
		t.Fatalf("Build: %v", err)
	}
}

func TestGrid_TooSmall(t *testing.T) {
	if _, err := fixtures.Grid(0, 4); !errors.Is(err, fixtures.ErrTooFewVertices) {
		t.Fatalf("expected ErrTooFewVertices, got %v", err)
	}
}

func TestPath_BuildsAndChains(t *testing.T) {
	edges, err := fixtures.Path(5)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if len(edges) != 4 {
		t.Fatalf("edge count = %d, want 4", len(edges))
	}
	g, err := graph.Build(edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NumVertices() != 5 {
		t.Fatalf("NumVertices = %d, want 5", g.NumVertices())
	}
}

func TestRandomSparse_DeterministicWithSeed(t *testing.T) {
	a, err := fixtures.RandomSparse(10, 0.5, fixtures.WithSeed(42))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	b, err := fixtures.RandomSparse(10, 0.5, fixtures.WithSeed(42))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("seeded runs produced different edge counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Source != b[i].Source || a[i].Target != b[i].Target {
			t.Fatalf("seeded runs diverged at edge %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	if _, err := fixtures.RandomSparse(5, 1.5); !errors.Is(err, fixtures.ErrInvalidProbability) {
		t.Fatalf("expected ErrInvalidProbability, got %v", err)
	}
}
