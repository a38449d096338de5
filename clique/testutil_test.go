// Package clique_test provides lightweight helpers shared across *_test.go
// files in this package: deterministic shape generators built on
// core.Builder and a few strict assertion shorthands.
package clique_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/maxclique/clique"
	"github.com/katalvlaran/maxclique/core"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for RNG-based fixtures.
	seedDet = int64(42)

	// maxKN is the largest complete graph exercised by the K_N ladder.
	maxKN = 30
)

// bothAlgos lists every strategy once, for table-driven cross-checks.
var bothAlgos = []clique.Algo{clique.BranchAndBound, clique.BronKerbosch}

// -----------------------------------------------------------------------------
// Shape generators (deterministic, Builder-based)
// -----------------------------------------------------------------------------

// completeGraph returns K_n over nodes base..base+n-1.
func completeGraph(t *testing.T, n int, base core.Node) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddNode(base + core.Node(i))
		for j := 0; j < i; j++ {
			if err := b.AddEdge(base+core.Node(j), base+core.Node(i)); err != nil {
				t.Fatalf("K_%d edge: %v", n, err)
			}
		}
	}

	return b.Graph()
}

// cycleGraph returns C_n over nodes 0..n-1 (n ≥ 3).
func cycleGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		if err := b.AddEdge(core.Node(i), core.Node((i+1)%n)); err != nil {
			t.Fatalf("C_%d edge: %v", n, err)
		}
	}

	return b.Graph()
}

// wheelGraph returns W_n: hub 0 plus cycle 1..n-1, n total nodes (n ≥ 4).
func wheelGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	rim := n - 1
	for i := 1; i <= rim; i++ {
		if err := b.AddEdge(0, core.Node(i)); err != nil {
			t.Fatalf("W_%d spoke: %v", n, err)
		}
		next := i%rim + 1
		if err := b.AddEdge(core.Node(i), core.Node(next)); err != nil {
			t.Fatalf("W_%d rim: %v", n, err)
		}
	}

	return b.Graph()
}

// isolatedGraph returns n nodes and no edges.
func isolatedGraph(n int) *core.Graph {
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddNode(core.Node(i))
	}

	return b.Graph()
}

// gnp returns a seeded Erdős–Rényi G(n,p) over nodes 0..n-1.
func gnp(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddNode(core.Node(i))
		for j := 0; j < i; j++ {
			if rng.Float64() < p {
				if err := b.AddEdge(core.Node(j), core.Node(i)); err != nil {
					t.Fatalf("gnp edge: %v", err)
				}
			}
		}
	}

	return b.Graph()
}

// -----------------------------------------------------------------------------
// Assertion shorthands
// -----------------------------------------------------------------------------

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustSize solves g with the given algorithm and asserts the clique size
// and a complete, valid result.
func mustSize(t *testing.T, g *core.Graph, algo clique.Algo, want int) clique.Result {
	t.Helper()
	res, err := clique.Solve(g, algo)
	if err != nil {
		t.Fatalf("Solve(%v) failed: %v", algo, err)
	}
	if !res.Complete {
		t.Fatalf("Solve(%v) reported incomplete without cancellation", algo)
	}
	if !clique.IsClique(g, res.Nodes) {
		t.Fatalf("Solve(%v) returned a non-clique: %v", algo, res.Nodes)
	}
	if res.Size() != want {
		t.Fatalf("Solve(%v) size: got %d, want %d (nodes %v)", algo, res.Size(), want, res.Nodes)
	}

	return res
}
