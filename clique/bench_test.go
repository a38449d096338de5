// Package clique_test — benchmarks for both clique solvers.
// Policy:
//   - Deterministic seeded instances, pre-built outside the timer.
//   - Sizes tuned to finish comfortably on CI while exercising pruning
//     (Branch-and-Bound) and pivoting (Bron-Kerbosch) for real.
package clique_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/maxclique/clique"
	"github.com/katalvlaran/maxclique/core"
)

// benchComplete builds K_n; bench variant of completeGraph (no *testing.T).
func benchComplete(b *testing.B, n int) *core.Graph {
	b.Helper()
	bld := core.NewBuilder()
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if err := bld.AddEdge(core.Node(j), core.Node(i)); err != nil {
				b.Fatal(err)
			}
		}
	}

	return bld.Graph()
}

// benchGNP builds a seeded G(n,p); bench variant of gnp.
func benchGNP(b *testing.B, n int, p float64, seed int64) *core.Graph {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	bld := core.NewBuilder()
	for i := 0; i < n; i++ {
		bld.AddNode(core.Node(i))
		for j := 0; j < i; j++ {
			if rng.Float64() < p {
				if err := bld.AddEdge(core.Node(j), core.Node(i)); err != nil {
					b.Fatal(err)
				}
			}
		}
	}

	return bld.Graph()
}

func BenchmarkBB_Complete_n20(b *testing.B) {
	g := benchComplete(b, 20)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := clique.Solve(g, clique.BranchAndBound); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBB_Random_n40_p05(b *testing.B) {
	g := benchGNP(b, 40, 0.5, seedDet)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := clique.Solve(g, clique.BranchAndBound); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBK_Random_n28_p05(b *testing.B) {
	// Bron-Kerbosch enumerates every maximal clique, so a smaller n keeps
	// the per-iteration cost CI-friendly.
	g := benchGNP(b, 28, 0.5, seedDet)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := clique.Solve(g, clique.BronKerbosch); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBK_Cycle_n64(b *testing.B) {
	bld := core.NewBuilder()
	for i := 0; i < 64; i++ {
		if err := bld.AddEdge(core.Node(i), core.Node((i+1)%64)); err != nil {
			b.Fatal(err)
		}
	}
	g := bld.Graph()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := clique.Solve(g, clique.BronKerbosch); err != nil {
			b.Fatal(err)
		}
	}
}
