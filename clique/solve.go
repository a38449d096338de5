// Package clique - unified dispatcher for the clique solvers.
package clique

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

// Solve validates inputs, resolves options, and routes to the chosen
// algorithm. Both algorithms return a clique of identical size on any
// graph they are allowed to finish; they differ in work performed and in
// the diagnostics they fill (Pruned vs Maximal).
//
// Contracts:
//   - g must be non-nil (ErrNilGraph otherwise).
//   - algo must be BranchAndBound or BronKerbosch (ErrUnknownAlgo
//     otherwise).
//   - The empty graph yields an empty, Complete result for either
//     algorithm; a graph with only isolated vertices yields a singleton.
//
// Errors: ErrNilGraph, ErrUnknownAlgo, or the context's error (wrapped,
// errors.Is-compatible) when the search was cancelled; in the cancelled
// case Result still carries the best clique found and Complete=false.
func Solve(g *core.Graph, algo Algo, opts ...Option) (Result, error) {
	// Stage 1 - input validation.
	if g == nil {
		return Result{}, ErrNilGraph
	}

	// Stage 2 - resolve options over defaults.
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	// Stage 3 - route by algorithm.
	switch algo {
	case BranchAndBound:
		return maxBranchAndBound(g, o)
	case BronKerbosch:
		return maxBronKerbosch(g, o)
	default:
		return Result{}, fmt.Errorf("clique: algo %d: %w", int(algo), ErrUnknownAlgo)
	}
}

// IsClique reports whether nodes induce a complete subgraph of g: every
// vertex exists and every pair is adjacent. Duplicates are rejected.
// The empty set is a clique by convention.
//
// Complexity: O(k²) adjacency probes for k nodes.
func IsClique(g *core.Graph, nodes []core.Node) bool {
	if g == nil {
		return false
	}
	seen := core.NewNodeSet()
	for _, n := range nodes {
		if !g.HasNode(n) || seen.Contains(n) {
			return false
		}
		seen.Add(n)
	}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if !g.HasEdge(nodes[i], nodes[j]) {
				return false
			}
		}
	}

	return true
}
