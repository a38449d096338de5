// Package clique — Bron-Kerbosch (pivoted enumeration of maximal cliques).
//
// MaxBronKerbosch enumerates every maximal clique exactly once and keeps
// the largest. Each frame carries the classic triple:
//
//	R — the clique under construction,
//	P — candidates that extend R,
//	X — vertices already exhausted against R (suppress duplicates).
//
// Rationale (succinct):
//  1. Pivoting (Tomita): pick u ∈ P ∪ X maximizing |P ∩ Adjacent(u)|,
//     then branch only on P \ Adjacent(u). Neighbors of the pivot are
//     covered by deeper frames, collapsing the branching factor.
//  2. No size-based pruning: unlike Branch-and-Bound the enumeration is
//     exhaustive, which is what makes the Maximal diagnostic exact.
//  3. The incumbent is seeded with the smallest vertex before enumeration
//     starts, exactly as in bb.go, so cancellation at any point still
//     yields a valid clique on non-empty graphs.
//  4. Branch order and pivot tie-breaks follow ascending Node order, so
//     runs are fully reproducible.
//  5. Cancellation is polled once per branched candidate, as in bb.go.
package clique

import (
	"context"
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

// bkEngine holds enumeration state for one MaxBronKerbosch run.
type bkEngine struct {
	g *core.Graph

	ctx       context.Context
	onImprove func([]core.Node)

	r    []core.Node // clique under construction, DFS push order
	best []core.Node

	visited int
	maximal int

	done bool
}

// seed installs the smallest vertex as the initial incumbent, before any
// cancellation poll can fire; see bbEngine.seed.
func (e *bkEngine) seed() {
	nodes := e.g.Nodes()
	if len(nodes) == 0 {
		return
	}
	e.best = append(e.best[:0], nodes[0])
	if e.onImprove != nil {
		reportImprovement(e.onImprove, e.best)
	}
}

// cancelled polls the context and latches, as in bbEngine.
func (e *bkEngine) cancelled() bool {
	if e.done {
		return true
	}
	if e.ctx.Err() != nil {
		e.done = true
	}

	return e.done
}

// pivot selects u ∈ P ∪ X maximizing |P ∩ Adjacent(u)|; scanning P first
// and in ascending order makes ties deterministic (smallest qualifying
// node in P, then in X).
func (e *bkEngine) pivot(p, x core.NodeSet) core.Node {
	var (
		bestNode  core.Node
		bestCover = -1
	)
	consider := func(u core.Node) {
		adj := e.g.Adjacent(u)
		cover := 0
		for v := range p {
			if adj.Contains(v) {
				cover++
			}
		}
		if cover > bestCover {
			bestNode, bestCover = u, cover
		}
	}
	for _, u := range p.Sorted() {
		consider(u)
	}
	for _, u := range x.Sorted() {
		consider(u)
	}

	return bestNode
}

// enumerate is the recursive Bron-Kerbosch step. p and x are owned by the
// frame and consumed as candidates move from P to X.
func (e *bkEngine) enumerate(p, x core.NodeSet) {
	if e.cancelled() {
		return
	}

	// 1) Maximal clique: no extension remains, none was skipped.
	if p.Len() == 0 && x.Len() == 0 {
		e.maximal++
		if len(e.r) > len(e.best) {
			e.best = append(e.best[:0], e.r...)
			if e.onImprove != nil {
				reportImprovement(e.onImprove, e.r)
			}
		}

		return
	}

	// 2) Branch only outside the pivot's neighborhood.
	pivotAdj := e.g.Adjacent(e.pivot(p, x))
	branch := make([]core.Node, 0, p.Len())
	for _, v := range p.Sorted() {
		if !pivotAdj.Contains(v) {
			branch = append(branch, v)
		}
	}

	// 3) Recurse per branch vertex, migrating it from P to X afterwards.
	for _, v := range branch {
		if e.cancelled() {
			return
		}
		e.visited++

		adj := e.g.Adjacent(v)
		e.r = append(e.r, v)
		e.enumerate(p.Intersect(adj), x.Intersect(adj))
		e.r = e.r[:len(e.r)-1]

		p.Remove(v)
		x.Add(v)
	}
}

// MaxBronKerbosch finds one maximum clique by pivoted enumeration of all
// maximal cliques. Equivalent to Solve(g, BronKerbosch, opts...).
//
// Errors:
//   - ErrNilGraph on nil input.
//   - The context's error (wrapped) when cancelled; Result then carries
//     the best clique found before cancellation and Complete=false.
//
// Complexity: O(3^(|V|/3)) maximal cliques worst case (Moon-Moser);
// O((|P|+|X|)·|P|) pivot selection per frame.
func MaxBronKerbosch(g *core.Graph, opts ...Option) (Result, error) {
	return Solve(g, BronKerbosch, opts...)
}

// maxBronKerbosch runs the engine against a resolved Options value.
func maxBronKerbosch(g *core.Graph, o Options) (Result, error) {
	e := bkEngine{
		g:         g,
		ctx:       o.Ctx,
		onImprove: o.OnImprovement,
		r:         make([]core.Node, 0, g.NodeCount()),
		best:      make([]core.Node, 0, g.NodeCount()),
	}

	e.seed()
	e.enumerate(core.NewNodeSet(g.Nodes()...), core.NewNodeSet())

	res := Result{
		Nodes:    sortedCopy(e.best),
		Visited:  e.visited,
		Maximal:  e.maximal,
		Complete: !e.done,
	}
	if e.done {
		return res, fmt.Errorf("clique: bron-kerbosch: %w", e.ctx.Err())
	}

	return res, nil
}
