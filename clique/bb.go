// Package clique — Branch-and-Bound (exact search with a cardinality bound).
//
// MaxBranchAndBound grows one clique Q depth-first against a candidate pool
// R, pruning with the admissible cardinality bound: a subtree rooted at
// (Q, R) can never yield more than |Q| + |R| vertices, so whenever
// |Q| + |R| ≤ |Qmax| the whole subtree is cut.
//
// Rationale (succinct):
//  1. Candidates are kept sorted ascending; each step pops the last
//     (largest) candidate, giving fully deterministic branching with O(1)
//     pops and in-order intersections.
//  2. The bound uses cardinality only. A coloring bound would prune more
//     per node but costs more per node; the simple bound keeps the hot
//     loop at one comparison.
//  3. The incumbent is seeded with the smallest vertex before the search
//     starts, so even a run cancelled on its first step hands back a
//     valid (singleton) clique, and the bound is armed from step one.
//  4. Improvements are recorded at dead ends (empty extension pool), so
//     every recorded clique is maximal within its branch and the recorded
//     sizes increase strictly — the improvement hook sees a monotonic
//     sequence starting at the seed.
//  5. Cancellation is polled once per popped candidate; a cancelled search
//     unwinds promptly and returns the incumbent with Complete=false.
package clique

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/maxclique/core"
)

// bbEngine holds all search data for one MaxBranchAndBound run.
// A dedicated engine struct (instead of closures) keeps hot-path state
// explicit and the recursion signature minimal.
type bbEngine struct {
	g   *core.Graph
	ctx context.Context

	onImprove func([]core.Node)

	q    []core.Node // current clique, DFS push order
	best []core.Node // incumbent Qmax

	visited int
	pruned  int

	done bool // latched on context cancellation
}

// cancelled polls the context; once it reports done the flag latches so
// every frame on the stack unwinds without re-polling.
func (e *bbEngine) cancelled() bool {
	if e.done {
		return true
	}
	if e.ctx.Err() != nil {
		e.done = true
	}

	return e.done
}

// record commits the current clique as the new incumbent and fires the
// improvement hook with an ascending-sorted copy.
func (e *bbEngine) record() {
	e.best = append(e.best[:0], e.q...)
	if e.onImprove != nil {
		reportImprovement(e.onImprove, e.q)
	}
}

// seed installs the smallest vertex as the initial incumbent, before any
// cancellation poll can fire. Empty graphs stay with the empty incumbent.
func (e *bbEngine) seed() {
	nodes := e.g.Nodes()
	if len(nodes) == 0 {
		return
	}
	e.q = append(e.q[:0], nodes[0])
	e.record()
	e.q = e.q[:0]
}

// expand is the core search. r is the candidate pool, sorted ascending;
// every member of r is adjacent to every member of e.q.
func (e *bbEngine) expand(r []core.Node) {
	for len(r) > 0 {
		// 1) Cooperative cancellation, once per candidate.
		if e.cancelled() {
			return
		}

		// 2) Prune: this pool can never beat the incumbent.
		if len(e.q)+len(r) <= len(e.best) {
			e.pruned++

			return
		}

		// 3) Pop the last candidate; the remaining pool is the branch set
		//    for subsequent iterations, so no clique is enumerated twice.
		p := r[len(r)-1]
		r = r[:len(r)-1]
		e.visited++

		// 4) Extend Q by p and narrow the pool to p's neighborhood.
		adj := e.g.Adjacent(p)
		ext := make([]core.Node, 0, len(r))
		for _, v := range r {
			if adj.Contains(v) {
				ext = append(ext, v) // r is sorted, so ext stays sorted
			}
		}

		e.q = append(e.q, p)
		if len(ext) == 0 {
			// Dead end: Q is maximal within this branch.
			if len(e.q) > len(e.best) {
				e.record()
			}
		} else {
			e.expand(ext)
		}
		e.q = e.q[:len(e.q)-1]
	}
}

// MaxBranchAndBound finds one maximum clique via bounded depth-first
// search. Equivalent to Solve(g, BranchAndBound, opts...).
//
// Errors:
//   - ErrNilGraph on nil input.
//   - The context's error (wrapped) when cancelled; Result then carries
//     the best clique found before cancellation and Complete=false.
//
// Complexity: worst case exponential in |V|; O(|R|) per subproblem.
func MaxBranchAndBound(g *core.Graph, opts ...Option) (Result, error) {
	return Solve(g, BranchAndBound, opts...)
}

// maxBranchAndBound runs the engine against a resolved Options value.
func maxBranchAndBound(g *core.Graph, o Options) (Result, error) {
	e := bbEngine{
		g:         g,
		ctx:       o.Ctx,
		onImprove: o.OnImprovement,
		q:         make([]core.Node, 0, g.NodeCount()),
		best:      make([]core.Node, 0, g.NodeCount()),
	}

	e.seed()
	e.expand(g.Nodes())

	res := Result{
		Nodes:    sortedCopy(e.best),
		Visited:  e.visited,
		Pruned:   e.pruned,
		Complete: !e.done,
	}
	if e.done {
		return res, fmt.Errorf("clique: branch and bound: %w", e.ctx.Err())
	}

	return res, nil
}

// sortedCopy returns nodes ascending in a fresh slice (never nil).
func sortedCopy(nodes []core.Node) []core.Node {
	out := make([]core.Node, len(nodes))
	copy(out, nodes)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// reportImprovement invokes the hook with an ascending-sorted copy,
// swallowing any panic so an observer can never abort the search.
func reportImprovement(fn func([]core.Node), nodes []core.Node) {
	defer func() {
		_ = recover()
	}()
	fn(sortedCopy(nodes))
}
