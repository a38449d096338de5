// Package clique finds a maximum clique in an undirected simple graph.
//
// What & why:
//
//   - A clique is a vertex subset inducing all pairwise edges; the maximum
//     clique is one of the largest such subsets. The problem is NP-hard,
//     so both solvers here are exact exponential searches made practical
//     by pruning and pivoting.
//   - Two interchangeable strategies are provided and selected via Algo:
//
//     BranchAndBound — depth-first extension of a growing clique Q against
//     a shrinking candidate pool R, cutting any subtree that cannot beat
//     the incumbent (|Q| + |R| ≤ |Qmax|). Fastest route to one maximum
//     clique on most inputs.
//
//     BronKerbosch — pivoted enumeration of all maximal cliques (Tomita
//     pivot: maximize |P ∩ Adjacent(u)|), tracking the largest seen. Does
//     more work but visits every maximal clique exactly once, which the
//     diagnostics expose.
//
// Progress & cancellation:
//
//   - WithOnImprovement installs a callback invoked synchronously each
//     time a strictly larger clique is recorded, so reported sizes are
//     monotonically increasing. On non-empty graphs the first report is
//     always the seeded singleton {smallest vertex}. Callback panics are
//     swallowed; the search is never aborted by its observer.
//   - WithContext enables cooperative cancellation: the context is polled
//     once per candidate examined. A cancelled search returns the best
//     clique found so far with Complete=false and the context's error;
//     thanks to the seed that is never less than a singleton on non-empty
//     graphs.
//
// Determinism:
//
//   - Candidate iteration follows ascending Node order everywhere, so
//     identical inputs yield identical results, diagnostics, and callback
//     sequences. Ties among equally sized maximum cliques resolve to the
//     first one reached in that order.
//
// Complexity:
//
//   - Worst case exponential in |V| (exact search). Per subproblem:
//     O(|R|) intersections for BranchAndBound, O((|P|+|X|)·|P|) pivot
//     selection for BronKerbosch. Memory O(|V|) recursion state plus the
//     graph's adjacency cache.
//
// Errors:
//
//   - ErrNilGraph, ErrUnknownAlgo for malformed calls; context errors
//     (wrapped, errors.Is-compatible) for cancelled searches. The
//     algorithms themselves never panic on user input.
package clique
