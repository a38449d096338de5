package clique

import (
	"context"
	"errors"

	"github.com/katalvlaran/maxclique/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Solve.
	ErrNilGraph = errors.New("clique: graph is nil")

	// ErrUnknownAlgo is returned when the Algo value matches no known
	// search strategy.
	ErrUnknownAlgo = errors.New("clique: unknown algorithm")
)

// Algo selects the search strategy used by Solve.
type Algo int

const (
	// BranchAndBound extends one growing clique depth-first and prunes
	// subtrees that cannot beat the incumbent. Finds one maximum clique.
	BranchAndBound Algo = iota

	// BronKerbosch enumerates every maximal clique with Tomita pivoting
	// and keeps the largest. Slower, but counts all maximal cliques.
	BronKerbosch
)

// String returns the stable lowercase name used in logs and CLI flags.
func (a Algo) String() string {
	switch a {
	case BranchAndBound:
		return "bb"
	case BronKerbosch:
		return "bk"
	default:
		return "unknown"
	}
}

// ParseAlgo maps the stable names ("bb", "bk") back to Algo values.
// Returns ErrUnknownAlgo for anything else.
func ParseAlgo(s string) (Algo, error) {
	switch s {
	case "bb":
		return BranchAndBound, nil
	case "bk":
		return BronKerbosch, nil
	default:
		return 0, ErrUnknownAlgo
	}
}

// Option configures optional behavior of a clique search.
// Use with Solve(g, algo, opts...).
type Option func(*Options)

// Options holds configurable parameters for a clique search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// The context is polled once per candidate examined (cooperative:
	// cancellation lands within one candidate step, never mid-step).
	Ctx context.Context

	// OnImprovement, if non-nil, is invoked synchronously on the searching
	// goroutine each time a strictly larger clique is recorded. The slice
	// is a fresh ascending-sorted copy owned by the callee. A panicking
	// callback is recovered and ignored; the search continues.
	OnImprovement func(nodes []core.Node)
}

// DefaultOptions returns an Options struct with:
//   - Background context (no cancellation)
//   - No improvement callback
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnImprovement: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnImprovement returns an Option that installs fn as the improvement
// hook. Reported sizes are strictly increasing across one search.
func WithOnImprovement(fn func(nodes []core.Node)) Option {
	return func(o *Options) {
		o.OnImprovement = fn
	}
}

// Result captures the outcome of a clique search.
type Result struct {
	// Nodes is the best clique found, in ascending order.
	// Empty (non-nil) for the empty graph.
	Nodes []core.Node

	// Visited counts candidate vertices examined across all subproblems.
	Visited int

	// Pruned counts subtrees cut by the cardinality bound
	// (BranchAndBound only; always 0 for BronKerbosch).
	Pruned int

	// Maximal counts maximal cliques enumerated
	// (BronKerbosch only; always 0 for BranchAndBound).
	Maximal int

	// Complete reports whether the search ran to exhaustion. False means
	// the context was cancelled and Nodes holds the best-so-far.
	Complete bool
}

// Size returns the number of nodes in the found clique.
func (r Result) Size() int { return len(r.Nodes) }
