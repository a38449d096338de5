// SPDX-License-Identifier: MIT
// Package: maxclique/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(opts, cons...). Resolves the config,
//     applies constructors in order against one core.Builder, freezes.
//   - All public factories are implemented in impl_*.go files.
//   - Functional options resolve into an immutable builderConfig
//     (no global state).
//   - Determinism: same options/seed and constructor order produce the
//     identical graph.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

// Constructor applies one deterministic graph mutation using the resolved
// builderConfig. Constructors must validate parameters early, return
// sentinel errors instead of panicking, and number nodes through
// cfg.node so that Offset composition works.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves opts, applies all constructors in order against a
// fresh core.Builder, and freezes the result into an immutable Graph.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial result is exposed.
//
// Errors: branch with errors.Is against the builder sentinels
// (ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed).
//
// Complexity: O(len(opts)) resolution + the sum of constructor costs.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	// Resolve deterministic configuration once for all constructors.
	cfg := newBuilderConfig(opts...)

	// One working builder; constructors mutate it in composition order.
	b := core.NewBuilder()
	for i, fn := range cons {
		// Reject a nil constructor explicitly instead of panicking later.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			// Wrap once at the API boundary; constructors add their own context.
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// Freeze the accumulated state into the immutable snapshot.
	return b.Graph(), nil
}

// Offset returns a Constructor that runs cons with the node range shifted
// by delta: a constructor numbering 0..n-1 numbers delta..delta+n-1
// instead. Offsets nest additively, enabling disjoint unions:
//
//	BuildGraph(nil, Complete(10), Offset(100, Complete(30)))
//
// builds K10 on 0..9 and K30 on 100..129 in one graph.
// Complexity: O(1) wrapping + the sum of inner constructor costs.
func Offset(delta core.Node, cons ...Constructor) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		// Shift a copy; sibling constructors keep the caller's base.
		shifted := cfg
		shifted.base += delta

		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("Offset: nil constructor at index %d: %w", i, ErrConstructFailed)
			}
			if err := fn(b, shifted); err != nil {
				return fmt.Errorf("Offset(%d): %w", delta, err)
			}
		}

		return nil
	}
}

// RandomGraph builds one connected random graph: n nodes, a spanning tree
// first, then each vacant pair added independently with probability p.
// Convenience wrapper over BuildGraph(opts, RandomConnected(n, p)).
//
// Complexity: O(n) tree + O(n²) pair trials.
func RandomGraph(n int, p float64, opts ...Option) (*core.Graph, error) {
	return BuildGraph(opts, RandomConnected(n, p))
}
