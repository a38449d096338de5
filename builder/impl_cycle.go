// SPDX-License-Identifier: MIT
// Package: maxclique/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes; a shorter ring needs loops or doubled
//     edges, which the simple-graph core rejects).
//   - Adds nodes cfg.node(0..n-1) in ascending index order.
//   - Emits ring edges i — (i+1) mod n for i = 0..n-1 in ascending i.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Node numbering through cfg.node; edge emission by increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the n-node simple cycle C_n.
func Cycle(n int) Constructor {
	// The returned closure captures n; BuildGraph supplies (b, cfg).
	return func(b *core.Builder, cfg builderConfig) error {
		// Validate the parameter domain early (fail fast).
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}

		// Add all ring nodes in ascending index order.
		for i := 0; i < n; i++ {
			b.AddNode(cfg.node(i))
		}

		// Close the ring: edge i — (i+1) mod n in ascending i.
		for i := 0; i < n; i++ {
			u, v := cfg.node(i), cfg.node((i+1)%n)
			if err := b.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, u, v, err)
			}
		}

		// Success: cycle fully constructed.
		return nil
	}
}
