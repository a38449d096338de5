// SPDX-License-Identifier: MIT
// Package: maxclique/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Adds nodes cfg.node(0..n-1) in ascending index order.
//   - Emits each unordered pair {i,j} with i<j exactly once.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Node numbering through cfg.node; pair order lexicographic (i,j).

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	// The returned closure captures n; BuildGraph supplies (b, cfg).
	return func(b *core.Builder, cfg builderConfig) error {
		// Validate the parameter domain early (no work on invalid input).
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}

		// Add all nodes first so K_1 keeps its single isolated node.
		for i := 0; i < n; i++ {
			b.AddNode(cfg.node(i))
		}

		// Emit each unordered pair {i,j}, i<j, in stable lexicographic order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := b.AddEdge(cfg.node(i), cfg.node(j)); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, cfg.node(i), cfg.node(j), err)
				}
			}
		}

		// Success: complete graph constructed deterministically.
		return nil
	}
}
