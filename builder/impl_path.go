// SPDX-License-Identifier: MIT
// Package: maxclique/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes; a single node is no path).
//   - Adds nodes cfg.node(0..n-1) in ascending index order.
//   - Emits segment edges (i-1) — i for i = 1..n-1 in ascending i.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
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
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	// The returned closure captures n; BuildGraph supplies (b, cfg).
	return func(b *core.Builder, cfg builderConfig) error {
		// Validate the parameter domain early.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}

		// Add all path nodes in ascending index order.
		for i := 0; i < n; i++ {
			b.AddNode(cfg.node(i))
		}

		// Emit segments 0—1—2—...—(n-1) in stable order.
		for i := 1; i < n; i++ {
			u, v := cfg.node(i-1), cfg.node(i)
			if err := b.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, u, v, err)
			}
		}

		// Success: path fully constructed.
		return nil
	}
}
