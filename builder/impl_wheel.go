// SPDX-License-Identifier: MIT
// Package: maxclique/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   - W_n = C_{n-1} + hub: a rim cycle of n-1 nodes plus one hub joined
//     to every rim node. The hub takes cfg.node(0); the rim occupies
//     cfg.node(1..n-1).
//   - Therefore n ≥ 4, since the rim must be a valid cycle (n-1 ≥ 3).
//
// Contract:
//   - n ≥ 4 (else ErrTooFewNodes).
//   - Builds the rim by delegating to Cycle(n-1) on a base shifted past
//     the hub, so rim numbering matches the spoke loop below.
//   - Emits spokes hub — rim node in ascending rim order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(2n-2) edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Node numbering through cfg.node; rim then spokes, each ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // the rim must be a valid cycle: n-1 ≥ 3
	hubIndex      = 0 // the hub takes the first node of the range
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	// The returned closure captures n and reuses Cycle for the rim.
	return func(b *core.Builder, cfg builderConfig) error {
		// Early validation (no work on invalid input).
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewNodes)
		}

		// Build the rim as a cycle shifted one past the hub node.
		rim := cfg
		rim.base++
		if err := Cycle(n-1)(b, rim); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}

		// Join the hub to every rim node in ascending order.
		hub := cfg.node(hubIndex)
		b.AddNode(hub)
		for i := 1; i < n; i++ {
			if err := b.AddEdge(hub, cfg.node(i)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodWheel, hub, cfg.node(i), err)
			}
		}

		// Success: wheel fully constructed per the canonical definition.
		return nil
	}
}
