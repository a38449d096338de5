// SPDX-License-Identifier: MIT
// Package: maxclique/builder
//
// impl_random_connected.go — implementation of RandomConnected(n, p).
//
// Canonical model:
//   - Connectivity first: sample a random attachment tree over a shuffled
//     node order, guaranteeing one component and min degree ≥ 1 for n ≥ 2.
//   - Density second: visit every vacant pair {i,j}, i<j, in ascending
//     order and add it independently with probability p. The expected
//     number of extra edges is p times the vacant-pair count.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for n ≥ 2 (else ErrNeedRandSource); a
//     single node needs no randomness.
//   - Adds nodes cfg.node(0..n-1); never emits self-loops or duplicates.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) tree + O(n²) pair trials.
//   - Space: O(n) for the shuffled order.
//
// Determinism:
//   - Fixed seed → fixed shuffle → fixed tree → fixed trial sequence:
//     identical options always produce the identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

// File-local constants for method tagging and parameter domains.
const (
	methodRandomConnected = "RandomConnected"
	minRandomNodes        = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomConnected returns a Constructor that samples a connected random
// graph: a spanning tree over n nodes, then each remaining pair with
// independent probability p.
func RandomConnected(n int, p float64) Constructor {
	// The returned closure captures (n, p); BuildGraph supplies (b, cfg).
	return func(b *core.Builder, cfg builderConfig) error {
		// 1) Validate parameters early, in fixed priority order.
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomNodes, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomConnected, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && n > 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}

		// 2) Add all nodes; a single node is connected by definition.
		for i := 0; i < n; i++ {
			b.AddNode(cfg.node(i))
		}
		if n == 1 {
			return nil
		}

		// 3) Spanning tree: attach each node of a shuffled order to one
		//    uniformly chosen predecessor. Every node ends with degree ≥ 1.
		order := cfg.rng.Perm(n)
		for k := 1; k < n; k++ {
			u, v := cfg.node(order[k]), cfg.node(order[cfg.rng.Intn(k)])
			if err := b.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: tree AddEdge(%d,%d): %w", methodRandomConnected, u, v, err)
			}
		}

		// 4) One Bernoulli trial per vacant pair, ascending (i,j) order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.node(i), cfg.node(j)
				if b.HasEdge(u, v) {
					continue
				}
				if cfg.rng.Float64() < p {
					if err := b.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomConnected, u, v, err)
					}
				}
			}
		}

		// 5) Success: connected by the tree, densified by the trials.
		return nil
	}
}
