// SPDX-License-Identifier: MIT
// Package: maxclique/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - rng  = nil   (stochastic constructors reject it explicitly)
//   - base = 0     (constructors number nodes base, base+1, ...)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/maxclique/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness is available.
	rng *rand.Rand
	// First node of the range a constructor numbers into.
	base core.Node
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order, last wins. Nil options are skipped.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:  nil, // no RNG unless explicitly seeded
		base: 0,   // number nodes from zero
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// node maps a constructor-local index onto the configured node range.
// Deterministic and allocation-free; every constructor numbers through it
// so that Offset composition stays uniform.
func (c builderConfig) node(i int) core.Node {
	return c.base + core.Node(i)
}
