// SPDX-License-Identifier: MIT
// Package: maxclique/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type Option func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs;
//     graph constructors themselves never panic.
//   - Determinism is explicit: seeding happens via WithSeed or WithRand.
//   - No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/maxclique/core"
)

// Option customizes a build by mutating the builderConfig before any
// constructor runs.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithSeed installs a fresh deterministic RNG seeded with seed.
// Use in tests and benchmarks to lock stochastic outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		// Seeded source → reproducible shuffles and draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithBase shifts the node range constructors number into: the first
// node becomes base instead of 0. Combine with Offset to lay several
// shapes side by side.
// Complexity: O(1).
func WithBase(base core.Node) Option {
	return func(c *builderConfig) {
		c.base = base
	}
}
