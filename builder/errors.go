// SPDX-License-Identifier: MIT
// Package: maxclique/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX), never by string comparison.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; constructors attach context via %w.
//   - Constructors never panic at runtime; validation panics are confined
//     to option constructors (WithRand).
//
// Validation priority (tie-break when several checks could fail):
//   - ErrTooFewNodes       — size/domain checks first.
//   - ErrInvalidProbability — then probability ranges.
//   - ErrNeedRandSource    — then RNG presence for stochastic builders.
//   - ErrConstructFailed   — composition-level failures only.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter is below the minimum the
// requested constructor supports (Complete and RandomConnected need 1,
// Path 2, Cycle 3, Wheel 4).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrInvalidProbability indicates an edge probability outside the closed
// interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil RNG in the resolved config: pass WithSeed or WithRand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply a seed */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a composition-level failure, such as a nil
// Constructor handed to BuildGraph or Offset.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix the pipeline */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
