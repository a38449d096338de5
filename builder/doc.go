// Package builder provides deterministic, composable graph constructors:
// canonical shapes (Complete, Cycle, Path, Wheel), the connected random
// generator (RandomConnected), and the Offset combinator for disjoint
// unions inside one node range. It feeds tests, benchmarks, examples and
// the command-line tools with reproducible instances.
//
// The package follows a strict functional-options design:
//
//   - Constructor: one deterministic mutation applied to a core.Builder.
//   - BuildGraph:  the single orchestrator — resolves options, applies
//     constructors in order, freezes the result into an immutable Graph.
//   - Option:      WithSeed / WithRand / WithBase, resolved into an
//     immutable builderConfig (no global state).
//
// Guarantees:
//
//   - Determinism: the same constructors, order, options and seed produce
//     the identical graph, node for node and edge for edge.
//   - Fail-fast validation: constructors return sentinel errors
//     (ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource) and never
//     panic at runtime; option constructors panic on programmer error
//     (WithRand(nil)).
//   - Connectivity: RandomConnected lays a spanning tree before any
//     probabilistic edge, so every node has at least one neighbor from
//     n ≥ 2 on.
//
// See the individual constructor documentation for contracts, parameter
// minima, and complexity notes.
package builder
