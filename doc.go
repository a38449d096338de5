// Package maxclique finds maximum cliques in undirected graphs — exact
// solvers, anytime progress streaming, DIMACS I/O and reproducible
// benchmarking, all in pure Go.
//
// 🚀 What is maxclique?
//
//	A focused, thread-aware clique toolbox that brings together:
//		• Core primitives: immutable-after-build undirected graphs with sorted accessors
//		• Exact solvers: branch & bound and Bron–Kerbosch with pivoting
//		• Anytime search: stream improving cliques, stop on deadline or cancel
//		• Generators: connected G(n,p) graphs plus classic shapes for testing
//		• DIMACS: read and write the standard .clq/.col clique format
//		• Benchmarks: sweep solver × instance grids straight to CSV
//
// ✨ Why choose maxclique?
//
//   - Deterministic – sorted adjacency, seedable generators, reproducible sweeps
//   - Honest budgets – a timed-out search still yields the best clique so far
//   - Practical API – context.Context on every long call, explicit errors
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/    — Graph, Node, Edge and the Builder that assembles them
//	clique/  — MaxClique with selectable exact algorithms
//	anytime/ — Stream of improving cliques with cancellation & deadlines
//	builder/ — RandomGraph and shape constructors (Complete, Cycle, Path, Wheel)
//	dimacs/  — DIMACS clique-format reader & writer
//	bench/   — YAML-configured solver sweeps, one CSV row per run
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╳ │
//	    C───D
//
//	four vertices, six edges: the whole square is one clique of size 4.
//
// Dive into cmd/maxclique for the CLI and examples/ for worked scenarios.
//
//	go get github.com/katalvlaran/maxclique
package maxclique
