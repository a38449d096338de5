// Package bench sweeps the solvers across a grid of random instances and
// collects one result row per (size, probability, repetition, algorithm)
// cell, ready to be written as CSV.
//
// The grid comes from a YAML file (LoadConfig) or DefaultConfig. Run
// executes instances concurrently under a bounded worker pool; each
// instance derives its RNG seed from (seed, n, p, repetition) alone, so a
// cell reproduces the same graph regardless of the surrounding grid or
// the worker count. All algorithms in a cell solve the same graph, which
// makes their rows directly comparable.
package bench
