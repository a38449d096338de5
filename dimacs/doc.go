// Package dimacs reads and writes graphs in the DIMACS clique/coloring
// text format (.clq / .col):
//
//	c  free-form comment, ignored
//	p edge <n> <m>   problem line: n vertices, m declared edges
//	e <u> <v>        one undirected edge, 1-based endpoints
//
// Read preserves the 1-based identifiers as core.Node values and
// materializes every vertex the problem line declares, so isolated
// vertices survive a round trip. Duplicate and reversed edge records
// collapse under the core's set semantics; the declared edge count is not
// enforced against the records (published benchmark files frequently get
// it wrong). Write emits a deterministic document: one problem line, then
// edge records sorted ascending, with vertices renumbered 1..n in
// ascending Node order.
package dimacs
