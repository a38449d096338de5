package core

import "fmt"

// Builder assembles a Graph through cheap in-place mutation, then freezes
// the accumulated state into an immutable snapshot.
//
// Chaining Graph.AddEdge copies the full snapshot per call (O(V+E) each);
// a Builder mutates an exclusive working copy in O(1) amortized per
// operation and pays the sharing cost exactly once, at Graph(). Intended
// for bulk assembly: generators, format readers, test fixtures.
//
// A Builder is not safe for concurrent use. The zero value is not usable;
// allocate via NewBuilder.
type Builder struct {
	nodes map[Node]struct{}
	edges map[Edge]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		nodes: make(map[Node]struct{}),
		edges: make(map[Edge]struct{}),
	}
}

// AddNode inserts node n into the working vertex set.
// Returns the receiver for chaining; duplicates are no-ops.
func (b *Builder) AddNode(n Node) *Builder {
	b.nodes[n] = struct{}{}

	return b
}

// AddEdge inserts the undirected edge {u,v}, growing the vertex set as
// needed. Duplicate edges collapse. Returns ErrSelfLoop when u == v.
func (b *Builder) AddEdge(u, v Node) error {
	ce, err := NewEdge(u, v)
	if err != nil {
		return fmt.Errorf("core: builder add edge (%d,%d): %w", u, v, err)
	}
	b.nodes[ce.U] = struct{}{}
	b.nodes[ce.V] = struct{}{}
	b.edges[ce] = struct{}{}

	return nil
}

// HasEdge reports whether the undirected edge {u,v} is in the working set.
func (b *Builder) HasEdge(u, v Node) bool {
	ce, err := NewEdge(u, v)
	if err != nil {
		return false
	}
	_, ok := b.edges[ce]

	return ok
}

// NodeCount returns the current size of the working vertex set.
func (b *Builder) NodeCount() int { return len(b.nodes) }

// EdgeCount returns the current size of the working edge set.
func (b *Builder) EdgeCount() int { return len(b.edges) }

// Graph freezes the working state into an immutable Graph.
//
// The accumulated maps are handed off to the snapshot, not copied: the
// Builder resets to empty and may be reused to assemble another graph.
//
// Complexity: O(1).
func (b *Builder) Graph() *Graph {
	g := &Graph{nodes: b.nodes, edges: b.edges}
	b.nodes = make(map[Node]struct{})
	b.edges = make(map[Edge]struct{})

	return g
}
