package core

import (
	"fmt"
	"sort"
	"sync"
)

// Graph is an immutable, undirected, unweighted simple graph.
//
// A Graph value never changes after construction: AddNode and AddEdge
// return derived snapshots, and every accessor either returns a fresh
// slice or a shared read-only structure. Graphs are therefore safe to
// share across goroutines without synchronization.
//
// The zero value is not usable; construct via NewGraph, FromEdges,
// FromSets, or a Builder.
type Graph struct {
	nodes map[Node]struct{}
	edges map[Edge]struct{}

	// adjacency is derived lazily from edges on first Adjacent/Neighbors
	// call and shared read-only afterwards.
	adjOnce sync.Once
	adj     map[Node]NodeSet
}

// NewGraph returns an empty graph (no nodes, no edges).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[Node]struct{}),
		edges: make(map[Edge]struct{}),
	}
}

// FromEdges builds a graph whose vertex set is exactly the union of the
// edge endpoints. Endpoint order within each Edge is irrelevant; edges
// are canonicalized and duplicates collapse.
// Returns ErrSelfLoop if any edge has equal endpoints.
//
// Complexity: O(|edges|).
func FromEdges(edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: make(map[Node]struct{}, len(edges)),
		edges: make(map[Edge]struct{}, len(edges)),
	}
	for _, e := range edges {
		ce, err := NewEdge(e.U, e.V)
		if err != nil {
			return nil, fmt.Errorf("core: edge (%d,%d): %w", e.U, e.V, err)
		}
		g.nodes[ce.U] = struct{}{}
		g.nodes[ce.V] = struct{}{}
		g.edges[ce] = struct{}{}
	}

	return g, nil
}

// FromSets builds a graph from an explicit vertex set and edge set.
// Unlike FromEdges, the vertex set does not grow implicitly: every edge
// endpoint must appear in nodes, otherwise ErrUnknownNode is returned.
// Isolated nodes (members of nodes with no incident edge) are preserved.
//
// Complexity: O(|nodes| + |edges|).
func FromSets(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: make(map[Node]struct{}, len(nodes)),
		edges: make(map[Edge]struct{}, len(edges)),
	}
	for _, n := range nodes {
		g.nodes[n] = struct{}{}
	}
	for _, e := range edges {
		ce, err := NewEdge(e.U, e.V)
		if err != nil {
			return nil, fmt.Errorf("core: edge (%d,%d): %w", e.U, e.V, err)
		}
		if _, ok := g.nodes[ce.U]; !ok {
			return nil, fmt.Errorf("core: edge (%d,%d) endpoint %d: %w", e.U, e.V, ce.U, ErrUnknownNode)
		}
		if _, ok := g.nodes[ce.V]; !ok {
			return nil, fmt.Errorf("core: edge (%d,%d) endpoint %d: %w", e.U, e.V, ce.V, ErrUnknownNode)
		}
		g.edges[ce] = struct{}{}
	}

	return g, nil
}

// AddNode returns a graph additionally containing node n.
// When n is already present the receiver itself is returned, so callers
// may compare pointers to detect the no-op.
//
// Complexity: O(V+E) on growth (full snapshot copy), O(1) on no-op.
func (g *Graph) AddNode(n Node) *Graph {
	if _, ok := g.nodes[n]; ok {
		return g
	}
	out := g.cloneSets()
	out.nodes[n] = struct{}{}

	return out
}

// AddEdge returns a graph additionally containing the undirected edge
// {u,v}, inserting either endpoint into the vertex set as needed.
// When the canonical edge is already present the receiver itself is
// returned. Returns ErrSelfLoop when u == v.
//
// Complexity: O(V+E) on growth, O(1) on no-op.
func (g *Graph) AddEdge(u, v Node) (*Graph, error) {
	ce, err := NewEdge(u, v)
	if err != nil {
		return nil, fmt.Errorf("core: add edge (%d,%d): %w", u, v, err)
	}
	if _, ok := g.edges[ce]; ok {
		return g, nil
	}
	out := g.cloneSets()
	out.nodes[ce.U] = struct{}{}
	out.nodes[ce.V] = struct{}{}
	out.edges[ce] = struct{}{}

	return out, nil
}

// cloneSets copies the node and edge sets into a fresh Graph with an
// unpopulated adjacency cache (derived structures never carry over).
func (g *Graph) cloneSets() *Graph {
	out := &Graph{
		nodes: make(map[Node]struct{}, len(g.nodes)+1),
		edges: make(map[Edge]struct{}, len(g.edges)+1),
	}
	for n := range g.nodes {
		out.nodes[n] = struct{}{}
	}
	for e := range g.edges {
		out.edges[e] = struct{}{}
	}

	return out
}

// HasNode reports whether n is a vertex of g.
func (g *Graph) HasNode(n Node) bool {
	_, ok := g.nodes[n]

	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Self-queries (u == v) report false.
func (g *Graph) HasEdge(u, v Node) bool {
	ce, err := NewEdge(u, v)
	if err != nil {
		return false
	}
	_, ok := g.edges[ce]

	return ok
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all vertices in ascending order as a fresh slice.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns all edges as a fresh slice, sorted by (U, V).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// Equal reports structural equality: identical vertex sets and identical
// edge sets. Construction order and adjacency-cache state are irrelevant.
//
// Complexity: O(V+E).
func (g *Graph) Equal(h *Graph) bool {
	if g == h {
		return true
	}
	if h == nil || len(g.nodes) != len(h.nodes) || len(g.edges) != len(h.edges) {
		return false
	}
	for n := range g.nodes {
		if _, ok := h.nodes[n]; !ok {
			return false
		}
	}
	for e := range g.edges {
		if _, ok := h.edges[e]; !ok {
			return false
		}
	}

	return true
}
