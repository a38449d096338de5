package core

import (
	"errors"
	"sort"
)

// Sentinel errors returned by graph constructors and mutators.
// Wrap with %w and inspect with errors.Is.
var (
	// ErrSelfLoop indicates an attempt to create an edge whose endpoints
	// are equal. The graph model is simple: self-loops are rejected.
	ErrSelfLoop = errors.New("core: self-loop edges are not allowed")

	// ErrUnknownNode indicates an edge that references a node outside the
	// declared vertex set (FromSets only; other constructors grow the
	// vertex set implicitly).
	ErrUnknownNode = errors.New("core: edge references unknown node")
)

// Node is an opaque graph vertex identifier. Equality is value equality;
// the integer carries no semantic meaning beyond identity and ordering.
type Node int

// Edge is an unordered pair of distinct Nodes. Canonical form holds U < V,
// so two edges over the same endpoints compare equal regardless of the
// order they were supplied in, and Edge is usable as a map key.
//
// Construct via NewEdge to enforce canonicalization; a zero or hand-built
// Edge may violate the invariant and must not be fed to Graph factories.
type Edge struct {
	U, V Node
}

// NewEdge returns the canonical Edge over u and v.
// Returns ErrSelfLoop when u == v.
func NewEdge(u, v Node) (Edge, error) {
	if u == v {
		return Edge{}, ErrSelfLoop
	}
	if v < u {
		u, v = v, u
	}

	return Edge{U: u, V: v}, nil
}

// Other returns the endpoint opposite to n, and reports whether n is an
// endpoint of e at all.
func (e Edge) Other(n Node) (Node, bool) {
	switch n {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	default:
		return 0, false
	}
}

// NodeSet is an unordered collection of Nodes with O(1) membership.
// The zero value is not usable; allocate via NewNodeSet.
type NodeSet map[Node]struct{}

// NewNodeSet returns a set containing the given nodes (duplicates collapse).
func NewNodeSet(nodes ...Node) NodeSet {
	s := make(NodeSet, len(nodes))
	for _, n := range nodes {
		s[n] = struct{}{}
	}

	return s
}

// Add inserts n into the set.
func (s NodeSet) Add(n Node) { s[n] = struct{}{} }

// Remove deletes n from the set; absent n is a no-op.
func (s NodeSet) Remove(n Node) { delete(s, n) }

// Contains reports whether n is a member of s.
func (s NodeSet) Contains(n Node) bool {
	_, ok := s[n]

	return ok
}

// Len returns the number of members.
func (s NodeSet) Len() int { return len(s) }

// Clone returns an independent copy of s.
//
// Complexity: O(|s|).
func (s NodeSet) Clone() NodeSet {
	out := make(NodeSet, len(s))
	for n := range s {
		out[n] = struct{}{}
	}

	return out
}

// Intersect returns a new set holding the members common to s and t.
// Iterates the smaller operand.
//
// Complexity: O(min(|s|, |t|)).
func (s NodeSet) Intersect(t NodeSet) NodeSet {
	small, large := s, t
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(NodeSet, len(small))
	for n := range small {
		if _, ok := large[n]; ok {
			out[n] = struct{}{}
		}
	}

	return out
}

// Equal reports whether s and t contain exactly the same members.
func (s NodeSet) Equal(t NodeSet) bool {
	if len(s) != len(t) {
		return false
	}
	for n := range s {
		if _, ok := t[n]; !ok {
			return false
		}
	}

	return true
}

// Sorted returns the members in ascending order as a fresh slice.
//
// Complexity: O(|s| log |s|).
func (s NodeSet) Sorted() []Node {
	out := make([]Node, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
