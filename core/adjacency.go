package core

// buildAdjacency derives the Node → NodeSet map from the edge set.
// Runs at most once per Graph instance (sync.Once in Adjacent/Neighbors);
// isolated nodes get an entry with an empty set so lookups never allocate.
func (g *Graph) buildAdjacency() {
	adj := make(map[Node]NodeSet, len(g.nodes))
	for n := range g.nodes {
		adj[n] = make(NodeSet)
	}
	for e := range g.edges {
		adj[e.U][e.V] = struct{}{}
		adj[e.V][e.U] = struct{}{}
	}
	g.adj = adj
}

// Adjacent returns the set of neighbors of n.
//
// The returned NodeSet is the shared cache entry itself, not a copy:
// callers must treat it as read-only. Mutating it corrupts the graph for
// every other reader. Use Neighbors for an owned slice, or Clone the set.
// Unknown n yields an empty set.
//
// The first call (from any goroutine) materializes the full adjacency map
// in O(V+E); every subsequent call is O(1). Safe for concurrent use.
func (g *Graph) Adjacent(n Node) NodeSet {
	g.adjOnce.Do(g.buildAdjacency)
	if s, ok := g.adj[n]; ok {
		return s
	}

	return NodeSet{}
}

// Neighbors returns the neighbors of n in ascending order as a fresh
// slice, safe for the caller to retain or mutate. Unknown n yields an
// empty slice.
//
// Complexity: O(deg(n) log deg(n)) after the one-time adjacency build.
func (g *Graph) Neighbors(n Node) []Node {
	return g.Adjacent(n).Sorted()
}

// Degree returns the number of neighbors of n (0 for unknown n).
func (g *Graph) Degree(n Node) int {
	return g.Adjacent(n).Len()
}
