// Package core provides the immutable Graph, Node, and Edge types that the
// clique solvers operate on, plus a freeze-style Builder for bulk assembly.
//
// The Graph G = (V,E) is undirected, unweighted, and simple:
//
//   - Node is an opaque integer identifier with value equality.
//   - Edge is an unordered pair of two distinct Nodes; endpoints are
//     canonicalized at construction (U < V), so Edge{a,b} == Edge{b,a}
//     and an Edge is directly usable as a map key.
//   - Graph values never mutate. AddNode and AddEdge return a new Graph
//     sharing nothing mutable with the receiver; the receiver is returned
//     unchanged when the operation is a set-semantics no-op.
//   - Adjacency (Node → NodeSet) is derived once per Graph instance on
//     first access, guarded by sync.Once, then served in O(1). The cached
//     sets are shared read-only between callers and solver goroutines.
//
// Why immutable?
//
//   - A Graph can be handed to a background solver and inspected by the
//     caller concurrently with no locks and no copying.
//   - Derived graphs (AddNode/AddEdge results) are plain values; equality
//     is structural (same vertex set, same edge set, order irrelevant).
//
// Construction:
//
//	NewGraph()                  // empty graph
//	FromEdges(edges)            // vertex set = union of endpoints
//	FromSets(nodes, edges)      // explicit sets; unknown endpoint → ErrUnknownNode
//	NewBuilder() … Graph()      // mutable working copy frozen into a snapshot
//
// The Builder exists for bulk assembly (generators, DIMACS parsing, tests):
// it mutates an exclusive working copy in O(1) amortized per operation and
// freezes it into a shared immutable Graph, avoiding the O(V+E) copy that
// each chained AddEdge would pay.
//
// Errors:
//
//	ErrSelfLoop    - edge endpoints are equal.
//	ErrUnknownNode - edge references a node outside the declared vertex set.
//
// All query methods are safe for concurrent use; deterministic iteration is
// guaranteed by the sorted Nodes(), Edges(), and Neighbors() accessors.
package core
