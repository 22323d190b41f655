// Package dag provides generic traversal over directed acyclic graphs and
// a memoized shortest-path solver built on the lazy package's fixed point.
//
// What:
//
//   - Traverser[N, E] abstracts "give me the outgoing edges of n"; MapDAG
//     (adjacency map, any comparable node type) and MatrixDAG (dense
//     adjacency matrix over matrix2d, integer nodes) both implement it.
//   - Weight[E, D] bundles the distance algebra: extract a distance from an
//     edge, add two distances, the zero distance, and a comparator.
//     IntWeight and Float64Weight cover edges that are their own distances.
//   - ShortestPath answers "from src, which neighbor starts a shortest
//     route to dst, and how far is it" as a Hop. The recursion is the
//     textbook DAG decomposition: the distance from n is the minimum over
//     outgoing edges of edge weight plus the distance from the edge's
//     head. lazy.FixMemo threads a cache through it, so the whole
//     computation is linear in edges despite the naive shape.
//   - Path walks the memoized hops into a full route.
//
// Why:
//
//   - Keeping traversal, distance algebra, and memo storage as separate
//     injected pieces means one solver serves string-keyed maps, dense int
//     matrices, custom weights, and custom caches without modification.
//
// Complexity: ShortestPath O(V + E) per destination with a warm cache;
// Path adds O(route length).
//
// Errors (sentinel):
//
//   - ErrNilTraverser, ErrNilWeight: missing collaborator.
//   - ErrNotDAG: Path detected a cycle while walking hops.
package dag
