package dag

import "github.com/katalvlaran/lvlalgo/matrix2d"

// Traverser exposes a directed graph one node at a time: EdgesFrom calls
// yield for every outgoing edge of n until yield returns false. The solver
// assumes the graph is acyclic; it never checks.
type Traverser[N comparable, E any] interface {
	EdgesFrom(n N, yield func(edge E, to N) bool)
}

// MapDAG is an adjacency-map graph over any comparable node type.
// The zero value is not usable; construct with NewMapDAG.
type MapDAG[N comparable, E any] struct {
	adj map[N]map[N]E
}

// NewMapDAG returns an empty adjacency-map graph.
func NewMapDAG[N comparable, E any]() *MapDAG[N, E] {
	return &MapDAG[N, E]{adj: make(map[N]map[N]E)}
}

// AddEdge records the edge src -> dst, replacing any previous edge between
// the pair.
func (g *MapDAG[N, E]) AddEdge(src, dst N, edge E) {
	out := g.adj[src]
	if out == nil {
		out = make(map[N]E)
		g.adj[src] = out
	}
	out[dst] = edge
}

// EdgesFrom implements Traverser. A node with no outgoing edges yields
// nothing. Iteration order is the map's, i.e. unspecified.
func (g *MapDAG[N, E]) EdgesFrom(n N, yield func(edge E, to N) bool) {
	for to, edge := range g.adj[n] {
		if !yield(edge, to) {
			return
		}
	}
}

// MatrixDAG is a dense adjacency-matrix graph: nodes are 0..n-1 and cell
// (src, dst) holds a pointer to the edge, nil meaning absent.
type MatrixDAG[E any] struct {
	cells *matrix2d.Matrix[*E]
}

// NewMatrixDAG returns an edgeless n-node graph.
func NewMatrixDAG[E any](n int) *MatrixDAG[E] {
	return &MatrixDAG[E]{cells: matrix2d.New[*E](n, n)}
}

// Nodes returns the node count.
func (g *MatrixDAG[E]) Nodes() int { return g.cells.Rows() }

// SetEdge records the edge src -> dst.
func (g *MatrixDAG[E]) SetEdge(src, dst int, edge E) error {
	return g.cells.Set(src, dst, &edge)
}

// EdgesFrom implements Traverser by scanning row n in ascending dst order.
// Out-of-range nodes yield nothing.
func (g *MatrixDAG[E]) EdgesFrom(n int, yield func(edge E, to int) bool) {
	row, err := g.cells.Row(n)
	if err != nil {
		return
	}

	for to, edge := range row {
		if edge == nil {
			continue
		}
		if !yield(*edge, to) {
			return
		}
	}
}
