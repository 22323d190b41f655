package dag

import (
	"errors"

	"github.com/katalvlaran/lvlalgo/lazy"
	"github.com/katalvlaran/lvlalgo/order"
)

// Sentinel errors shared across the package.
var (
	// ErrNilTraverser indicates a nil graph traverser.
	ErrNilTraverser = errors.New("dag: traverser must not be nil")

	// ErrNilWeight indicates a Weight with a missing operation.
	ErrNilWeight = errors.New("dag: weight operations must not be nil")

	// ErrNotDAG indicates Path revisited a node: the graph has a cycle.
	ErrNotDAG = errors.New("dag: cycle detected, graph is not a DAG")
)

// Weight is the distance algebra for shortest paths: how to read a
// distance off an edge, combine distances, and compare them. All four
// operations must be set.
type Weight[E, D any] struct {
	// Of extracts the distance contributed by one edge.
	Of func(edge E) D
	// Add combines two distances.
	Add func(a, b D) D
	// Zero is the distance from a node to itself.
	Zero func() D
	// Compare orders distances; smaller is shorter.
	Compare order.Comparator[D]
}

// valid reports whether every operation is present.
func (w Weight[E, D]) valid() bool {
	return w.Of != nil && w.Add != nil && w.Zero != nil && w.Compare != nil
}

// IntWeight treats int edges as their own distances.
func IntWeight() Weight[int, int] {
	return Weight[int, int]{
		Of:      func(edge int) int { return edge },
		Add:     func(a, b int) int { return a + b },
		Zero:    func() int { return 0 },
		Compare: order.Natural[int](),
	}
}

// Float64Weight treats float64 edges as their own distances.
func Float64Weight() Weight[float64, float64] {
	return Weight[float64, float64]{
		Of:      func(edge float64) float64 { return edge },
		Add:     func(a, b float64) float64 { return a + b },
		Zero:    func() float64 { return 0 },
		Compare: order.Natural[float64](),
	}
}

// Hop is one step of a shortest route: the neighbor to move to next and
// the total remaining distance to the destination.
type Hop[N, D any] struct {
	Next     N
	Distance D
}

// Memo is the cached value of the shortest-path recursion for one source
// node: its best hop, or OK=false when the destination is unreachable.
type Memo[N, D any] struct {
	Hop Hop[N, D]
	OK  bool
}

// Options configures ShortestPath and Path.
type Options[N, D any] struct {
	// Cache stores memoized per-node results. A cache is bound to one
	// destination: reusing it with a different dst returns stale answers.
	Cache lazy.Cache[N, Memo[N, D]]
}

// Option overrides one field of Options.
type Option[N, D any] func(*Options[N, D])

// WithCache substitutes the memo store, e.g. a dense table for integer
// nodes. Panics if c is nil.
func WithCache[N, D any](c lazy.Cache[N, Memo[N, D]]) Option[N, D] {
	if c == nil {
		panic("dag: WithCache requires a non-nil cache")
	}

	return func(o *Options[N, D]) { o.Cache = c }
}

// NewDenseCache returns a slice-backed memo store for graphs whose nodes
// are 0..n-1, such as MatrixDAG.
func NewDenseCache[D any](n int) lazy.Cache[int, Memo[int, D]] {
	return lazy.NewSliceCache[Memo[int, D]](n)
}
