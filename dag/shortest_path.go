package dag

import "github.com/katalvlaran/lvlalgo/lazy"

// ShortestPath returns the first hop of a shortest src -> dst route under
// w, or ok=false when dst is unreachable from src.
//
// The solver is the memoized DAG recursion: dist(dst) = 0, and dist(n) is
// the minimum over outgoing edges (e, m) of w.Of(e) + dist(m). Every node
// is therefore solved once per destination, giving O(V + E) total work.
// On a cyclic graph the recursion does not terminate; use Path when the
// input is untrusted, it detects cycles while walking.
func ShortestPath[N comparable, E, D any](
	tr Traverser[N, E],
	w Weight[E, D],
	src, dst N,
	opts ...Option[N, D],
) (Hop[N, D], bool, error) {
	solve, err := newSolver(tr, w, dst, opts)
	if err != nil {
		return Hop[N, D]{}, false, err
	}

	m := solve(src)

	return m.Hop, m.OK, nil
}

// Path reconstructs the full shortest route src -> dst as a node sequence,
// with its total distance. ok=false when dst is unreachable. A revisited
// node during the hop walk means the graph has a cycle: ErrNotDAG.
func Path[N comparable, E, D any](
	tr Traverser[N, E],
	w Weight[E, D],
	src, dst N,
	opts ...Option[N, D],
) ([]N, D, bool, error) {
	var zero D

	solve, err := newSolver(tr, w, dst, opts)
	if err != nil {
		return nil, zero, false, err
	}

	first := solve(src)
	if !first.OK {
		return nil, zero, false, nil
	}

	route := []N{src}
	seen := map[N]bool{src: true}

	for at := src; at != dst; {
		m := solve(at)
		if !m.OK {
			// The walk entered a node the destination is unreachable from;
			// only possible if the memo was poisoned by a cycle.
			return nil, zero, false, ErrNotDAG
		}

		at = m.Hop.Next
		if seen[at] {
			return nil, zero, false, ErrNotDAG
		}
		seen[at] = true
		route = append(route, at)
	}

	return route, first.Hop.Distance, true, nil
}

// newSolver validates the collaborators and builds the memoized per-node
// solver for one fixed destination.
func newSolver[N comparable, E, D any](
	tr Traverser[N, E],
	w Weight[E, D],
	dst N,
	opts []Option[N, D],
) (func(N) Memo[N, D], error) {
	if tr == nil {
		return nil, ErrNilTraverser
	}
	if !w.valid() {
		return nil, ErrNilWeight
	}

	var o Options[N, D]
	for _, opt := range opts {
		opt(&o)
	}
	if o.Cache == nil {
		o.Cache = lazy.NewMapCache[N, Memo[N, D]]()
	}

	step := func(rec func(N) Memo[N, D], n N) Memo[N, D] {
		if n == dst {
			return Memo[N, D]{Hop: Hop[N, D]{Next: dst, Distance: w.Zero()}, OK: true}
		}

		var best Memo[N, D]
		tr.EdgesFrom(n, func(edge E, to N) bool {
			sub := rec(to)
			if !sub.OK {
				return true
			}

			d := w.Add(w.Of(edge), sub.Hop.Distance)
			if !best.OK || w.Compare(d, best.Hop.Distance) < 0 {
				best = Memo[N, D]{Hop: Hop[N, D]{Next: to, Distance: d}, OK: true}
			}

			return true
		})

		return best
	}

	return lazy.FixMemo(o.Cache, step), nil
}
