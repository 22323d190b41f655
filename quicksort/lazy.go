package quicksort

import "github.com/katalvlaran/lvlalgo/order"

// LazySorter answers order-statistic queries over a slice without sorting
// all of it. At(i) performs only the partitions needed to pin position i,
// and remembers them in a partition tree: each node covers a range of the
// slice and records where its three-way partition cut it. Settled ranges
// are never re-partitioned, so a sequence of queries converges toward (and
// never exceeds) the cost of one full sort.
//
// The sorter owns the slice for its lifetime: it reorders elements in
// place, and external mutation of the slice invalidates the tree.
type LazySorter[T any] struct {
	s    []T
	cmp  order.Comparator[T]
	root lazyNode
}

// lazyNode is one range of the partition tree.
type lazyNode struct {
	state lazyState

	// Set once the range is partitioned: the strict-less part is
	// [rangeLo:cutLo), the equal run [cutLo:cutHi), the strict-greater part
	// [cutHi:rangeHi).
	cutLo, cutHi int
	left, right  *lazyNode
}

type lazyState uint8

const (
	// unsorted: the range has not been partitioned yet.
	unsorted lazyState = iota
	// partial: this layer is partitioned; children may not be.
	partial
	// settled: every position in the range holds its final value.
	settled
)

// NewLazySorter wraps s for lazy order-statistic queries under cmp.
func NewLazySorter[T any](s []T, cmp order.Comparator[T]) *LazySorter[T] {
	return &LazySorter[T]{s: s, cmp: cmp}
}

// At returns the element that a full sort would place at position i.
func (ls *LazySorter[T]) At(i int) (T, error) {
	if i < 0 || i >= len(ls.s) {
		var zero T

		return zero, ErrIndexRange
	}

	ls.ensureSorted(&ls.root, i, 0, len(ls.s))

	return ls.s[i], nil
}

// ensureSorted pins position target within the range [lo:hi) covered by n,
// partitioning lazily and recording progress in the tree.
func (ls *LazySorter[T]) ensureSorted(n *lazyNode, target, lo, hi int) {
	switch hi - lo {
	case 1:
		n.state = settled

		return
	case 2:
		if n.state == settled {
			return
		}
		if ls.cmp(ls.s[lo], ls.s[lo+1]) > 0 {
			ls.s[lo], ls.s[lo+1] = ls.s[lo+1], ls.s[lo]
		}
		n.state = settled

		return
	}

	switch n.state {
	case unsorted:
		window := ls.s[lo:hi]
		pl, pr := fatPartition(window, ls.cmp, PivotMedianOfThree(window, ls.cmp))
		n.cutLo, n.cutHi = lo+pl, lo+pr
		n.left, n.right = &lazyNode{}, &lazyNode{}
		n.state = partial

		ls.descend(n, target, lo, hi)
	case partial:
		ls.descend(n, target, lo, hi)

		// Promote once both children have settled.
		if n.left.state == settled && n.right.state == settled {
			n.state = settled
		}
	case settled:
		// Nothing left to do in this range.
	}
}

// descend recurses into whichever side of the cut holds target. A target
// inside the equal run is already final.
func (ls *LazySorter[T]) descend(n *lazyNode, target, lo, hi int) {
	switch {
	case target < n.cutLo:
		ls.ensureSorted(n.left, target, lo, n.cutLo)
	case target >= n.cutHi:
		ls.ensureSorted(n.right, target, n.cutHi, hi)
	}

	// Degenerate sides settle trivially so promotion can still happen.
	if n.cutLo == lo {
		n.left.state = settled
	}
	if n.cutHi == hi {
		n.right.state = settled
	}
}
