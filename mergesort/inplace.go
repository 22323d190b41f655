package mergesort

import (
	"sort"

	"github.com/katalvlaran/lvlalgo/order"
)

// mergeAdjacent merges the sorted runs s[:mid] and s[mid:] in place. The
// left run is copied to a temporary buffer, then the buffer and the right
// run are merged back into s. The write position i+j never overtakes the
// read position mid+j of the right run, so nothing unread is overwritten.
func mergeAdjacent[T any](s []T, mid int, cmp order.Comparator[T]) {
	if mid == 0 || mid == len(s) {
		return
	}

	tmp := make([]T, mid)
	copy(tmp, s[:mid])

	MergeFunc(tmp, s[mid:], cmp, func(i int, v T) { s[i] = v })
}

// mergeAdjacentTrimmed is mergeAdjacent with binary-search trimming: the
// prefix already <= the right run's minimum and the suffix already >= the
// left run's maximum are excluded before merging, so an already-ordered
// pair of runs is a no-op and nearly-ordered pairs merge only the
// overlapping window.
func mergeAdjacentTrimmed[T any](s []T, mid int, cmp order.Comparator[T]) {
	if len(s) <= 1 || mid == 0 || mid == len(s) {
		return
	}

	leftMax := s[mid-1]
	rightMin := s[mid]

	// Runs already in order: nothing overlaps.
	if cmp(leftMax, rightMin) <= 0 {
		return
	}

	// s[hi:] >= leftMax stays put.
	hi := mid + searchLeftmost(s[mid:], cmp, leftMax)

	// s[:lo] <= rightMin stays put (upper bound keeps equal elements out of
	// the merge window, preserving their order).
	lo := sort.Search(mid, func(i int) bool { return cmp(s[i], rightMin) > 0 })

	if lo == mid || hi == mid {
		return
	}

	mergeAdjacent(s[lo:hi], mid-lo, cmp)
}

// Sort sorts s in place under cmp. Stable.
func Sort[T any](s []T, cmp order.Comparator[T]) {
	if len(s) <= 1 {
		return
	}

	mid := len(s) / 2

	Sort(s[:mid], cmp)
	Sort(s[mid:], cmp)

	mergeAdjacentTrimmed(s, mid, cmp)
}
