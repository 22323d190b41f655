package quicksort

import "github.com/katalvlaran/lvlalgo/order"

// Sort sorts s in place under cmp. Unstable. It recurses on the strict
// sides of a three-way partition with a median-of-three pivot, so runs of
// equal elements are placed once and never revisited.
func Sort[T any](s []T, cmp order.Comparator[T]) {
	n := len(s)

	if n <= 1 {
		return
	}

	if n == 2 {
		if cmp(s[0], s[1]) > 0 {
			s[0], s[1] = s[1], s[0]
		}

		return
	}

	lo, hi := fatPartition(s, cmp, PivotMedianOfThree(s, cmp))

	Sort(s[:lo], cmp)
	Sort(s[hi:], cmp)
}
