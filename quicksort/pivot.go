package quicksort

import "github.com/katalvlaran/lvlalgo/order"

// Pivot strategies map a range length (or the range itself) to a pivot
// position. They are deliberately decoupled from the partition routines:
// any strategy feeds any partition.

// PivotFirst selects position 0.
func PivotFirst(int) int { return 0 }

// PivotMiddle selects the middle position.
func PivotMiddle(n int) int { return n / 2 }

// PivotLast selects the final position.
func PivotLast(n int) int { return n - 1 }

// PivotMedianOfThree selects whichever of the first, middle, and last
// elements is the median, using at most 3 comparisons. The median guards
// against the quadratic blowup that first-element pivots hit on sorted
// input. Panics on an empty slice.
func PivotMedianOfThree[T any](s []T, cmp order.Comparator[T]) int {
	i1, i2, i3 := 0, len(s)/2, len(s)-1
	e1, e2, e3 := s[i1], s[i2], s[i3]

	c12 := cmp(e1, e2)
	c23 := cmp(e2, e3)

	// e1 <= e2 <= e3 or e3 <= e2 <= e1: the middle element is the median.
	if (c12 <= 0 && c23 <= 0) || (c12 >= 0 && c23 >= 0) {
		return i2
	}

	// Third comparison only when the first two were inconclusive.
	c13 := cmp(e1, e3)

	// e2 <= e1 <= e3 or e3 <= e1 <= e2: the first element is the median.
	if (c12 >= 0 && c13 <= 0) || (c12 <= 0 && c13 >= 0) {
		return i1
	}

	return i3
}
