package quicksort

import "github.com/katalvlaran/lvlalgo/order"

// checkPartitionArgs validates the shared preconditions of the exported
// partition routines.
func checkPartitionArgs[T any](s []T, pivotIdx int) error {
	if len(s) < 3 {
		return ErrShortSlice
	}
	if pivotIdx < 0 || pivotIdx >= len(s) {
		return ErrIndexRange
	}

	return nil
}

// PartitionLomuto partitions s around the element at pivotIdx with a single
// left-to-right scan and returns p such that
//
//	s[:p]   <  pivot
//	s[p]    == pivot
//	s[p+1:] >= pivot
//
// The pivot element itself may move. Requires len(s) >= 3.
func PartitionLomuto[T any](s []T, cmp order.Comparator[T], pivotIdx int) (int, error) {
	if err := checkPartitionArgs(s, pivotIdx); err != nil {
		return 0, err
	}

	last := len(s) - 1

	// Park the pivot at the end for the duration of the scan.
	s[pivotIdx], s[last] = s[last], s[pivotIdx]
	pivot := s[last]

	// Invariant: s[:left] < pivot, s[left:j] >= pivot.
	left := 0
	for j := 0; j < last; j++ {
		if cmp(s[j], pivot) < 0 {
			s[left], s[j] = s[j], s[left]
			left++
		}
	}

	// Drop the pivot onto the separation point.
	s[left], s[last] = s[last], s[left]

	return left, nil
}

// PartitionHoare partitions s around the element at pivotIdx by scanning
// from both ends and returns p such that
//
//	s[:p] <= pivot
//	s[p:] >  pivot is NOT guaranteed elementwise; the guarantee is
//	max(s[:p]) <= min(s[p:]), with both sides non-empty (0 < p < len(s)).
//
// Fewer swaps than Lomuto on average. Requires len(s) >= 3.
func PartitionHoare[T any](s []T, cmp order.Comparator[T], pivotIdx int) (int, error) {
	if err := checkPartitionArgs(s, pivotIdx); err != nil {
		return 0, err
	}

	pivot := s[pivotIdx]
	left, right := 0, len(s)-1

	// Invariant: s[:left] <= pivot, s[right+1:] >= pivot.
	for {
		// The pivot element stops both scans, so neither runs off the slice.
		for cmp(s[left], pivot) < 0 {
			left++
		}
		for cmp(s[right], pivot) > 0 {
			right--
		}

		if left >= right {
			if left == right {
				// s[left] == pivot here; either side of it is a valid cut.
				// Pick the one that keeps both parts non-empty.
				if left == 0 {
					return left + 1, nil
				}

				return left, nil
			}

			// left == right+1: the cut falls between the scanned regions.
			return left, nil
		}

		s[left], s[right] = s[right], s[left]
		left++
		right--
	}
}

// fatPartition is the Dutch-national-flag partition used by Sort and
// LazySorter. It returns (lo, hi) such that s[:lo] < pivot,
// s[lo:hi] == pivot (never empty), s[hi:] > pivot.
//
// Instead of copying the pivot element aside, it tracks the pivot's current
// position as swaps move it; elements therefore never need to be duplicated.
// Callers guarantee len(s) >= 3 and a valid pivotIdx.
func fatPartition[T any](s []T, cmp order.Comparator[T], pivotIdx int) (int, int) {
	pivot := pivotIdx

	// Regions: s[:left] < pivot, s[left:eq] == pivot, s[right+1:] > pivot.
	// s[eq:right+1] is the unprocessed window, shrinking to empty.
	left, eq, right := 0, 0, len(s)-1

	for eq <= right {
		if eq == pivot {
			// The pivot compares equal to itself; skip the comparison.
			eq++

			continue
		}

		switch c := cmp(s[eq], s[pivot]); {
		case c < 0:
			if left != eq {
				s[left], s[eq] = s[eq], s[left]
				if left == pivot {
					pivot = eq
				}
			}
			left++
			eq++
		case c == 0:
			eq++
		default:
			s[eq], s[right] = s[right], s[eq]
			if right == pivot {
				pivot = eq
			}
			right--
		}
	}

	// The window closed exactly: eq == right+1.
	return left, eq
}

// PartitionThreeWay is the validated form of the fat partition: it returns
// (lo, hi) such that s[:lo] < pivot, s[lo:hi] == pivot, s[hi:] > pivot. The
// equal run is never empty since the pivot comes from s. Requires
// len(s) >= 3.
func PartitionThreeWay[T any](s []T, cmp order.Comparator[T], pivotIdx int) (int, int, error) {
	if err := checkPartitionArgs(s, pivotIdx); err != nil {
		return 0, 0, err
	}

	lo, hi := fatPartition(s, cmp, pivotIdx)

	return lo, hi, nil
}
