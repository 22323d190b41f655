package mergesort

import "github.com/katalvlaran/lvlalgo/order"

// Test-only exports of internal machinery.

// MergeManyNaive is the O(k)-per-element scan merge, the oracle for
// MergeMany.
func MergeManyNaive[T any](dst []T, seqs [][]T, cmp order.Comparator[T]) {
	mergeManyNaive(dst, seqs, cmp)
}

// MergeAdjacent exposes the untrimmed in-place merge.
func MergeAdjacent[T any](s []T, mid int, cmp order.Comparator[T]) {
	mergeAdjacent(s, mid, cmp)
}

// MergeAdjacentTrimmed exposes the trimmed in-place merge.
func MergeAdjacentTrimmed[T any](s []T, mid int, cmp order.Comparator[T]) {
	mergeAdjacentTrimmed(s, mid, cmp)
}

// SearchLeftmost exposes the leftmost binary search.
func SearchLeftmost[T any](s []T, cmp order.Comparator[T], target T) int {
	return searchLeftmost(s, cmp, target)
}
