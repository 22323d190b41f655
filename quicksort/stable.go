package quicksort

import "github.com/katalvlaran/lvlalgo/order"

// StableSort returns a sorted copy of s, leaving the input untouched.
// Equal elements keep their original relative order.
//
// Functional-style quicksort: the first element is the pivot, the rest
// split into a strict-less run and a greater-or-equal run, each sorted
// recursively and concatenated around the pivot. Taking the pivot from the
// front is what makes this stable: the pivot is the leftmost of its equals,
// so every later equal lands in the right run, after it.
func StableSort[T any](s []T, cmp order.Comparator[T]) []T {
	return stableAppend(make([]T, 0, len(s)), s, cmp)
}

// stableAppend appends the sorted rendering of s onto out.
func stableAppend[T any](out, s []T, cmp order.Comparator[T]) []T {
	if len(s) == 0 {
		return out
	}

	pivot := s[0]

	var left, right []T
	for _, v := range s[1:] {
		if cmp(v, pivot) < 0 {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}

	out = stableAppend(out, left, cmp)
	out = append(out, pivot)

	return stableAppend(out, right, cmp)
}
