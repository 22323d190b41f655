package order

import "cmp"

// Comparator reports the relative order of a and b:
// negative if a sorts before b, zero if equivalent, positive if after.
// cmp.Compare satisfies this type for any cmp.Ordered T.
type Comparator[T any] func(a, b T) int

// Natural returns the comparator induced by the type's own < ordering.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// By builds a comparator that orders elements by an extracted sort key.
// Useful when the element itself is not ordered, or when only part of it
// participates in the ordering (e.g. strings by length).
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Reverse inverts a comparator, turning ascending order into descending.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Then chains two comparators lexicographically: tiebreak decides only
// when primary reports equivalence.
func Then[T any](primary, tiebreak Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := primary(a, b); r != 0 {
			return r
		}

		return tiebreak(a, b)
	}
}
