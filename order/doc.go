// Package order defines the comparator vocabulary shared by every lvlalgo
// package.
//
// What:
//
//   - Comparator[T]: the three-way comparison function every algorithm in
//     this module accepts. Negative means a sorts before b, zero means they
//     are equivalent, positive means a sorts after b — the same contract as
//     the standard library's cmp.Compare, which is directly assignable.
//   - Natural: Comparator for any cmp.Ordered type.
//   - By: build a Comparator from a sort-key extractor.
//   - Reverse, Then: comparator combinators.
//
// Why:
//
//   - A comparator can carry runtime information (a locale, a lookup table,
//     a field selector) that a static Ordered constraint cannot.
//   - Keeping the type here lets quicksort, mergesort, minheap and dag share
//     one convention without depending on each other.
//
// A Comparator must describe a strict weak ordering that stays consistent
// for the duration of a call: reflexive on equality, transitive, and
// anti-symmetric. Comparators that consult mutable state the algorithm is
// itself permuting will corrupt results.
package order
