// Package quicksort provides the classic partitioning schemes and the sorts
// built on top of them, all generic over order.Comparator.
//
// What:
//
//   - Pivot selection (PivotFirst, PivotMiddle, PivotLast,
//     PivotMedianOfThree) separated from partitioning, so every partition
//     works with every strategy.
//   - PartitionLomuto: single left-to-right scan; simplest to reason about.
//   - PartitionHoare: scans from both ends; fewer swaps than Lomuto, and the
//     returned split always leaves both sides non-empty.
//   - PartitionThreeWay: Dutch-national-flag fat partition producing a
//     strict-less / equal / strict-greater split. It tracks the pivot's
//     position as it moves instead of copying the pivot out, so it never
//     needs to duplicate an element. The equal run is what keeps quicksort
//     linear on inputs full of duplicates.
//   - Sort: in-place unstable quicksort over the three-way partition with a
//     median-of-three pivot.
//   - StableSort: functional-style stable quicksort returning a new slice;
//     slower, but order-preserving and non-destructive.
//   - LazySorter: order statistics on demand. At(i) sorts only the partition
//     path that pins position i, memoizing the partition tree so repeated
//     queries never redo work.
//   - Container / SortContainer: the same three-way quicksort expressed over
//     an abstract indexed container, with adapters for slices and for
//     arenalist lists.
//
// Why:
//
//   - The partition postconditions, not the recursion, are where quicksort
//     correctness lives; exposing them separately makes each one testable
//     under adversarial pivots.
//   - Comparator misbehavior (non-transitive, mutating mid-sort) breaks
//     every routine here; the comparator must define a consistent total
//     preorder over the input.
//
// Complexity: Sort and SortContainer O(n log n) expected; LazySorter.At
// O(n) amortized for the first query, O(log n) expected for repeats;
// StableSort O(n log n) expected with O(n log n) extra space.
//
// Errors (sentinel):
//
//   - ErrShortSlice: a partition was given fewer than 3 elements.
//   - ErrIndexRange: a pivot or query index outside the valid range.
package quicksort
