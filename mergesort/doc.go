// Package mergesort provides stable merge primitives and the sorts built
// from them, from a plain two-way merge up to a parallel multi-way sort.
//
// What:
//
//   - Merge / MergeFunc: stable two-way merge of sorted inputs; on ties the
//     element from the first sequence is emitted first.
//   - MergeMany: stable k-way merge driven by a min-heap, tie-broken by
//     sequence index so earlier sequences win ties.
//   - Sort: in-place recursive merge sort. Each merge step first trims the
//     already-ordered margins with binary search, so nearly-sorted inputs
//     cost little, then merges through a temporary copy of the left run.
//   - ConcurrentSort: parallel merge sort. The input is split evenly across
//     P workers which sort their parts independently; P-1 pivots sampled
//     from the first part cut every part into P subparts; each worker then
//     gathers one subpart column into a scratch buffer and k-way merges it
//     back into its destination window. All phases run under an errgroup,
//     so context cancellation stops the sort between phases.
//
// Why:
//
//   - Merging is the one comparison sort step that is naturally stable and
//     naturally parallel; exposing the merge primitives separately lets the
//     concurrent sort reuse exactly the code the sequential sort is built
//     and tested on.
//
// Complexity: Sort O(n log n), O(n/2) extra space per merge; ConcurrentSort
// O((n/P) log n) expected wall time with O(n) scratch.
//
// Errors (sentinel):
//
//   - ErrShortDst: a merge destination smaller than its inputs.
//   - ErrNilComparator: a nil comparator.
package mergesort
