// Package minheap implements a generic binary min-heap ordered by a
// caller-supplied comparator.
//
// What:
//
//   - Heap[T] stores arbitrary elements in an implicit binary tree laid out
//     over a slice; PopMin always yields the smallest element under the
//     comparator. Inverting the comparator (order.Reverse) yields a max-heap.
//
// Why:
//
//   - container/heap requires implementing a five-method interface on a
//     concrete type and routes every element through interface{}; a
//     comparator-driven generic heap keeps elements typed and lets the
//     ordering carry runtime information (a tie-break index, a field
//     selector) that a static Less method cannot.
//
// Complexity:
//
//   - Push:          O(log n) — sift the new tail up.
//   - PopMin:        O(log n) — swap-remove the root, sift the new root down.
//   - PeekMin, Len:  O(1)
//   - NewFromSlice:  O(n)     — bottom-up heapify.
//
// Layout (implicit tree over the backing slice):
//
//   - root at index 0
//   - children of i at 2i+1 and 2i+2
//   - parent of i at (i-1)/2
//
// Invariant: data[parent(i)] <= data[i] under the comparator, for every
// non-root i, after every exported operation.
package minheap
