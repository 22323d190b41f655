package minheap

import "github.com/katalvlaran/lvlalgo/order"

// Heap is a binary min-heap over elements of type T, ordered by the
// comparator passed at construction. The zero Heap is not usable; build
// one with New or NewFromSlice.
type Heap[T any] struct {
	data []T                 // implicit binary tree, root at index 0
	cmp  order.Comparator[T] // strict weak ordering over T
}

// New returns an empty heap ordered by cmp.
func New[T any](cmp order.Comparator[T]) *Heap[T] {
	return &Heap[T]{cmp: cmp}
}

// NewFromSlice builds a heap that takes ownership of items, establishing
// the heap invariant bottom-up in O(n). The caller must not reuse items.
func NewFromSlice[T any](cmp order.Comparator[T], items []T) *Heap[T] {
	h := &Heap[T]{data: items, cmp: cmp}

	// Heapify: sift down every internal node, last parent first.
	// Leaves (indices >= len/2) are trivially valid one-element heaps.
	for i := len(items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// Len returns the number of elements currently stored.
func (h *Heap[T]) Len() int { return len(h.data) }

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool { return len(h.data) == 0 }

// PeekMin returns the smallest element without removing it.
// The second result is false when the heap is empty.
func (h *Heap[T]) PeekMin() (T, bool) {
	if len(h.data) == 0 {
		var zero T

		return zero, false
	}

	return h.data[0], true
}

// Push inserts v, restoring the heap invariant in O(log n).
func (h *Heap[T]) Push(v T) {
	// Append at the tail: the only possibly-violated relation is between
	// the new leaf and its parent, so a single sift-up repairs the heap.
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// PopMin removes and returns the smallest element.
// The second result is false when the heap is empty.
func (h *Heap[T]) PopMin() (T, bool) {
	if len(h.data) == 0 {
		var zero T

		return zero, false
	}

	// Swap-remove the root: move the last element into the root slot and
	// shrink. The moved element may now exceed its children, so sift down.
	n := len(h.data) - 1
	min := h.data[0]
	h.data[0] = h.data[n]
	var zero T
	h.data[n] = zero // release the reference for GC
	h.data = h.data[:n]

	if n > 0 {
		h.siftDown(0)
	}

	return min, true
}

// siftUp moves the element at index i toward the root until its parent is
// no longer greater than it.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.data[parent], h.data[i]) <= 0 {
			break // parent <= child: invariant holds on this path
		}
		h.data[parent], h.data[i] = h.data[i], h.data[parent]
		i = parent
	}
}

// siftDown moves the element at index i toward the leaves until it is no
// greater than both of its children.
//
// Each step finds the minimum of {parent, left child, right child} and, if
// that minimum is a child, swaps it into the parent slot. Swapping with the
// smaller child is required: promoting the larger child would immediately
// violate the invariant against its sibling.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		right := 2*i + 2

		min := i
		if left < n && h.cmp(h.data[left], h.data[min]) < 0 {
			min = left
		}
		if right < n && h.cmp(h.data[right], h.data[min]) < 0 {
			min = right
		}

		if min == i {
			return // both children (if any) are >= parent
		}

		h.data[i], h.data[min] = h.data[min], h.data[i]
		i = min
	}
}

// verify walks every parent/child pair and reports the first violation of
// the heap invariant, or -1 if the heap is valid. Used by tests.
func (h *Heap[T]) verify() int {
	for i := 1; i < len(h.data); i++ {
		if h.cmp(h.data[(i-1)/2], h.data[i]) > 0 {
			return i
		}
	}

	return -1
}
