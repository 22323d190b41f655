package minheap

// Verify exposes the internal invariant walk to external tests.
func (h *Heap[T]) Verify() int { return h.verify() }
