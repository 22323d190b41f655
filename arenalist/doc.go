// Package arenalist implements a doubly linked list stored in an arena slot
// table, addressed through copyable cursors.
//
// What:
//
//   - List[T] keeps every node in a flat slice of slots instead of scattered
//     heap allocations; links are slot indices, not pointers.
//   - Cursor[T] is a small value (slot index + generation) that identifies a
//     node without borrowing the list. Cursors can be copied, stored, and
//     compared freely while the list is mutated.
//   - Freed slots go onto a free list and are reused; each slot carries a
//     generation counter bumped on removal, so a cursor into a removed (or
//     removed-and-reused) node is detected as stale rather than silently
//     resolving to the wrong element.
//
// Why:
//
//   - Pointer-chasing lists fight the allocator and the cache; a slot table
//     keeps nodes contiguous and allocation-free after warm-up.
//   - Algorithms that permute a list (quicksort over a linked list, LRU
//     shuffles) need many live node handles at once; cursors make that safe
//     where iterators tied to the container's internals cannot.
//
// Complexity:
//
//   - PushBack, PushFront, InsertAfter, InsertBefore: O(1) amortized.
//   - RemoveAt, Swap, At, Ptr, Next, Prev:            O(1).
//   - Values: O(n).
//
// Errors (sentinel):
//
//   - ErrStaleCursor: the cursor's node was removed, or its slot was reused.
//   - ErrSameCursor:  Swap was asked to exchange a node with itself.
package arenalist
