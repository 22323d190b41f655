package arenalist

import "errors"

// Sentinel errors returned by cursor-resolving operations.
var (
	// ErrStaleCursor indicates a cursor whose node no longer exists: either
	// it was removed, or its slot has been reused for a newer node.
	ErrStaleCursor = errors.New("arenalist: stale cursor")

	// ErrSameCursor indicates Swap was called with two cursors naming the
	// same node.
	ErrSameCursor = errors.New("arenalist: cannot swap a node with itself")
)

// none marks the absence of a neighbouring slot (head's prev, tail's next).
const none = -1

// Cursor identifies one node of a List[T]. It is a plain value: copy it,
// keep it across mutations, hand it to other code. A cursor never blocks
// list operations; it only becomes stale when its node is removed.
//
// The type parameter ties a cursor to its element type so a cursor minted
// by a List[int] cannot be passed to a List[string].
type Cursor[T any] struct {
	slot int    // index into the slot table
	gen  uint32 // generation the slot had when the cursor was minted
}

// slot is one cell of the arena. A live slot holds a value and its links;
// a free slot sits on the free list awaiting reuse.
type slotCell[T any] struct {
	value      T
	next, prev int    // slot indices, none at the ends
	gen        uint32 // incremented every time the slot is freed
	live       bool
}

// List is a doubly linked list over an arena slot table.
// The zero value is not usable; construct with New.
type List[T any] struct {
	slots []slotCell[T]
	free  []int // indices of dead slots, reused LIFO
	head  int
	tail  int
	size  int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{head: none, tail: none}
}

// Len returns the number of live nodes.
func (l *List[T]) Len() int { return l.size }

// alloc claims a slot for value and returns its index, preferring the free
// list over growing the table. The slot's generation is preserved across
// reuse, so cursors minted before the slot was freed stay stale.
func (l *List[T]) alloc(value T) int {
	var idx int
	if n := len(l.free); n > 0 {
		idx = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.slots = append(l.slots, slotCell[T]{})
		idx = len(l.slots) - 1
	}

	s := &l.slots[idx]
	s.value = value
	s.next = none
	s.prev = none
	s.live = true

	l.size++

	return idx
}

// resolve maps a cursor to its slot index, rejecting stale cursors.
func (l *List[T]) resolve(c Cursor[T]) (int, error) {
	if c.slot < 0 || c.slot >= len(l.slots) {
		return 0, ErrStaleCursor
	}
	s := &l.slots[c.slot]
	if !s.live || s.gen != c.gen {
		return 0, ErrStaleCursor
	}

	return c.slot, nil
}

// link wires left.next = right and right.prev = left.
func (l *List[T]) link(left, right int) {
	l.slots[left].next = right
	l.slots[right].prev = left
}

// cursorTo mints a cursor for a live slot.
func (l *List[T]) cursorTo(idx int) Cursor[T] {
	return Cursor[T]{slot: idx, gen: l.slots[idx].gen}
}

// PushBack appends value at the tail and returns its cursor.
func (l *List[T]) PushBack(value T) Cursor[T] {
	idx := l.alloc(value)

	if l.tail == none {
		// First node: it is both head and tail.
		l.head, l.tail = idx, idx
	} else {
		l.link(l.tail, idx)
		l.tail = idx
	}

	return l.cursorTo(idx)
}

// PushFront prepends value at the head and returns its cursor.
func (l *List[T]) PushFront(value T) Cursor[T] {
	idx := l.alloc(value)

	if l.head == none {
		l.head, l.tail = idx, idx
	} else {
		l.link(idx, l.head)
		l.head = idx
	}

	return l.cursorTo(idx)
}

// InsertAfter places value immediately after the node at c.
func (l *List[T]) InsertAfter(c Cursor[T], value T) (Cursor[T], error) {
	at, err := l.resolve(c)
	if err != nil {
		return Cursor[T]{}, err
	}

	idx := l.alloc(value)
	next := l.slots[at].next

	// (at -> next) becomes (at -> idx -> next).
	l.link(at, idx)
	if next != none {
		l.link(idx, next)
	} else {
		// at was the tail; the new node becomes the tail.
		l.tail = idx
	}

	return l.cursorTo(idx), nil
}

// InsertBefore places value immediately before the node at c.
func (l *List[T]) InsertBefore(c Cursor[T], value T) (Cursor[T], error) {
	at, err := l.resolve(c)
	if err != nil {
		return Cursor[T]{}, err
	}

	idx := l.alloc(value)
	prev := l.slots[at].prev

	// (prev -> at) becomes (prev -> idx -> at).
	l.link(idx, at)
	if prev != none {
		l.link(prev, idx)
	} else {
		// at was the head; the new node becomes the head.
		l.head = idx
	}

	return l.cursorTo(idx), nil
}

// RemoveAt unlinks the node at c and returns its value. The cursor (and any
// copy of it) is stale afterwards.
func (l *List[T]) RemoveAt(c Cursor[T]) (T, error) {
	idx, err := l.resolve(c)
	if err != nil {
		var zero T

		return zero, err
	}

	s := &l.slots[idx]
	prev, next := s.prev, s.next

	switch {
	case prev == none && next == none:
		// Only node in the list.
		l.head, l.tail = none, none
	case prev == none:
		// Removing the head.
		l.head = next
		l.slots[next].prev = none
	case next == none:
		// Removing the tail.
		l.tail = prev
		l.slots[prev].next = none
	default:
		// Interior node: bridge the neighbours.
		l.link(prev, next)
	}

	value := s.value

	// Retire the slot: bump the generation so outstanding cursors go stale,
	// clear the value so the arena does not pin it, and recycle the index.
	var zero T
	s.value = zero
	s.live = false
	s.gen++
	l.free = append(l.free, idx)
	l.size--

	return value, nil
}

// At returns the value at c.
func (l *List[T]) At(c Cursor[T]) (T, error) {
	idx, err := l.resolve(c)
	if err != nil {
		var zero T

		return zero, err
	}

	return l.slots[idx].value, nil
}

// Ptr returns a pointer to the value at c for in-place mutation. The
// pointer stays valid until the node is removed.
func (l *List[T]) Ptr(c Cursor[T]) (*T, error) {
	idx, err := l.resolve(c)
	if err != nil {
		return nil, err
	}

	return &l.slots[idx].value, nil
}

// Swap exchanges the values of two distinct nodes. Links are untouched, so
// all cursors remain valid and keep pointing at their (now re-valued) nodes.
func (l *List[T]) Swap(a, b Cursor[T]) error {
	ai, err := l.resolve(a)
	if err != nil {
		return err
	}
	bi, err := l.resolve(b)
	if err != nil {
		return err
	}
	if ai == bi {
		return ErrSameCursor
	}

	l.slots[ai].value, l.slots[bi].value = l.slots[bi].value, l.slots[ai].value

	return nil
}

// Front returns a cursor to the first node; ok is false on an empty list.
func (l *List[T]) Front() (Cursor[T], bool) {
	if l.head == none {
		return Cursor[T]{}, false
	}

	return l.cursorTo(l.head), true
}

// Back returns a cursor to the last node; ok is false on an empty list.
func (l *List[T]) Back() (Cursor[T], bool) {
	if l.tail == none {
		return Cursor[T]{}, false
	}

	return l.cursorTo(l.tail), true
}

// Next returns the cursor after c; ok is false at the tail or for a stale c.
func (l *List[T]) Next(c Cursor[T]) (Cursor[T], bool) {
	idx, err := l.resolve(c)
	if err != nil || l.slots[idx].next == none {
		return Cursor[T]{}, false
	}

	return l.cursorTo(l.slots[idx].next), true
}

// Prev returns the cursor before c; ok is false at the head or for a stale c.
func (l *List[T]) Prev(c Cursor[T]) (Cursor[T], bool) {
	idx, err := l.resolve(c)
	if err != nil || l.slots[idx].prev == none {
		return Cursor[T]{}, false
	}

	return l.cursorTo(l.slots[idx].prev), true
}

// Values walks the list front to back and returns the values as a slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for idx := l.head; idx != none; idx = l.slots[idx].next {
		out = append(out, l.slots[idx].value)
	}

	return out
}

// CheckValid walks the whole structure and reports the first inconsistency:
// head/prev and tail/next termination, prev/next symmetry, no cycles, and
// the live-slot count matching Len. Returns "" when the list is sound.
// Intended for tests and debugging; it costs a full O(n) walk.
func (l *List[T]) CheckValid() string {
	if l.head == none || l.tail == none {
		if l.head != l.tail {
			return "one of head/tail is none but not the other"
		}
		if l.size != 0 {
			return "empty links but non-zero size"
		}

		return ""
	}

	if l.slots[l.head].prev != none {
		return "head has a predecessor"
	}
	if l.slots[l.tail].next != none {
		return "tail has a successor"
	}

	seen := make(map[int]bool, l.size)
	for idx := l.head; idx != none; idx = l.slots[idx].next {
		if seen[idx] {
			return "cycle detected"
		}
		seen[idx] = true

		if next := l.slots[idx].next; next != none && l.slots[next].prev != idx {
			return "prev/next asymmetry"
		}
	}

	if len(seen) != l.size {
		return "walk length disagrees with Len"
	}

	return ""
}
