package quicksort

import (
	"github.com/katalvlaran/lvlalgo/arenalist"
	"github.com/katalvlaran/lvlalgo/order"
)

// Container is the surface SortContainer needs: an indexed sequence with
// element access, swapping, and a container-appropriate pivot strategy.
// Positions run 0..Len()-1; adapters own the mapping from positions to
// whatever the underlying structure addresses by.
type Container[T any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at position i.
	At(i int) T
	// Swap exchanges the elements at positions i and j.
	Swap(i, j int)
	// Pivot picks a pivot position inside [lo, hi). Strategies differ per
	// container: random access affords median-of-three, sequential
	// containers settle for the range start.
	Pivot(lo, hi int, cmp order.Comparator[T]) int
}

// SortContainer runs the three-way quicksort over any Container.
func SortContainer[T any](c Container[T], cmp order.Comparator[T]) {
	sortRange(c, cmp, 0, c.Len())
}

// sortRange sorts positions [lo, hi) of c.
func sortRange[T any](c Container[T], cmp order.Comparator[T], lo, hi int) {
	n := hi - lo

	if n <= 1 {
		return
	}

	if n == 2 {
		if cmp(c.At(lo), c.At(lo+1)) > 0 {
			c.Swap(lo, lo+1)
		}

		return
	}

	cutLo, cutHi := fatPartitionContainer(c, cmp, lo, hi, c.Pivot(lo, hi, cmp))

	sortRange(c, cmp, lo, cutLo)
	sortRange(c, cmp, cutHi, hi)
}

// fatPartitionContainer is the fat partition of partition.go expressed over
// container positions: afterwards [lo:cutLo) < pivot, [cutLo:cutHi) ==
// pivot, [cutHi:hi) > pivot.
func fatPartitionContainer[T any](c Container[T], cmp order.Comparator[T], lo, hi, pivotPos int) (int, int) {
	pivot := pivotPos
	left, eq, right := lo, lo, hi-1

	for eq <= right {
		if eq == pivot {
			eq++

			continue
		}

		switch v := cmp(c.At(eq), c.At(pivot)); {
		case v < 0:
			if left != eq {
				c.Swap(left, eq)
				if left == pivot {
					pivot = eq
				}
			}
			left++
			eq++
		case v == 0:
			eq++
		default:
			if eq != right {
				c.Swap(eq, right)
				if right == pivot {
					pivot = eq
				}
			}
			right--
		}
	}

	return left, eq
}

// SliceContainer adapts a []T. Positions are slice indices; the pivot
// strategy is median-of-three since indexing is free.
type SliceContainer[T any] struct {
	s []T
}

// NewSliceContainer wraps s; sorting the container reorders s in place.
func NewSliceContainer[T any](s []T) *SliceContainer[T] {
	return &SliceContainer[T]{s: s}
}

// Len implements Container.
func (c *SliceContainer[T]) Len() int { return len(c.s) }

// At implements Container.
func (c *SliceContainer[T]) At(i int) T { return c.s[i] }

// Swap implements Container.
func (c *SliceContainer[T]) Swap(i, j int) { c.s[i], c.s[j] = c.s[j], c.s[i] }

// Pivot implements Container with median-of-three over the window.
func (c *SliceContainer[T]) Pivot(lo, hi int, cmp order.Comparator[T]) int {
	return lo + PivotMedianOfThree(c.s[lo:hi], cmp)
}

// ListContainer adapts an arenalist.List. It walks the list once at
// construction to build a position->cursor table; Swap exchanges values
// through cursors, so the table stays valid for the whole sort.
type ListContainer[T any] struct {
	list    *arenalist.List[T]
	cursors []arenalist.Cursor[T]
}

// NewListContainer wraps list; sorting the container reorders the list's
// values in place (links are untouched).
func NewListContainer[T any](list *arenalist.List[T]) *ListContainer[T] {
	cursors := make([]arenalist.Cursor[T], 0, list.Len())
	if c, ok := list.Front(); ok {
		for {
			cursors = append(cursors, c)

			next, ok := list.Next(c)
			if !ok {
				break
			}
			c = next
		}
	}

	return &ListContainer[T]{list: list, cursors: cursors}
}

// Len implements Container.
func (c *ListContainer[T]) Len() int { return len(c.cursors) }

// At implements Container. The cursors are known live, so resolution
// cannot fail.
func (c *ListContainer[T]) At(i int) T {
	v, err := c.list.At(c.cursors[i])
	if err != nil {
		panic("quicksort: list mutated during sort: " + err.Error())
	}

	return v
}

// Swap implements Container.
func (c *ListContainer[T]) Swap(i, j int) {
	if err := c.list.Swap(c.cursors[i], c.cursors[j]); err != nil {
		panic("quicksort: list mutated during sort: " + err.Error())
	}
}

// Pivot implements Container with the range start, the usual choice for
// linked structures where a middle lookup would cost a walk.
func (c *ListContainer[T]) Pivot(lo, _ int, _ order.Comparator[T]) int { return lo }
