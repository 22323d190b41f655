package mergesort

import (
	"sort"

	"github.com/katalvlaran/lvlalgo/minheap"
	"github.com/katalvlaran/lvlalgo/order"
)

// MergeFunc merges the sorted sequences a and b, calling emit(i, v) for
// each output element in order; i is the output position. On a tie the
// element from a is emitted first, which is what makes every sort built on
// this merge stable.
//
// Note the tie handling: when a[i] == b[j] only a[i] is consumed, because a
// may still hold further elements equal to b[j] that must precede it.
func MergeFunc[T any](a, b []T, cmp order.Comparator[T], emit func(i int, v T)) {
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		if cmp(a[i], b[j]) <= 0 {
			emit(i+j, a[i])
			i++
		} else {
			emit(i+j, b[j])
			j++
		}
	}

	for ; i < len(a); i++ {
		emit(i+j, a[i])
	}
	for ; j < len(b); j++ {
		emit(i+j, b[j])
	}
}

// Merge stably merges sorted a and b into dst. dst must not alias either
// input and must hold len(a)+len(b) elements.
func Merge[T any](dst, a, b []T, cmp order.Comparator[T]) error {
	if cmp == nil {
		return ErrNilComparator
	}
	if len(dst) < len(a)+len(b) {
		return ErrShortDst
	}

	MergeFunc(a, b, cmp, func(i int, v T) { dst[i] = v })

	return nil
}

// seqHead is one sequence's front element inside the k-way merge heap.
type seqHead[T any] struct {
	value T
	seq   int
}

// MergeMany stably merges the sorted sequences seqs into dst using a
// min-heap over the sequence heads. The heap order breaks value ties by
// sequence index, so elements from earlier sequences come out first; the
// heap itself need not be stable for the merge to be.
func MergeMany[T any](dst []T, seqs [][]T, cmp order.Comparator[T]) error {
	if cmp == nil {
		return ErrNilComparator
	}

	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	if len(dst) < total {
		return ErrShortDst
	}

	mergeManyHeap(dst, seqs, cmp)

	return nil
}

// mergeManyHeap is the unvalidated core of MergeMany, shared with
// ConcurrentSort's final phase.
func mergeManyHeap[T any](dst []T, seqs [][]T, cmp order.Comparator[T]) {
	headCmp := func(a, b seqHead[T]) int {
		if c := cmp(a.value, b.value); c != 0 {
			return c
		}

		return a.seq - b.seq
	}

	h := minheap.New(order.Comparator[seqHead[T]](headCmp))

	// next[k] is the index of the next unconsumed element of seqs[k].
	next := make([]int, len(seqs))
	for k, s := range seqs {
		if len(s) > 0 {
			h.Push(seqHead[T]{value: s[0], seq: k})
			next[k] = 1
		}
	}

	for out := 0; ; out++ {
		head, ok := h.PopMin()
		if !ok {
			return
		}

		dst[out] = head.value

		if i := next[head.seq]; i < len(seqs[head.seq]) {
			h.Push(seqHead[T]{value: seqs[head.seq][i], seq: head.seq})
			next[head.seq] = i + 1
		}
	}
}

// mergeManyNaive selects each output element by scanning every sequence
// head, preferring the earliest sequence on ties. O(k) per element; kept as
// the oracle the heap merge is tested against.
func mergeManyNaive[T any](dst []T, seqs [][]T, cmp order.Comparator[T]) {
	next := make([]int, len(seqs))

	for out := 0; ; out++ {
		minSeq := -1
		for k, s := range seqs {
			if next[k] >= len(s) {
				continue
			}
			// Strict less keeps the earliest sequence on equal heads.
			if minSeq < 0 || cmp(s[next[k]], seqs[minSeq][next[minSeq]]) < 0 {
				minSeq = k
			}
		}

		if minSeq < 0 {
			return
		}

		dst[out] = seqs[minSeq][next[minSeq]]
		next[minSeq]++
	}
}

// searchLeftmost returns the smallest index at which target could be
// inserted into sorted s without breaking the order: every element before
// it is strictly less than target.
func searchLeftmost[T any](s []T, cmp order.Comparator[T], target T) int {
	return sort.Search(len(s), func(i int) bool { return cmp(s[i], target) >= 0 })
}
