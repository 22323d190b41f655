package mergesort_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalgo/mergesort"
	"github.com/katalvlaran/lvlalgo/order"
)

func TestMerge_Basic(t *testing.T) {
	cmp := order.Natural[int]()

	a := []int{1, 3, 5}
	b := []int{2, 4, 6}
	dst := make([]int, 6)

	require.NoError(t, mergesort.Merge(dst, a, b, cmp))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, dst)
}

func TestMerge_TiesFromFirstInput(t *testing.T) {
	type tagged struct {
		key  int
		from string
	}
	byKey := order.By(func(v tagged) int { return v.key })

	a := []tagged{{1, "a"}, {2, "a"}}
	b := []tagged{{1, "b"}, {2, "b"}}
	dst := make([]tagged, 4)

	require.NoError(t, mergesort.Merge(dst, a, b, byKey))
	assert.Equal(t, []tagged{{1, "a"}, {1, "b"}, {2, "a"}, {2, "b"}}, dst)
}

func TestMerge_EmptyInputs(t *testing.T) {
	cmp := order.Natural[int]()

	dst := make([]int, 3)
	require.NoError(t, mergesort.Merge(dst, nil, []int{1, 2, 3}, cmp))
	assert.Equal(t, []int{1, 2, 3}, dst)

	require.NoError(t, mergesort.Merge(dst, []int{4, 5, 6}, nil, cmp))
	assert.Equal(t, []int{4, 5, 6}, dst)

	require.NoError(t, mergesort.Merge(nil, nil, nil, cmp))
}

func TestMerge_Errors(t *testing.T) {
	a := []int{1}
	b := []int{2}

	assert.ErrorIs(t, mergesort.Merge(make([]int, 1), a, b, order.Natural[int]()), mergesort.ErrShortDst)
	assert.ErrorIs(t, mergesort.Merge(make([]int, 2), a, b, nil), mergesort.ErrNilComparator)
}

func TestMergeMany_AgainstNaive(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	cmp := order.Natural[int]()

	for round := 0; round < 500; round++ {
		seqCount := 2 + r.Intn(6)
		seqs := make([][]int, seqCount)
		total := 0
		for k := range seqs {
			seq := make([]int, r.Intn(50))
			for i := range seq {
				seq[i] = r.Intn(20)
			}
			slices.Sort(seq)
			seqs[k] = seq
			total += len(seq)
		}

		got := make([]int, total)
		want := make([]int, total)

		require.NoError(t, mergesort.MergeMany(got, seqs, cmp))
		mergesort.MergeManyNaive(want, seqs, cmp)

		require.Equal(t, want, got)
		require.True(t, slices.IsSorted(got))
	}
}

func TestMergeMany_StableAcrossSequences(t *testing.T) {
	type tagged struct {
		key int
		seq int
	}
	byKey := order.By(func(v tagged) int { return v.key })

	seqs := [][]tagged{
		{{1, 0}, {5, 0}},
		{{1, 1}, {5, 1}},
		{{1, 2}, {5, 2}},
	}

	dst := make([]tagged, 6)
	require.NoError(t, mergesort.MergeMany(dst, seqs, byKey))

	assert.Equal(t, []tagged{{1, 0}, {1, 1}, {1, 2}, {5, 0}, {5, 1}, {5, 2}}, dst)
}

func TestMergeMany_Errors(t *testing.T) {
	seqs := [][]int{{1}, {2}}

	assert.ErrorIs(t, mergesort.MergeMany(make([]int, 1), seqs, order.Natural[int]()), mergesort.ErrShortDst)
	assert.ErrorIs(t, mergesort.MergeMany(make([]int, 2), seqs, nil), mergesort.ErrNilComparator)
}

func TestSearchLeftmost(t *testing.T) {
	cmp := order.Natural[int]()
	s := []int{1, 2, 2, 2, 3, 4, 5, 6, 7, 8, 9}

	assert.Equal(t, 1, mergesort.SearchLeftmost(s, cmp, 2))
	assert.Equal(t, 4, mergesort.SearchLeftmost(s, cmp, 3))
	assert.Equal(t, 10, mergesort.SearchLeftmost(s, cmp, 9))
	assert.Equal(t, 0, mergesort.SearchLeftmost(s, cmp, 0))
	assert.Equal(t, 11, mergesort.SearchLeftmost(s, cmp, 10))
}

func TestMergeAdjacent(t *testing.T) {
	cmp := order.Natural[int]()

	s := []int{2, 4, 6, 1, 3, 5}
	mergesort.MergeAdjacent(s, 3, cmp)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, s)

	// Degenerate splits are no-ops.
	s = []int{3, 1, 2}
	mergesort.MergeAdjacent(s, 0, cmp)
	assert.Equal(t, []int{3, 1, 2}, s)
	mergesort.MergeAdjacent(s, 3, cmp)
	assert.Equal(t, []int{3, 1, 2}, s)
}

func TestMergeAdjacentTrimmed(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	cmp := order.Natural[int]()

	for round := 0; round < 500; round++ {
		n := 2 + r.Intn(200)
		s := make([]int, n)
		for i := range s {
			s[i] = r.Intn(50)
		}

		mid := r.Intn(n + 1)
		slices.Sort(s[:mid])
		slices.Sort(s[mid:])

		want := slices.Clone(s)
		slices.Sort(want)

		mergesort.MergeAdjacentTrimmed(s, mid, cmp)

		require.Equal(t, want, s)
	}
}

func TestMergeAdjacentTrimmed_AlreadyOrdered(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}

	mergesort.MergeAdjacentTrimmed(s, 3, order.Natural[int]())

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, s)
}
