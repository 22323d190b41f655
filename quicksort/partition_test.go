package quicksort_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalgo/order"
	"github.com/katalvlaran/lvlalgo/quicksort"
)

// randomInts returns a slice of 3..2000 values drawn from a random small
// domain, so duplicates are common.
func randomInts(r *rand.Rand) []int {
	size := 3 + r.Intn(1_997)
	max := 1 + r.Intn(499)

	out := make([]int, size)
	for i := range out {
		out[i] = r.Intn(max)
	}

	return out
}

// pivotFor cycles through adversarial pivot choices: the first rounds pick
// the minimum and maximum elements, the rest pick at random.
func pivotFor(round int, s []int, r *rand.Rand) int {
	switch {
	case round < 10:
		return slices.Index(s, slices.Min(s))
	case round < 20:
		return slices.Index(s, slices.Max(s))
	default:
		return r.Intn(len(s))
	}
}

// requirePermutation asserts got is a reordering of want.
func requirePermutation(t *testing.T, want, got []int) {
	t.Helper()

	w := slices.Clone(want)
	g := slices.Clone(got)
	slices.Sort(w)
	slices.Sort(g)
	require.Equal(t, w, g)
}

func TestPartitionLomuto(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	cmp := order.Natural[int]()

	for round := 0; round < 1_000; round++ {
		s := randomInts(r)
		orig := slices.Clone(s)

		p, err := quicksort.PartitionLomuto(s, cmp, pivotFor(round, s, r))
		require.NoError(t, err)
		require.Less(t, p, len(s))

		requirePermutation(t, orig, s)

		pivot := s[p]
		for _, v := range s[:p] {
			assert.Less(t, v, pivot)
		}
		for _, v := range s[p+1:] {
			assert.GreaterOrEqual(t, v, pivot)
		}
	}
}

func TestPartitionHoare(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	cmp := order.Natural[int]()

	for round := 0; round < 1_000; round++ {
		s := randomInts(r)
		orig := slices.Clone(s)

		p, err := quicksort.PartitionHoare(s, cmp, pivotFor(round, s, r))
		require.NoError(t, err)

		// Both sides must be non-empty.
		require.Greater(t, p, 0)
		require.Less(t, p, len(s))

		requirePermutation(t, orig, s)

		assert.LessOrEqual(t, slices.Max(s[:p]), slices.Min(s[p:]))
	}
}

func TestPartitionHoare_AdversarialFixtures(t *testing.T) {
	cmp := order.Natural[int]()

	// A max-element pivot at the end and a min-element pivot on sorted
	// input: naive split points empty one side for both.
	cases := []struct {
		s        []int
		pivotIdx int
	}{
		{[]int{313, 331, 910, 1368}, 3},
		{[]int{1, 2, 3}, 0},
	}
	for _, tc := range cases {
		s := tc.s

		p, err := quicksort.PartitionHoare(s, cmp, tc.pivotIdx)
		require.NoError(t, err)
		assert.Greater(t, p, 0, "left part is empty")
		assert.Less(t, p, len(s), "right part is empty")
	}
}

func TestPartitionThreeWay(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	cmp := order.Natural[int]()

	for round := 0; round < 1_000; round++ {
		s := randomInts(r)
		orig := slices.Clone(s)

		lo, hi, err := quicksort.PartitionThreeWay(s, cmp, pivotFor(round, s, r))
		require.NoError(t, err)

		requirePermutation(t, orig, s)

		// The equal run can never be empty: the pivot lives in it.
		require.Less(t, lo, hi)

		pivot := s[lo]
		for _, v := range s[:lo] {
			assert.Less(t, v, pivot)
		}
		for _, v := range s[lo:hi] {
			assert.Equal(t, pivot, v)
		}
		for _, v := range s[hi:] {
			assert.Greater(t, v, pivot)
		}
	}
}

func TestPartitionThreeWay_AllEqual(t *testing.T) {
	s := []int{7, 7, 7, 7, 7}

	lo, hi, err := quicksort.PartitionThreeWay(s, order.Natural[int](), 2)
	require.NoError(t, err)
	assert.Zero(t, lo)
	assert.Equal(t, len(s), hi)
}

func TestPartition_ArgValidation(t *testing.T) {
	cmp := order.Natural[int]()
	short := []int{2, 1}
	ok := []int{3, 1, 2}

	_, err := quicksort.PartitionLomuto(short, cmp, 0)
	assert.ErrorIs(t, err, quicksort.ErrShortSlice)

	_, err = quicksort.PartitionHoare(short, cmp, 0)
	assert.ErrorIs(t, err, quicksort.ErrShortSlice)

	_, _, err = quicksort.PartitionThreeWay(short, cmp, 0)
	assert.ErrorIs(t, err, quicksort.ErrShortSlice)

	_, err = quicksort.PartitionLomuto(ok, cmp, 3)
	assert.ErrorIs(t, err, quicksort.ErrIndexRange)

	_, err = quicksort.PartitionHoare(ok, cmp, -1)
	assert.ErrorIs(t, err, quicksort.ErrIndexRange)
}
