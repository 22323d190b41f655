package mergesort_test

import (
	"context"
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalgo/mergesort"
	"github.com/katalvlaran/lvlalgo/order"
)

func TestConcurrentSort_Randomized(t *testing.T) {
	r := rand.New(rand.NewSource(123_456))
	cmp := order.Natural[int]()
	ctx := context.Background()

	for round := 0; round < 100; round++ {
		n := r.Intn(100_000)
		max := 1 + r.Intn(10_000)
		parallelism := 1 + r.Intn(15)

		s := make([]int, n)
		for i := range s {
			s[i] = r.Intn(max)
		}
		want := slices.Clone(s)
		slices.Sort(want)

		err := mergesort.ConcurrentSort(ctx, s, cmp, mergesort.WithParallelism(parallelism))
		require.NoError(t, err)
		require.Equal(t, want, s, "parallelism=%d n=%d", parallelism, n)
	}
}

func TestConcurrentSort_Stability(t *testing.T) {
	r := rand.New(rand.NewSource(123_456))
	byLen := order.By(func(s string) int { return len(s) })
	ctx := context.Background()

	for round := 0; round < 50; round++ {
		parallelism := 1 + r.Intn(15)

		// Larger than the sequential cutoff so all phases actually run.
		const target = 10_000
		s := make([]string, 0, target)
		for len(s) < target {
			s = append(s, randomWords(r)...)
		}
		s = s[:target]

		want := slices.Clone(s)
		sort.SliceStable(want, func(i, j int) bool { return len(want[i]) < len(want[j]) })

		err := mergesort.ConcurrentSort(ctx, s, byLen, mergesort.WithParallelism(parallelism))
		require.NoError(t, err)
		require.Equal(t, want, s, "parallelism=%d", parallelism)
	}
}

func TestConcurrentSort_MatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	cmp := order.Natural[int]()
	ctx := context.Background()

	base := make([]int, 50_000)
	for i := range base {
		base[i] = r.Intn(1_000)
	}

	want := slices.Clone(base)
	mergesort.Sort(want, cmp)

	for _, p := range []int{1, 2, 3, 4, 8, 16} {
		s := slices.Clone(base)

		require.NoError(t, mergesort.ConcurrentSort(ctx, s, cmp, mergesort.WithParallelism(p)))
		require.Equal(t, want, s, "parallelism=%d", p)
	}
}

func TestConcurrentSort_DefaultParallelism(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	s := make([]int, 30_000)
	for i := range s {
		s[i] = r.Intn(500)
	}
	want := slices.Clone(s)
	slices.Sort(want)

	require.NoError(t, mergesort.ConcurrentSort(context.Background(), s, order.Natural[int]()))
	assert.Equal(t, want, s)
}

func TestConcurrentSort_Edges(t *testing.T) {
	ctx := context.Background()
	cmp := order.Natural[int]()

	require.NoError(t, mergesort.ConcurrentSort(ctx, nil, cmp))

	one := []int{1}
	require.NoError(t, mergesort.ConcurrentSort(ctx, one, cmp, mergesort.WithParallelism(8)))
	assert.Equal(t, []int{1}, one)

	// Parallelism far above len falls back to the sequential sort.
	small := []int{3, 1, 2}
	require.NoError(t, mergesort.ConcurrentSort(ctx, small, cmp, mergesort.WithParallelism(16)))
	assert.Equal(t, []int{1, 2, 3}, small)
}

func TestConcurrentSort_NilComparator(t *testing.T) {
	err := mergesort.ConcurrentSort(context.Background(), []int{2, 1}, nil)
	assert.ErrorIs(t, err, mergesort.ErrNilComparator)
}

func TestConcurrentSort_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Big enough to take the concurrent path.
	s := make([]int, 100_000)
	for i := range s {
		s[i] = len(s) - i
	}

	err := mergesort.ConcurrentSort(ctx, s, order.Natural[int](), mergesort.WithParallelism(4))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithParallelism_PanicsBelowOne(t *testing.T) {
	assert.Panics(t, func() { mergesort.WithParallelism(0) })
}
