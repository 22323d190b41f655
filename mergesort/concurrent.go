package mergesort

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlalgo/order"
)

// ConcurrentSort sorts s in place under cmp using opts.Parallelism worker
// goroutines. Stable, and for any parallelism the result is identical to
// Sort. Small inputs and Parallelism 1 run sequentially.
//
// The algorithm is a sample-sort-shaped parallel merge sort:
//
//  1. split s evenly into P parts, each sorted by its own worker;
//  2. sample P-1 pivots from the sorted first part and cut every part into
//     P subparts at those pivots (leftmost binary search);
//  3. worker k copies subpart k of every part into its scratch buffer;
//  4. worker k k-way merges its scratch buffer back into its destination
//     window of s. Window sizes follow from the cuts, so the windows tile
//     s exactly.
//
// Cancelling ctx aborts between phases and returns the context error; s is
// then in an unspecified permutation of its input.
func ConcurrentSort[T any](ctx context.Context, s []T, cmp order.Comparator[T], opts ...Option) error {
	if cmp == nil {
		return ErrNilComparator
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := o.Parallelism

	if len(s) <= 1 {
		return nil
	}

	if p == 1 || len(s) <= p*concurrentCutoff {
		Sort(s, cmp)

		return nil
	}

	// Phase 1: sort each part concurrently.
	outer := evenPartition(0, len(s), p)

	g, gctx := errgroup.WithContext(ctx)
	for k := 0; k < p; k++ {
		part := s[outer.start(k):outer.end(k)]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			Sort(part, cmp)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Phase 2: sample P-1 pivots from the first part, then cut every part
	// at the pivots. Pivot positions are the even-split endpoints of the
	// first part, so the cuts roughly balance the merge windows.
	firstPart := s[outer.start(0):outer.end(0)]
	firstCuts := evenPartition(0, len(firstPart), p)

	pivots := make([]T, p-1)
	for i := range pivots {
		pivots[i] = firstPart[firstCuts.start(i + 1)]
	}

	// subParts[i] cuts part i; subpart (i, k) feeds worker k's merge.
	subParts := make([]rangePartition, p)
	subParts[0] = firstCuts
	for i := 1; i < p; i++ {
		subParts[i] = partitionByPivots(s, outer.start(i), outer.end(i), cmp, pivots)
	}

	// Scratch layout: worker k's buffer concatenates subpart (i, k) for
	// every part i; its destination window in s follows from the totals.
	scratchParts := make([]rangePartition, p)
	for k := 0; k < p; k++ {
		sizes := make([]int, p)
		for i := 0; i < p; i++ {
			sizes[i] = subParts[i].length(k)
		}
		scratchParts[k] = partitionFromSizes(sizes, 0)
	}

	dstSizes := make([]int, p)
	for k := 0; k < p; k++ {
		dstSizes[k] = scratchParts[k].totalLen()
	}
	dst := partitionFromSizes(dstSizes, 0)

	// Phase 3: gather each worker's subpart column into its scratch buffer,
	// in parallel. Reads are disjoint from later writes because the merge
	// phase only starts after every copy finished.
	if err := ctx.Err(); err != nil {
		return err
	}

	scratch := make([][]T, p)
	g, gctx = errgroup.WithContext(ctx)
	for k := 0; k < p; k++ {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			buf := make([]T, scratchParts[k].totalLen())
			for i := 0; i < p; i++ {
				copy(buf[scratchParts[k].start(i):scratchParts[k].end(i)],
					s[subParts[i].start(k):subParts[i].end(k)])
			}
			scratch[k] = buf

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Phase 4: each worker k-way merges its scratch buffer into its window
	// of s. Scratch subparts are ordered by part index, and the heap merge
	// breaks ties by sequence index, so stability carries through.
	g, gctx = errgroup.WithContext(ctx)
	for k := 0; k < p; k++ {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			srcs := make([][]T, p)
			for i := 0; i < p; i++ {
				srcs[i] = scratch[k][scratchParts[k].start(i):scratchParts[k].end(i)]
			}
			mergeManyHeap(s[dst.start(k):dst.end(k)], srcs, cmp)

			return nil
		})
	}

	return g.Wait()
}
