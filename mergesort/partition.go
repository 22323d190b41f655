package mergesort

import (
	"fmt"

	"github.com/katalvlaran/lvlalgo/order"
)

// rangePartition describes a split of an index range into consecutive
// parts. N parts are recorded as N+1 endpoints: part i is
// [endpoints[i], endpoints[i+1]). Parts may be empty; endpoints ascend.
type rangePartition struct {
	endpoints []int
}

// partitionFromEndpoints validates and wraps an endpoint list.
func partitionFromEndpoints(endpoints []int) rangePartition {
	if len(endpoints) < 2 {
		panic("mergesort: a partition needs at least one part")
	}
	for i := 1; i < len(endpoints); i++ {
		if endpoints[i] < endpoints[i-1] {
			panic(fmt.Sprintf("mergesort: endpoints not ascending at %d", i))
		}
	}

	return rangePartition{endpoints: endpoints}
}

// partitionFromSizes builds a partition from consecutive part sizes,
// starting at start.
func partitionFromSizes(sizes []int, start int) rangePartition {
	endpoints := make([]int, 0, len(sizes)+1)
	endpoints = append(endpoints, start)

	at := start
	for _, size := range sizes {
		at += size
		endpoints = append(endpoints, at)
	}

	return rangePartition{endpoints: endpoints}
}

// evenPartition splits [start, end) into parts equal pieces; the remainder
// of an uneven division goes to the last part.
func evenPartition(start, end, parts int) rangePartition {
	size := (end - start) / parts

	endpoints := make([]int, 0, parts+1)
	at := start
	for i := 0; i < parts; i++ {
		endpoints = append(endpoints, at)
		at += size
	}
	endpoints = append(endpoints, end)

	return partitionFromEndpoints(endpoints)
}

// parts returns the number of parts.
func (p rangePartition) parts() int { return len(p.endpoints) - 1 }

// start returns part i's first index.
func (p rangePartition) start(i int) int { return p.endpoints[i] }

// end returns part i's exclusive upper index.
func (p rangePartition) end(i int) int { return p.endpoints[i+1] }

// length returns part i's size.
func (p rangePartition) length(i int) int { return p.end(i) - p.start(i) }

// totalLen returns the size of the whole covered range.
func (p rangePartition) totalLen() int {
	return p.endpoints[len(p.endpoints)-1] - p.endpoints[0]
}

// partitionByPivots cuts the sorted window s[start:end] at each pivot:
// part i holds the elements strictly less than pivots[i], the final part
// everything else. Leftmost binary search keeps equal elements together on
// the high side, which preserves stability across the regrouping.
func partitionByPivots[T any](s []T, start, end int, cmp order.Comparator[T], pivots []T) rangePartition {
	endpoints := make([]int, 0, len(pivots)+2)
	endpoints = append(endpoints, start)

	at := start
	for _, pivot := range pivots {
		at += searchLeftmost(s[at:end], cmp, pivot)
		endpoints = append(endpoints, at)
	}
	endpoints = append(endpoints, end)

	return partitionFromEndpoints(endpoints)
}
