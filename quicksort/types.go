package quicksort

import "errors"

// Sentinel errors shared across the package.
var (
	// ErrShortSlice indicates a partition call on fewer than 3 elements;
	// such ranges are handled directly by the sorts, never partitioned.
	ErrShortSlice = errors.New("quicksort: slice needs at least 3 elements to partition")

	// ErrIndexRange indicates a pivot or query index outside the slice.
	ErrIndexRange = errors.New("quicksort: index out of range")
)
