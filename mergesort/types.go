package mergesort

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors shared across the package.
var (
	// ErrShortDst indicates a merge destination too small for its inputs.
	ErrShortDst = errors.New("mergesort: destination shorter than combined inputs")

	// ErrNilComparator indicates a nil comparator.
	ErrNilComparator = errors.New("mergesort: comparator must not be nil")
)

// concurrentCutoff is the per-worker element count below which
// ConcurrentSort falls back to the sequential Sort: with fewer elements the
// coordination overhead dominates the work.
const concurrentCutoff = 200

// Options configures ConcurrentSort.
type Options struct {
	// Parallelism is the number of worker goroutines (and scratch buffers).
	Parallelism int
}

// DefaultOptions runs one worker per available CPU.
func DefaultOptions() Options {
	return Options{Parallelism: runtime.GOMAXPROCS(0)}
}

// Option overrides one field of Options.
type Option func(*Options)

// WithParallelism fixes the worker count. Panics if p < 1.
func WithParallelism(p int) Option {
	if p < 1 {
		panic(fmt.Sprintf("mergesort: parallelism must be >= 1, got %d", p))
	}

	return func(o *Options) { o.Parallelism = p }
}
