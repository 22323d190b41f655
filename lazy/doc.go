// Package lazy provides memoization caches, fixed-point helpers for writing
// recursive functions as plain values, and a Y combinator.
//
// What:
//
//   - Cache[K, V] is the pluggable store behind memoization; MapCache works
//     for any comparable key, SliceCache is a dense table for small integer
//     keys, and KeyMappedCache adapts a cache to a different key type.
//   - Memoized wraps a pure function so repeated calls with the same
//     argument hit the cache.
//   - RecFunc and Fix let recursive logic be written as a non-recursive
//     value: the recursion hook arrives as a parameter. FixMemo threads a
//     cache through the recursion, turning naive exponential definitions
//     (fibonacci) into linear ones.
//   - Y builds the fixed point without any named self-reference at all, via
//     a self-applying function type.
//
// Why:
//
//   - Separating "what the function computes" from "how results are stored"
//     lets the same definition run uncached, map-cached, or table-cached.
//   - Fixed-point style keeps the recursive core testable and composable;
//     dynamic-programming users (see the dag package) inject their own
//     caches into someone else's recursion.
//
// Complexity: cache hits are O(1); misses cost the wrapped computation.
//
// Errors: none. All operations are total; SliceCache panics on negative
// keys, which are a caller bug rather than a runtime condition.
package lazy
