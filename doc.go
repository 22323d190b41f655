// Package lvlalgo is your in-memory playground for classic algorithms and
// data structures: sorting schemes, lazy evaluation, functional fixed
// points, and generic graph traversal, all written against Go generics.
//
// 🚀 What is lvlalgo?
//
//	A collection of small, independent, self-contained packages:
//		• order:      the shared Comparator type with By / Reverse / Then
//		              combinators
//		• quicksort:  Lomuto / Hoare / three-way partitions, pivot selection,
//		              in-place, stable, lazy (kth-element) and
//		              container-agnostic quicksorts
//		• mergesort:  stable two-way & k-way merges, in-place merge sort,
//		              and a parallel sample-sort style ConcurrentSort
//		• minheap:    comparator-driven generic binary min-heap
//		• arenalist:  doubly linked list on an arena slot table with
//		              copyable, stale-safe cursors
//		• lazy:       memoization caches, lazy fixed points, Y combinator
//		• dag:        generic DAG traversal + memoized shortest path
//		• matrix2d:   row-major generic dense matrix
//
// ✨ Why choose lvlalgo?
//
//   - Beginner-friendly – minimal API per package, clear, intuitive naming
//   - Comparator-first – every algorithm takes an order.Comparator, so the
//     same code sorts ints, structs, or strings-by-length
//   - Pure Go – no cgo, no hidden deps
//   - Independent – every package stands alone; use one, ignore the rest
//
// Each subpackage carries its own doc.go with complexity notes, option
// descriptions and sentinel errors.
//
//	go get github.com/katalvlaran/lvlalgo
package lvlalgo
