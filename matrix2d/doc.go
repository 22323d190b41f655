// Package matrix2d provides a dense, row-major 2-D matrix over a single
// backing slice.
//
// What:
//
//   - Matrix[T] stores rows*cols elements contiguously; At/Set address cells
//     by (row, col) with bounds checking, Row returns a live row view, and
//     Column copies a column out.
//
// Why:
//
//   - A [][]T of separately allocated rows scatters memory and permits ragged
//     shapes; one flat slice keeps the matrix rectangular by construction and
//     cache-friendly to scan.
//
// Complexity: At, Set, Row are O(1); Column is O(rows).
//
// Errors (sentinel): ErrIndexRange for any out-of-bounds coordinate.
package matrix2d
