package matrix2d

import (
	"errors"
	"fmt"
)

// ErrIndexRange indicates a row or column outside the matrix bounds.
var ErrIndexRange = errors.New("matrix2d: index out of range")

// Matrix is a dense row-major grid of T. The zero value is an empty 0x0
// matrix; construct sized matrices with New or NewFilled.
type Matrix[T any] struct {
	data []T
	rows int
	cols int
}

// New returns a rows x cols matrix of zero values.
// Panics if either dimension is negative.
func New[T any](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix2d: negative dimensions %dx%d", rows, cols))
	}

	return &Matrix[T]{data: make([]T, rows*cols), rows: rows, cols: cols}
}

// NewFilled returns a rows x cols matrix with every cell set to fill.
func NewFilled[T any](rows, cols int, fill T) *Matrix[T] {
	m := New[T](rows, cols)
	for i := range m.data {
		m.data[i] = fill
	}

	return m
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// index maps (row, col) to the flat offset, validating bounds.
func (m *Matrix[T]) index(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexRange, row, col, m.rows, m.cols)
	}

	return row*m.cols + col, nil
}

// At returns the value at (row, col).
func (m *Matrix[T]) At(row, col int) (T, error) {
	i, err := m.index(row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[i], nil
}

// Set writes value at (row, col).
func (m *Matrix[T]) Set(row, col int, value T) error {
	i, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[i] = value

	return nil
}

// Row returns the row as a sub-slice of the backing array. Writes through
// the returned slice are visible in the matrix.
func (m *Matrix[T]) Row(row int) ([]T, error) {
	if row < 0 || row >= m.rows {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndexRange, row, m.rows)
	}
	start := row * m.cols

	return m.data[start : start+m.cols : start+m.cols], nil
}

// Column copies the column into a fresh slice.
func (m *Matrix[T]) Column(col int) ([]T, error) {
	if col < 0 || col >= m.cols {
		return nil, fmt.Errorf("%w: col %d of %d", ErrIndexRange, col, m.cols)
	}

	out := make([]T, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.data[r*m.cols+col]
	}

	return out, nil
}
