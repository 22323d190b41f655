package matrix2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalgo/matrix2d"
)

func TestMatrix_NewZeroed(t *testing.T) {
	m := matrix2d.New[int](2, 3)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			v, err := m.At(r, c)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}
}

func TestMatrix_NewFilled(t *testing.T) {
	m := matrix2d.NewFilled(2, 2, "x")

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			v, err := m.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, "x", v)
		}
	}
}

func TestMatrix_SetAt(t *testing.T) {
	m := matrix2d.New[int](3, 3)

	require.NoError(t, m.Set(1, 2, 42))
	require.NoError(t, m.Set(2, 0, 7))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = m.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	// Neighbouring cells stay untouched.
	v, err = m.At(1, 1)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestMatrix_Bounds(t *testing.T) {
	m := matrix2d.New[int](2, 2)

	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}}
	for _, rc := range cases {
		_, err := m.At(rc[0], rc[1])
		assert.ErrorIs(t, err, matrix2d.ErrIndexRange)

		assert.ErrorIs(t, m.Set(rc[0], rc[1], 1), matrix2d.ErrIndexRange)
	}

	_, err := m.Row(2)
	assert.ErrorIs(t, err, matrix2d.ErrIndexRange)

	_, err = m.Column(-1)
	assert.ErrorIs(t, err, matrix2d.ErrIndexRange)
}

func TestMatrix_RowIsView(t *testing.T) {
	m := matrix2d.New[int](2, 3)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Len(t, row, 3)

	row[1] = 99

	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 99, v)

	// The view must not be appendable into the next row.
	assert.Equal(t, 3, cap(row))
}

func TestMatrix_ColumnIsCopy(t *testing.T) {
	m := matrix2d.New[int](3, 2)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 1, 2))
	require.NoError(t, m.Set(2, 1, 3))

	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, col)

	col[0] = 100
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestMatrix_ZeroDimensions(t *testing.T) {
	m := matrix2d.New[int](0, 5)

	assert.Zero(t, m.Rows())
	_, err := m.At(0, 0)
	assert.ErrorIs(t, err, matrix2d.ErrIndexRange)
}

func TestMatrix_NegativeDimensionsPanics(t *testing.T) {
	assert.Panics(t, func() { matrix2d.New[int](-1, 2) })
	assert.Panics(t, func() { matrix2d.New[int](2, -1) })
}
