package matrix_test

import (
	"math"
	"testing"

	"github.com/afcarl/numerical-computing/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape rejects non-positive dimensions.
func TestNewDense_BadShape(t *testing.T) {
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		assert.ErrorIs(t, err, matrix.ErrBadShape, "shape %v", shape)
		_, err = matrix.NewDenseFrom(shape[0], shape[1], func(int, int) float64 { return 0 })
		assert.ErrorIs(t, err, matrix.ErrBadShape, "shape %v", shape)
	}
}

// TestNewDense_Zeroed starts from zeros.
func TestNewDense_Zeroed(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestNewDenseFrom fills row-major from a generator and guards bounds.
func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, func(i, j int) float64 { return float64(10*i + j) })
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	for _, idx := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		_, err = m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "index %v", idx)
	}
}

// TestDense_MinMax skips non-finite entries.
func TestDense_MinMax(t *testing.T) {
	vals := []float64{-3, math.NaN(), math.Inf(1), 7}
	m, err := matrix.NewDenseFrom(2, 2, func(i, j int) float64 { return vals[2*i+j] })
	require.NoError(t, err)

	lo, hi, ok := m.MinMax()
	assert.True(t, ok)
	assert.Equal(t, -3.0, lo)
	assert.Equal(t, 7.0, hi)

	nan, err := matrix.NewDenseFrom(1, 2, func(int, int) float64 { return math.NaN() })
	require.NoError(t, err)
	lo, hi, ok = nan.MinMax()
	assert.False(t, ok)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}
