package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supermatrix/sparse"
)

func TestCompressed(t *testing.T) {
	rng := NewRNG(4711)

	c := rng.Compressed(40, 30, 0.2)
	require.NoError(t, c.Validate())
	assert.Equal(t, sparse.Column, c.Format)
	assert.Greater(t, c.Nonzeros, 0)
	assert.Less(t, c.Nonzeros, 40*30)

	for j := 0; j < c.Columns; j++ {
		for k := c.Offsets[j] + 1; k < c.Offsets[j+1]; k++ {
			assert.Less(t, c.Indices[k-1], c.Indices[k])
		}
	}
	for _, v := range c.Values {
		assert.NotZero(t, v)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestCompressed_Deterministic(t *testing.T) {
	rng := NewRNG(42)
	a := rng.Compressed(20, 20, 0.3)

	rng.Reset()
	b := rng.Compressed(20, 20, 0.3)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), rng.Seed())
}

func TestCompressed_Extremes(t *testing.T) {
	rng := NewRNG(1)

	empty := rng.Compressed(5, 4, 0)
	require.NoError(t, empty.Validate())
	assert.Zero(t, empty.Nonzeros)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, empty.Offsets)

	full := rng.Compressed(3, 2, 1)
	require.NoError(t, full.Validate())
	assert.Equal(t, 6, full.Nonzeros)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, full.Indices)
}

func TestBanded(t *testing.T) {
	c := Banded(4, 1)
	require.NoError(t, c.Validate())

	assert.Equal(t, 10, c.Nonzeros)
	assert.Equal(t, []int{0, 2, 5, 8, 10}, c.Offsets)
	assert.Equal(t, []int{0, 1, 0, 1, 2, 1, 2, 3, 2, 3}, c.Indices)

	v, err := c.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, float64(1+2+1*4), v)
}

func TestEntries(t *testing.T) {
	c := NewRNG(7).Compressed(6, 9, 0.4)

	entries := Entries(c)
	assert.Len(t, entries, c.Nonzeros)
	assert.Equal(t, entries, Entries(c.Transpose().Transpose()))

	// A row-major copy lists the same elements.
	row := c.Transpose()
	row.Format = sparse.Row
	row.Rows, row.Columns = c.Rows, c.Columns
	assert.Equal(t, entries, Entries(row))
}
