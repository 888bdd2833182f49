package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern(t *testing.T) {
	c := sample()
	bm := c.Pattern()

	assert.Equal(t, uint64(4), bm.GetCardinality())
	// (row, col) -> col*3 + row
	for _, p := range []uint64{0, 5, 7, 8} {
		assert.True(t, bm.Contains(p), "position %d", p)
	}
	assert.False(t, bm.Contains(1))
}

func TestSamePattern(t *testing.T) {
	a := sample()
	b := a.Clone()
	b.Values = []float64{9, 9, 9, 9}
	assert.True(t, SamePattern(a, b))

	// Same entries stored row-major.
	tr := a.Transpose()
	asRow := &Compressed{Rows: 3, Columns: 3, Nonzeros: 4, Format: Row, Values: tr.Values, Indices: tr.Indices, Offsets: tr.Offsets}
	assert.True(t, SamePattern(a, asRow))

	c := a.Clone()
	c.Indices[0] = 1
	assert.False(t, SamePattern(a, c))

	d := a.Clone()
	d.Rows = 4
	assert.False(t, SamePattern(a, d))
}
