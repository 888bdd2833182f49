package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supermatrix/sparse"
	"github.com/hupe1980/supermatrix/testutil"
)

func sample() *sparse.Compressed {
	return &sparse.Compressed{
		Rows: 3, Columns: 3, Nonzeros: 4,
		Format:  sparse.Column,
		Values:  []float64{1, 2, 3, 4},
		Indices: []int{0, 2, 1, 2},
		Offsets: []int{0, 1, 2, 4},
	}
}

// banded returns a compressible n×n tridiagonal matrix.
func banded(n int) *sparse.Compressed {
	c := &sparse.Compressed{Rows: n, Columns: n, Format: sparse.Column, Offsets: []int{0}}
	for j := 0; j < n; j++ {
		for i := max(j-1, 0); i <= min(j+1, n-1); i++ {
			c.Values = append(c.Values, 1)
			c.Indices = append(c.Indices, i)
		}
		c.Offsets = append(c.Offsets, len(c.Values))
	}
	c.Nonzeros = len(c.Values)
	return c
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   *sparse.Compressed
	}{
		{"sample", sample()},
		{"empty", &sparse.Compressed{Offsets: []int{0}}},
		{"row major", &sparse.Compressed{
			Rows: 2, Columns: 3, Nonzeros: 2,
			Format:  sparse.Row,
			Values:  []float64{5, 6},
			Indices: []int{2, 0},
			Offsets: []int{0, 1, 2},
		}},
		{"tridiagonal", banded(200)},
		{"pentadiagonal", testutil.Banded(150, 2)},
		{"random", testutil.NewRNG(4711).Compressed(60, 40, 0.1)},
		{"random transposed", testutil.NewRNG(42).Compressed(30, 50, 0.2).Transpose()},
	}

	for _, tt := range tests {
		for _, comp := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
			t.Run(tt.name+"/"+comp.String(), func(t *testing.T) {
				data, err := Marshal(tt.in, WithCompression(comp))
				require.NoError(t, err)

				got, err := Unmarshal(data)
				require.NoError(t, err)
				assert.Equal(t, tt.in.Rows, got.Rows)
				assert.Equal(t, tt.in.Columns, got.Columns)
				assert.Equal(t, tt.in.Format, got.Format)
				assert.Equal(t, tt.in.Offsets, got.Offsets)
				assert.ElementsMatch(t, tt.in.Values, got.Values)
				assert.True(t, sparse.SamePattern(tt.in, got))
				assert.Equal(t, testutil.Entries(tt.in), testutil.Entries(got))
			})
		}
	}
}

func TestMarshal_Compresses(t *testing.T) {
	in := banded(1000)

	plain, err := Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionNone), plain[5])

	for _, comp := range []Compression{CompressionLZ4, CompressionZSTD} {
		data, err := Marshal(in, WithCompression(comp))
		require.NoError(t, err)
		assert.Equal(t, byte(comp), data[5], comp.String())
		assert.Less(t, len(data), len(plain), comp.String())
	}
}

func TestMarshal_IncompressibleFallsBack(t *testing.T) {
	// An 8-byte payload only grows under ZSTD framing.
	data, err := Marshal(&sparse.Compressed{Offsets: []int{0}}, WithCompression(CompressionZSTD))
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionNone), data[5])
}

func TestMarshal_Invalid(t *testing.T) {
	bad := sample()
	bad.Offsets = []int{0, 1, 2}

	_, err := Marshal(bad)
	assert.ErrorIs(t, err, sparse.ErrLength)

	_, err = Marshal(sample(), WithCompression(Compression(9)))
	assert.ErrorIs(t, err, ErrCompression)
}

func TestUnmarshal_Corrupt(t *testing.T) {
	good, err := Marshal(sample())
	require.NoError(t, err)

	corrupt := func(fn func(b []byte) []byte) []byte {
		b := append([]byte(nil), good...)
		return fn(b)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", good[:10], ErrTruncated},
		{"magic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b }), ErrMagic},
		{"trailing", corrupt(func(b []byte) []byte { return append(b, 0) }), ErrTruncated},
		{"payload bit", corrupt(func(b []byte) []byte { b[headerSize] ^= 1; return b }), ErrChecksum},
		{"too large", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint64(b[32:], uint64(MaxPayload)+1)
			return b
		}), ErrTooLarge},
		{"nnz mismatch", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint64(b[24:], 5)
			return b
		}), sparse.ErrLength},
		{"format", corrupt(func(b []byte) []byte { b[4] = 7; return b }), sparse.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnmarshal_BadIndex(t *testing.T) {
	in := sample()
	data, err := Marshal(in)
	require.NoError(t, err)

	// Point the last row index past the matrix and re-checksum.
	off := headerSize + 4*8 + 3*8
	binary.LittleEndian.PutUint64(data[off:], 9)
	binary.LittleEndian.PutUint32(data[48:], crc(data[headerSize:]))

	_, err = Unmarshal(data)
	assert.ErrorIs(t, err, sparse.ErrIndex)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Equal(t, "Compression(9)", Compression(9).String())
}
