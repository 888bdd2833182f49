package native

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperMatrix_Storage(t *testing.T) {
	nc := &NCformat{Nnz: 1}
	ncp := &NCPformat{Nnz: 2}
	nr := &NRformat{Nnz: 3}
	sc := &SCformat{Nnz: 4}
	dn := &DNformat{Lda: 5}

	tests := []struct {
		name  string
		raw   SuperMatrix
		check func(t *testing.T, s Storage)
	}{
		{"NC", SuperMatrix{Stype: StorageCompCol, Store: unsafe.Pointer(nc)}, func(t *testing.T, s Storage) {
			v, ok := s.(CompCol)
			require.True(t, ok)
			assert.Same(t, nc, v.Store)
		}},
		{"NCP", SuperMatrix{Stype: StorageCompColPermuted, Store: unsafe.Pointer(ncp)}, func(t *testing.T, s Storage) {
			v, ok := s.(CompColPermuted)
			require.True(t, ok)
			assert.Same(t, ncp, v.Store)
		}},
		{"NR", SuperMatrix{Stype: StorageCompRow, Store: unsafe.Pointer(nr)}, func(t *testing.T, s Storage) {
			v, ok := s.(CompRow)
			require.True(t, ok)
			assert.Same(t, nr, v.Store)
		}},
		{"SC", SuperMatrix{Stype: StorageSuperNode, Store: unsafe.Pointer(sc)}, func(t *testing.T, s Storage) {
			v, ok := s.(SuperNode)
			require.True(t, ok)
			assert.Same(t, sc, v.Store)
			assert.Equal(t, StorageSuperNode, v.Kind)
		}},
		{"SCP", SuperMatrix{Stype: StorageSuperNodePermuted, Store: unsafe.Pointer(sc)}, func(t *testing.T, s Storage) {
			v, ok := s.(SuperNode)
			require.True(t, ok)
			assert.Equal(t, StorageSuperNodePermuted, v.Kind)
		}},
		{"SR", SuperMatrix{Stype: StorageSuperNodeRow, Store: unsafe.Pointer(sc)}, func(t *testing.T, s Storage) {
			v, ok := s.(SuperNode)
			require.True(t, ok)
			assert.Equal(t, StorageSuperNodeRow, v.Kind)
		}},
		{"DN", SuperMatrix{Stype: StorageDense, Store: unsafe.Pointer(dn)}, func(t *testing.T, s Storage) {
			v, ok := s.(Dense)
			require.True(t, ok)
			assert.Same(t, dn, v.Store)
		}},
		{"NR_loc", SuperMatrix{Stype: StorageCompRowLocal}, func(t *testing.T, s Storage) {
			v, ok := s.(Unknown)
			require.True(t, ok)
			assert.Equal(t, StorageCompRowLocal, v.Tag)
		}},
		{"out of range", SuperMatrix{Stype: StorageType(99)}, func(t *testing.T, s Storage) {
			assert.Equal(t, Unknown{Tag: 99}, s)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.raw.Storage()
			assert.Equal(t, tt.raw.Stype, s.Type())
			tt.check(t, s)
		})
	}
}

func TestSuperMatrix_CompCol(t *testing.T) {
	nc := &NCformat{Nnz: 7}

	raw := SuperMatrix{Stype: StorageCompCol, Store: unsafe.Pointer(nc)}
	got, ok := raw.CompCol()
	require.True(t, ok)
	assert.Same(t, nc, got)

	raw.Stype = StorageCompRow
	_, ok = raw.CompCol()
	assert.False(t, ok)

	raw = SuperMatrix{Stype: StorageCompCol}
	_, ok = raw.CompCol()
	assert.False(t, ok)
}

func TestSlices(t *testing.T) {
	vals := []float64{1, 2, 3}
	idx := []int32{4, 5}

	assert.Equal(t, vals, Float64s(unsafe.Pointer(&vals[0]), 3))
	assert.Equal(t, idx, Int32s(&idx[0], 2))

	assert.Nil(t, Float64s(nil, 3))
	assert.Nil(t, Float64s(unsafe.Pointer(&vals[0]), 0))
	assert.Nil(t, Int32s(nil, 1))
}
