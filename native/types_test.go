package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageType_String(t *testing.T) {
	assert.Equal(t, "NC", StorageCompCol.String())
	assert.Equal(t, "SCP", StorageSuperNodePermuted.String())
	assert.Equal(t, "NR_loc", StorageCompRowLocal.String())
	assert.Equal(t, "StorageType(42)", StorageType(42).String())
	assert.Equal(t, "StorageType(-1)", StorageType(-1).String())
}

func TestStorageType_IsSuperNode(t *testing.T) {
	for _, s := range []StorageType{StorageSuperNode, StorageSuperNodePermuted, StorageSuperNodeRow} {
		assert.True(t, s.IsSuperNode(), s.String())
	}
	for _, s := range []StorageType{StorageCompCol, StorageCompColPermuted, StorageCompRow, StorageDense, StorageCompRowLocal} {
		assert.False(t, s.IsSuperNode(), s.String())
	}
}

func TestNumericType(t *testing.T) {
	assert.Equal(t, "D", Double.String())
	assert.Equal(t, "NumericType(9)", NumericType(9).String())

	assert.Equal(t, 4, Single.ElemSize())
	assert.Equal(t, 8, Double.ElemSize())
	assert.Equal(t, 8, Complex.ElemSize())
	assert.Equal(t, 16, DoubleComplex.ElemSize())
	assert.Equal(t, 0, NumericType(9).ElemSize())
}

func TestMatrixType_String(t *testing.T) {
	assert.Equal(t, "GE", General.String())
	assert.Equal(t, "HEU", HermUpper.String())
	assert.Equal(t, "MatrixType(12)", MatrixType(12).String())
}
