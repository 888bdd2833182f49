package native

import "fmt"

// StorageType is SuperLU's Stype_t: the physical layout of Store.
type StorageType int32

// Storage types, in SuperLU declaration order.
const (
	// StorageCompCol is column-wise compressed storage (SLU_NC).
	StorageCompCol StorageType = iota
	// StorageCompColPermuted is column-wise storage with permuted column starts (SLU_NCP).
	StorageCompColPermuted
	// StorageCompRow is row-wise compressed storage (SLU_NR).
	StorageCompRow
	// StorageSuperNode is column-wise supernodal storage (SLU_SC).
	StorageSuperNode
	// StorageSuperNodePermuted is supernodal storage with permuted columns (SLU_SCP).
	StorageSuperNodePermuted
	// StorageSuperNodeRow is row-wise supernodal storage (SLU_SR).
	StorageSuperNodeRow
	// StorageDense is column-major dense storage (SLU_DN).
	StorageDense
	// StorageCompRowLocal is distributed row-wise storage (SLU_NR_loc).
	// It has no destroy routine in this module and is treated as unknown.
	StorageCompRowLocal
)

var storageNames = [...]string{"NC", "NCP", "NR", "SC", "SCP", "SR", "DN", "NR_loc"}

func (s StorageType) String() string {
	if s >= 0 && int(s) < len(storageNames) {
		return storageNames[s]
	}
	return fmt.Sprintf("StorageType(%d)", int32(s))
}

// IsSuperNode reports whether s is one of the three supernodal layouts.
func (s StorageType) IsSuperNode() bool {
	return s == StorageSuperNode || s == StorageSuperNodePermuted || s == StorageSuperNodeRow
}

// NumericType is SuperLU's Dtype_t: the element type of nzval.
type NumericType int32

const (
	// Single is float32 (SLU_S).
	Single NumericType = iota
	// Double is float64 (SLU_D).
	Double
	// Complex is complex64 (SLU_C).
	Complex
	// DoubleComplex is complex128 (SLU_Z).
	DoubleComplex
)

var numericNames = [...]string{"S", "D", "C", "Z"}

func (d NumericType) String() string {
	if d >= 0 && int(d) < len(numericNames) {
		return numericNames[d]
	}
	return fmt.Sprintf("NumericType(%d)", int32(d))
}

// ElemSize returns the size in bytes of one element, or 0 if d is unknown.
func (d NumericType) ElemSize() int {
	switch d {
	case Single:
		return 4
	case Double, Complex:
		return 8
	case DoubleComplex:
		return 16
	default:
		return 0
	}
}

// MatrixType is SuperLU's Mtype_t: the mathematical shape of the matrix.
type MatrixType int32

const (
	// General is a general matrix (SLU_GE).
	General MatrixType = iota
	// TriLowerUnit is lower triangular with unit diagonal (SLU_TRLU).
	TriLowerUnit
	// TriUpperUnit is upper triangular with unit diagonal (SLU_TRUU).
	TriUpperUnit
	// TriLower is lower triangular (SLU_TRL).
	TriLower
	// TriUpper is upper triangular (SLU_TRU).
	TriUpper
	// SymLower is symmetric, lower half stored (SLU_SYL).
	SymLower
	// SymUpper is symmetric, upper half stored (SLU_SYU).
	SymUpper
	// HermLower is Hermitian, lower half stored (SLU_HEL).
	HermLower
	// HermUpper is Hermitian, upper half stored (SLU_HEU).
	HermUpper
)

var matrixNames = [...]string{"GE", "TRLU", "TRUU", "TRL", "TRU", "SYL", "SYU", "HEL", "HEU"}

func (m MatrixType) String() string {
	if m >= 0 && int(m) < len(matrixNames) {
		return matrixNames[m]
	}
	return fmt.Sprintf("MatrixType(%d)", int32(m))
}
