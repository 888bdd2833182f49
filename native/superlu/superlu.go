//go:build cgo && superlu

package superlu

/*
#cgo LDFLAGS: -lsuperlu
#include <stddef.h>
#include <slu_ddefs.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/supermatrix/internal/conv"
	"github.com/hupe1980/supermatrix/native"
)

var (
	// ErrOutOfMemory is returned when superlu_malloc fails.
	ErrOutOfMemory = errors.New("superlu: out of memory")
	// ErrShape is returned when buffer lengths do not match the requested dimensions.
	ErrShape = errors.New("superlu: buffer lengths do not match dimensions")
)

// Library frees records with SuperLU's Destroy_* routines.
type Library struct{}

var _ native.Library = Library{}

func cmatrix(m *native.SuperMatrix) *C.SuperMatrix {
	return (*C.SuperMatrix)(unsafe.Pointer(m))
}

func (Library) DestroyCompCol(m *native.SuperMatrix) { C.Destroy_CompCol_Matrix(cmatrix(m)) }

func (Library) DestroyCompColPermuted(m *native.SuperMatrix) {
	C.Destroy_CompCol_Permuted(cmatrix(m))
}

func (Library) DestroyCompRow(m *native.SuperMatrix) { C.Destroy_CompRow_Matrix(cmatrix(m)) }

func (Library) DestroySuperNode(m *native.SuperMatrix) { C.Destroy_SuperNode_Matrix(cmatrix(m)) }

func (Library) DestroyDense(m *native.SuperMatrix) { C.Destroy_Dense_Matrix(cmatrix(m)) }

// CreateCompCol allocates a double-precision NC record with
// dCreate_CompCol_Matrix. The inputs are copied into SuperLU memory.
func (Library) CreateCompCol(rows, cols int, values []float64, rowind, colptr []int, mtype native.MatrixType) (native.SuperMatrix, error) {
	if rows < 0 || cols < 0 || len(rowind) != len(values) || len(colptr) != cols+1 {
		return native.SuperMatrix{}, fmt.Errorf("%w: %dx%d with nnz=%d rowind=%d colptr=%d",
			ErrShape, rows, cols, len(values), len(rowind), len(colptr))
	}
	r, err := conv.IntToInt32(rows)
	if err != nil {
		return native.SuperMatrix{}, err
	}
	c, err := conv.IntToInt32(cols)
	if err != nil {
		return native.SuperMatrix{}, err
	}
	nnz, err := conv.IntToInt32(len(values))
	if err != nil {
		return native.SuperMatrix{}, err
	}

	nzval := C.superlu_malloc(C.size_t(max(len(values), 1) * 8))
	ri := C.superlu_malloc(C.size_t(max(len(rowind), 1) * 4))
	cp := C.superlu_malloc(C.size_t(len(colptr) * 4))
	fail := func(err error) (native.SuperMatrix, error) {
		for _, p := range []unsafe.Pointer{nzval, ri, cp} {
			if p != nil {
				C.superlu_free(p)
			}
		}
		return native.SuperMatrix{}, err
	}
	if nzval == nil || ri == nil || cp == nil {
		return fail(ErrOutOfMemory)
	}

	copy(unsafe.Slice((*float64)(nzval), len(values)), values)
	if err := conv.IntsToInt32s(unsafe.Slice((*int32)(ri), len(rowind)), rowind); err != nil {
		return fail(err)
	}
	if err := conv.IntsToInt32s(unsafe.Slice((*int32)(cp), len(colptr)), colptr); err != nil {
		return fail(err)
	}

	var m native.SuperMatrix
	C.dCreate_CompCol_Matrix(cmatrix(&m), C.int(r), C.int(c), C.int_t(nnz),
		(*C.double)(nzval), (*C.int_t)(ri), (*C.int_t)(cp),
		C.SLU_NC, C.SLU_D, C.Mtype_t(mtype))

	return m, nil
}

// layout reports the C record size and the offset of its Store field.
func layout() (size, store uintptr) {
	var m C.SuperMatrix
	return unsafe.Sizeof(m), unsafe.Offsetof(m.Store)
}
