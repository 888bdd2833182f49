package offheap

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/supermatrix/internal/conv"
	"github.com/hupe1980/supermatrix/native"
)

// ErrStorage is returned when a source record has the wrong storage type.
var ErrStorage = errors.New("offheap: unexpected storage type")

// txn collects allocations so a failed constructor can undo them.
type txn struct {
	l    *Library
	ptrs []unsafe.Pointer
	err  error
}

func (t *txn) raw(size int) unsafe.Pointer {
	if t.err != nil {
		return nil
	}
	p, err := t.l.alloc(size)
	if err != nil {
		t.err = err
		return nil
	}
	if p != nil {
		t.ptrs = append(t.ptrs, p)
	}
	return p
}

func (t *txn) float64s(vals []float64) unsafe.Pointer {
	p := t.raw(len(vals) * 8)
	if p != nil {
		copy(unsafe.Slice((*float64)(p), len(vals)), vals)
	}
	return p
}

func (t *txn) int32s(src []int) *int32 {
	p := (*int32)(t.raw(len(src) * 4))
	if p != nil {
		if err := conv.IntsToInt32s(unsafe.Slice(p, len(src)), src); err != nil {
			t.err = err
		}
	}
	return p
}

func (t *txn) finish() error {
	if t.err == nil {
		return nil
	}
	for _, p := range t.ptrs {
		t.l.free(p)
	}
	t.ptrs = nil
	return t.err
}

func newStore[T any](t *txn) *T {
	var zero T
	return (*T)(t.raw(int(unsafe.Sizeof(zero))))
}

func dims(rows, cols int) (int32, int32, error) {
	if rows < 0 || cols < 0 {
		return 0, 0, fmt.Errorf("%w: negative dimension %dx%d", ErrShape, rows, cols)
	}
	r, err := conv.IntToInt32(rows)
	if err != nil {
		return 0, 0, err
	}
	c, err := conv.IntToInt32(cols)
	if err != nil {
		return 0, 0, err
	}
	return r, c, nil
}

func checkLen(what string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has %d entries, want %d", ErrShape, what, got, want)
	}
	return nil
}

// CreateCompCol allocates a double-precision NC record, like SuperLU's
// dCreate_CompCol_Matrix. The inputs are copied.
func (l *Library) CreateCompCol(rows, cols int, values []float64, rowind, colptr []int, mtype native.MatrixType) (native.SuperMatrix, error) {
	r, c, err := dims(rows, cols)
	if err != nil {
		return native.SuperMatrix{}, err
	}
	if err := errors.Join(
		checkLen("rowind", len(rowind), len(values)),
		checkLen("colptr", len(colptr), cols+1),
	); err != nil {
		return native.SuperMatrix{}, err
	}
	nnz, err := conv.IntToInt32(len(values))
	if err != nil {
		return native.SuperMatrix{}, err
	}

	t := &txn{l: l}
	nzval := t.float64s(values)
	ri := t.int32s(rowind)
	cp := t.int32s(colptr)
	store := newStore[native.NCformat](t)
	if err := t.finish(); err != nil {
		return native.SuperMatrix{}, err
	}
	*store = native.NCformat{Nnz: nnz, Nzval: nzval, Rowind: ri, Colptr: cp}

	return native.SuperMatrix{
		Stype: native.StorageCompCol,
		Dtype: native.Double,
		Mtype: mtype,
		Nrow:  r,
		Ncol:  c,
		Store: unsafe.Pointer(store),
	}, nil
}

// CreateCompColPermuted derives an NCP record from an NC record, the way
// SuperLU's column preordering does. The values and row indices are shared
// with a, so a must outlive the result.
func (l *Library) CreateCompColPermuted(a native.SuperMatrix, colbeg, colend []int) (native.SuperMatrix, error) {
	src, ok := a.CompCol()
	if !ok {
		return native.SuperMatrix{}, fmt.Errorf("%w: %s", ErrStorage, a.Stype)
	}
	if err := errors.Join(
		checkLen("colbeg", len(colbeg), int(a.Ncol)),
		checkLen("colend", len(colend), int(a.Ncol)),
	); err != nil {
		return native.SuperMatrix{}, err
	}

	t := &txn{l: l}
	cb := t.int32s(colbeg)
	ce := t.int32s(colend)
	store := newStore[native.NCPformat](t)
	if err := t.finish(); err != nil {
		return native.SuperMatrix{}, err
	}
	*store = native.NCPformat{Nnz: src.Nnz, Nzval: src.Nzval, Rowind: src.Rowind, Colbeg: cb, Colend: ce}

	return native.SuperMatrix{
		Stype: native.StorageCompColPermuted,
		Dtype: a.Dtype,
		Mtype: a.Mtype,
		Nrow:  a.Nrow,
		Ncol:  a.Ncol,
		Store: unsafe.Pointer(store),
	}, nil
}

// CreateCompRow allocates a double-precision NR record, like SuperLU's
// dCreate_CompRow_Matrix.
func (l *Library) CreateCompRow(rows, cols int, values []float64, colind, rowptr []int, mtype native.MatrixType) (native.SuperMatrix, error) {
	r, c, err := dims(rows, cols)
	if err != nil {
		return native.SuperMatrix{}, err
	}
	if err := errors.Join(
		checkLen("colind", len(colind), len(values)),
		checkLen("rowptr", len(rowptr), rows+1),
	); err != nil {
		return native.SuperMatrix{}, err
	}
	nnz, err := conv.IntToInt32(len(values))
	if err != nil {
		return native.SuperMatrix{}, err
	}

	t := &txn{l: l}
	nzval := t.float64s(values)
	ci := t.int32s(colind)
	rp := t.int32s(rowptr)
	store := newStore[native.NRformat](t)
	if err := t.finish(); err != nil {
		return native.SuperMatrix{}, err
	}
	*store = native.NRformat{Nnz: nnz, Nzval: nzval, Colind: ci, Rowptr: rp}

	return native.SuperMatrix{
		Stype: native.StorageCompRow,
		Dtype: native.Double,
		Mtype: mtype,
		Nrow:  r,
		Ncol:  c,
		Store: unsafe.Pointer(store),
	}, nil
}

// SuperNodeParts holds the buffers of a supernodal factor.
type SuperNodeParts struct {
	Nsuper       int
	Values       []float64
	NzvalColptr  []int // cols+1
	Rowind       []int
	RowindColptr []int // cols+1
	ColToSup     []int // cols
	SupToCol     []int
}

// CreateSuperNode allocates an SC, SCP or SR record, like SuperLU's
// dCreate_SuperNode_Matrix.
func (l *Library) CreateSuperNode(kind native.StorageType, rows, cols int, p SuperNodeParts, mtype native.MatrixType) (native.SuperMatrix, error) {
	if !kind.IsSuperNode() {
		return native.SuperMatrix{}, fmt.Errorf("%w: %s", ErrStorage, kind)
	}
	r, c, err := dims(rows, cols)
	if err != nil {
		return native.SuperMatrix{}, err
	}
	if err := errors.Join(
		checkLen("nzval_colptr", len(p.NzvalColptr), cols+1),
		checkLen("rowind_colptr", len(p.RowindColptr), cols+1),
		checkLen("col_to_sup", len(p.ColToSup), cols),
	); err != nil {
		return native.SuperMatrix{}, err
	}
	nnz, err := conv.IntToInt32(len(p.Values))
	if err != nil {
		return native.SuperMatrix{}, err
	}
	nsuper, err := conv.IntToInt32(p.Nsuper)
	if err != nil {
		return native.SuperMatrix{}, err
	}

	t := &txn{l: l}
	nzval := t.float64s(p.Values)
	nzc := t.int32s(p.NzvalColptr)
	ri := t.int32s(p.Rowind)
	ric := t.int32s(p.RowindColptr)
	c2s := t.int32s(p.ColToSup)
	s2c := t.int32s(p.SupToCol)
	store := newStore[native.SCformat](t)
	if err := t.finish(); err != nil {
		return native.SuperMatrix{}, err
	}
	*store = native.SCformat{
		Nnz:          nnz,
		Nsuper:       nsuper,
		Nzval:        nzval,
		NzvalColptr:  nzc,
		Rowind:       ri,
		RowindColptr: ric,
		ColToSup:     c2s,
		SupToCol:     s2c,
	}

	return native.SuperMatrix{
		Stype: kind,
		Dtype: native.Double,
		Mtype: mtype,
		Nrow:  r,
		Ncol:  c,
		Store: unsafe.Pointer(store),
	}, nil
}

// CreateDense allocates a column-major DN record with lda = max(rows, 1),
// like SuperLU's dCreate_Dense_Matrix.
func (l *Library) CreateDense(rows, cols int, values []float64, mtype native.MatrixType) (native.SuperMatrix, error) {
	r, c, err := dims(rows, cols)
	if err != nil {
		return native.SuperMatrix{}, err
	}
	if err := checkLen("values", len(values), rows*cols); err != nil {
		return native.SuperMatrix{}, err
	}

	t := &txn{l: l}
	nzval := t.float64s(values)
	store := newStore[native.DNformat](t)
	if err := t.finish(); err != nil {
		return native.SuperMatrix{}, err
	}
	*store = native.DNformat{Lda: max(r, 1), Nzval: nzval}

	return native.SuperMatrix{
		Stype: native.StorageDense,
		Dtype: native.Double,
		Mtype: mtype,
		Nrow:  r,
		Ncol:  c,
		Store: unsafe.Pointer(store),
	}, nil
}
