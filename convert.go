package supermatrix

import (
	"runtime"
	"time"

	"github.com/hupe1980/supermatrix/native"
	"github.com/hupe1980/supermatrix/sparse"
)

// ToCompressed copies m into a Go-owned compressed-column matrix.
//
// Only compressed-column, double precision, general matrices convert. Two
// recognized triples panic with *NotImplementedError: compressed-column
// double precision with any other matrix type, and permuted compressed-column
// double precision. Every other triple returns ErrNotApplicable. A closed or
// released Matrix returns ErrClosed or ErrReleased.
//
// m keeps ownership of its record; the result shares no memory with it.
func ToCompressed(m *Matrix) (*sparse.Compressed, error) {
	start := time.Now()

	if err := m.stateErr(); err != nil {
		m.metrics.RecordConvert(OutcomeRejected, 0, time.Since(start))
		return nil, err
	}
	defer runtime.KeepAlive(m)

	raw := &m.raw
	switch s := raw.Storage().(type) {
	case native.CompCol:
		if raw.Dtype != native.Double || s.Store == nil {
			break
		}
		if raw.Mtype != native.General {
			m.notImplemented(start)
		}
		c := copyCompCol(raw, s.Store)
		m.metrics.RecordConvert(OutcomeConverted, c.Nonzeros, time.Since(start))
		m.logger.LogConvert(raw, c.Nonzeros, nil)
		return c, nil
	case native.CompColPermuted:
		if raw.Dtype == native.Double {
			m.notImplemented(start)
		}
	}

	m.metrics.RecordConvert(OutcomeNotApplicable, 0, time.Since(start))
	m.logger.LogConvert(raw, 0, ErrNotApplicable)
	return nil, ErrNotApplicable
}

func (m *Matrix) notImplemented(start time.Time) {
	err := &NotImplementedError{Storage: m.raw.Stype, Numeric: m.raw.Dtype, Matrix: m.raw.Mtype}
	m.metrics.RecordConvert(OutcomeNotImplemented, 0, time.Since(start))
	m.logger.Error("conversion not implemented", "error", err)
	panic(err)
}

// copyCompCol builds the Go-side copy of an NC store. Values and row indices
// are copied in a single pass over nnz.
func copyCompCol(raw *native.SuperMatrix, store *native.NCformat) *sparse.Compressed {
	cols := int(raw.Ncol)
	nnz := int(store.Nnz)

	nzval := native.Float64s(store.Nzval, nnz)
	rowind := native.Int32s(store.Rowind, nnz)
	values := make([]float64, nnz)
	indices := make([]int, nnz)
	for k := range nnz {
		values[k] = nzval[k]
		indices[k] = int(rowind[k])
	}

	colptr := native.Int32s(store.Colptr, cols+1)
	offsets := make([]int, cols+1)
	for j, p := range colptr {
		offsets[j] = int(p)
	}

	return &sparse.Compressed{
		Rows:     int(raw.Nrow),
		Columns:  cols,
		Nonzeros: nnz,
		Format:   sparse.Column,
		Values:   values,
		Indices:  indices,
		Offsets:  offsets,
	}
}

// ConvertAndClose converts m and then closes it, including when the
// conversion panics.
func ConvertAndClose(m *Matrix) (*sparse.Compressed, error) {
	defer m.Close()
	return ToCompressed(m)
}
