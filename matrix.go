package supermatrix

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/hupe1980/supermatrix/native"
)

const (
	stateLive int32 = iota
	stateClosed
	stateReleased
)

// Matrix is the sole owner of a SuperMatrix record produced by the foreign
// library.
//
// The record's resources are freed exactly once: by Close, or by the garbage
// collector if the Matrix becomes unreachable while still live. Release
// hands ownership back to the caller and disarms both. A Matrix must not be
// used concurrently with Close or Release.
type Matrix struct {
	raw     native.SuperMatrix
	lib     native.Library
	logger  *Logger
	metrics MetricsCollector

	state      atomic.Int32
	cleanup    runtime.Cleanup
	hasCleanup bool
}

// leak is the state the garbage-collector cleanup needs. It must not
// reference the Matrix itself.
type leak struct {
	raw     native.SuperMatrix
	lib     native.Library
	logger  *Logger
	metrics MetricsCollector
}

// Adopt takes ownership of raw. The caller must not free raw, or any buffer
// reachable from it, afterwards.
//
// raw is trusted: its Store must match its Stype and must have been
// allocated by the library selected with WithLibrary.
func Adopt(raw native.SuperMatrix, optFns ...Option) *Matrix {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	m := &Matrix{
		raw:     raw,
		lib:     o.library,
		logger:  o.logger,
		metrics: o.metrics,
	}

	if o.cleanup {
		m.cleanup = runtime.AddCleanup(m, reclaim, leak{
			raw:     raw,
			lib:     o.library,
			logger:  o.logger,
			metrics: o.metrics,
		})
		m.hasCleanup = true
	}

	return m
}

func reclaim(l leak) {
	freed := destroy(l.lib, &l.raw)
	l.metrics.RecordLeak(l.raw.Stype)
	l.logger.LogLeak(l.raw.Stype, freed)
}

// destroy invokes the routine matching raw's storage tag. It reports false
// for tags without one; nothing is freed for those.
func destroy(lib native.Library, raw *native.SuperMatrix) bool {
	switch raw.Storage().(type) {
	case native.CompCol:
		lib.DestroyCompCol(raw)
	case native.CompColPermuted:
		lib.DestroyCompColPermuted(raw)
	case native.CompRow:
		lib.DestroyCompRow(raw)
	case native.SuperNode:
		lib.DestroySuperNode(raw)
	case native.Dense:
		lib.DestroyDense(raw)
	default:
		return false
	}
	return true
}

// Close frees the record with the destroy routine selected by its storage
// tag. Tags without a routine free nothing.
//
// Close is idempotent and is a no-op after Release. It always returns nil;
// the error result exists to satisfy io.Closer.
func (m *Matrix) Close() error {
	if m == nil || !m.state.CompareAndSwap(stateLive, stateClosed) {
		return nil
	}
	m.disarm()

	start := time.Now()
	freed := destroy(m.lib, &m.raw)
	m.metrics.RecordTeardown(m.raw.Stype, freed, time.Since(start))
	m.logger.LogTeardown(m.raw.Stype, freed)

	return nil
}

// Release gives up ownership and returns the record. The caller becomes
// responsible for freeing it, typically by passing it to Adopt again or to
// a foreign routine that consumes it. The Matrix is unusable afterwards.
func (m *Matrix) Release() (native.SuperMatrix, error) {
	if !m.state.CompareAndSwap(stateLive, stateReleased) {
		return native.SuperMatrix{}, m.stateErr()
	}
	m.disarm()

	raw := m.raw
	m.raw = native.SuperMatrix{}
	m.metrics.RecordRelease(raw.Stype)
	m.logger.LogRelease(raw.Stype)

	return raw, nil
}

func (m *Matrix) disarm() {
	if m.hasCleanup {
		m.cleanup.Stop()
		m.hasCleanup = false
	}
}

// stateErr returns the error for a Matrix that is no longer live.
func (m *Matrix) stateErr() error {
	switch m.state.Load() {
	case stateClosed:
		return ErrClosed
	case stateReleased:
		return ErrReleased
	default:
		return nil
	}
}

// Raw borrows the record for the duration of a foreign call. The pointer
// must not be retained past the next Close or Release.
func (m *Matrix) Raw() (*native.SuperMatrix, error) {
	if err := m.stateErr(); err != nil {
		return nil, err
	}
	return &m.raw, nil
}

// Live reports whether m still owns its record.
func (m *Matrix) Live() bool { return m.state.Load() == stateLive }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return int(m.raw.Nrow) }

// Columns returns the number of columns.
func (m *Matrix) Columns() int { return int(m.raw.Ncol) }

// StorageType returns the storage tag.
func (m *Matrix) StorageType() native.StorageType { return m.raw.Stype }

// NumericType returns the element type tag.
func (m *Matrix) NumericType() native.NumericType { return m.raw.Dtype }

// MatrixType returns the mathematical shape tag.
func (m *Matrix) MatrixType() native.MatrixType { return m.raw.Mtype }

// Storage returns the typed view of the store. The view borrows memory owned
// by m and is invalid after Close.
func (m *Matrix) Storage() native.Storage { return m.raw.Storage() }
