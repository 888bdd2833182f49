package offheap

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/hupe1980/supermatrix/internal/mmap"
	"github.com/hupe1980/supermatrix/internal/resource"
	"github.com/hupe1980/supermatrix/native"
)

var (
	// ErrMemoryLimitExceeded is returned when an allocation would exceed the configured limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
	// ErrShape is returned when buffer lengths do not match the requested dimensions.
	ErrShape = errors.New("offheap: buffer lengths do not match dimensions")
)

// Library allocates native matrix records in anonymous memory mappings and
// implements native.Library with SuperLU's per-layout free semantics.
//
// Every buffer is a separate mapping, tracked by address. Freeing an address
// that is not live panics, which makes double frees loud instead of silent.
type Library struct {
	ctrl *resource.Controller

	mu     sync.Mutex
	allocs map[uintptr]allocation
}

type allocation struct {
	m    *mmap.Mapping
	size int64
}

type options struct {
	ctrl *resource.Controller
}

// Option configures a Library.
type Option func(*options)

// WithMemoryLimit caps the bytes the library may hold at once.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.ctrl = resource.NewController(resource.Config{MemoryLimitBytes: bytes})
	}
}

// WithController shares a resource controller with other components.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.ctrl = c
	}
}

// New creates an off-heap library.
func New(optFns ...Option) *Library {
	o := options{}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.ctrl == nil {
		o.ctrl = resource.NewController(resource.Config{})
	}
	return &Library{
		ctrl:   o.ctrl,
		allocs: make(map[uintptr]allocation),
	}
}

// Default is the process-wide off-heap library.
var Default = New()

var _ native.Library = (*Library)(nil)

// Live returns the number of buffers currently allocated.
func (l *Library) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.allocs)
}

// LiveBytes returns the number of bytes currently allocated.
func (l *Library) LiveBytes() int64 {
	return l.ctrl.MemoryUsage()
}

// alloc returns size zeroed bytes outside the Go heap, or nil for size 0.
func (l *Library) alloc(size int) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, nil
	}
	if err := l.ctrl.AcquireMemory(int64(size)); err != nil {
		return nil, err
	}
	m, err := mmap.MapAnon(size)
	if err != nil {
		l.ctrl.ReleaseMemory(int64(size))
		return nil, fmt.Errorf("offheap: map %d bytes: %w", size, err)
	}

	p := m.Addr()
	l.mu.Lock()
	l.allocs[uintptr(p)] = allocation{m: m, size: int64(size)}
	l.mu.Unlock()
	return p, nil
}

// free releases a pointer returned by alloc. free(nil) is a no-op, like C.
func (l *Library) free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	l.mu.Lock()
	a, ok := l.allocs[uintptr(p)]
	if ok {
		delete(l.allocs, uintptr(p))
	}
	l.mu.Unlock()

	if !ok {
		panic(fmt.Sprintf("offheap: free of unknown pointer %p (double free?)", p))
	}
	if err := a.m.Close(); err != nil {
		panic(fmt.Sprintf("offheap: unmap %p: %v", p, err))
	}
	l.ctrl.ReleaseMemory(a.size)
}

// DestroyCompCol implements native.Library.
func (l *Library) DestroyCompCol(m *native.SuperMatrix) {
	s := (*native.NCformat)(m.Store)
	l.free(s.Nzval)
	l.free(unsafe.Pointer(s.Rowind))
	l.free(unsafe.Pointer(s.Colptr))
	l.free(m.Store)
}

// DestroyCompColPermuted implements native.Library.
// Nzval and Rowind belong to the unpermuted matrix and are left alone.
func (l *Library) DestroyCompColPermuted(m *native.SuperMatrix) {
	s := (*native.NCPformat)(m.Store)
	l.free(unsafe.Pointer(s.Colbeg))
	l.free(unsafe.Pointer(s.Colend))
	l.free(m.Store)
}

// DestroyCompRow implements native.Library.
func (l *Library) DestroyCompRow(m *native.SuperMatrix) {
	s := (*native.NRformat)(m.Store)
	l.free(s.Nzval)
	l.free(unsafe.Pointer(s.Colind))
	l.free(unsafe.Pointer(s.Rowptr))
	l.free(m.Store)
}

// DestroySuperNode implements native.Library.
func (l *Library) DestroySuperNode(m *native.SuperMatrix) {
	s := (*native.SCformat)(m.Store)
	l.free(s.Nzval)
	l.free(unsafe.Pointer(s.NzvalColptr))
	l.free(unsafe.Pointer(s.Rowind))
	l.free(unsafe.Pointer(s.RowindColptr))
	l.free(unsafe.Pointer(s.ColToSup))
	l.free(unsafe.Pointer(s.SupToCol))
	l.free(m.Store)
}

// DestroyDense implements native.Library.
func (l *Library) DestroyDense(m *native.SuperMatrix) {
	s := (*native.DNformat)(m.Store)
	l.free(s.Nzval)
	l.free(m.Store)
}
