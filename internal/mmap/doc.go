// Package mmap obtains memory directly from the operating system.
//
// # Overview
//
// Two kinds of mapping are supported:
//
//   - Open maps a file read-only for zero-copy reads (used by the local blob store).
//   - MapAnon creates anonymous read-write memory outside the Go heap. The
//     off-heap native library uses it to model foreign allocations: the garbage
//     collector never sees these bytes, so they must be released explicitly.
//
// # Usage
//
//	m, err := mmap.MapAnon(4096)
//	if err != nil { ... }
//	defer m.Close()
//
//	p := m.Addr() // stable address until Close
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile and VirtualAlloc (no advice)
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Callers must ensure
// no goroutine touches Bytes() or Addr() memory after Close() returns.
package mmap
