// Package offheap is a pure-Go native matrix library.
//
// It builds native.SuperMatrix records whose stores and buffers live in
// anonymous memory mappings outside the Go heap, and frees them with the same
// per-layout rules as SuperLU's Destroy_* routines. It is the default
// native.Library when the module is built without the "superlu" tag.
//
//	lib := offheap.New(offheap.WithMemoryLimit(64 << 20))
//	raw, err := lib.CreateCompCol(3, 3, values, rowind, colptr, native.General)
//	if err != nil { ... }
//	defer lib.DestroyCompCol(&raw)
//
// Live and LiveBytes report outstanding allocations, which makes leaks and
// double frees observable in tests.
package offheap
