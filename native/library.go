package native

// Library is the deallocation surface of the foreign matrix library.
//
// Each routine frees the resources of exactly one storage layout, mirroring
// SuperLU's Destroy_* functions. Calling a routine that does not match the
// record's Stype is undefined behavior; callers must dispatch on the tag.
// None of the routines reports errors.
type Library interface {
	// DestroyCompCol frees an NC store and its nzval, rowind and colptr buffers.
	DestroyCompCol(m *SuperMatrix)
	// DestroyCompColPermuted frees an NCP store and its colbeg and colend buffers.
	DestroyCompColPermuted(m *SuperMatrix)
	// DestroyCompRow frees an NR store and its nzval, colind and rowptr buffers.
	DestroyCompRow(m *SuperMatrix)
	// DestroySuperNode frees an SC, SCP or SR store and all of its buffers.
	DestroySuperNode(m *SuperMatrix)
	// DestroyDense frees a DN store and its nzval buffer.
	DestroyDense(m *SuperMatrix)
}
