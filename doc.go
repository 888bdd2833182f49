// Package supermatrix wraps SuperLU SuperMatrix records in Go-owned handles
// and converts them into Go sparse matrices.
//
// A SuperMatrix is a tagged record: a storage tag selecting the layout of an
// opaque store, a numeric tag selecting the element type, and a matrix tag
// describing the mathematical shape. The store and every buffer it points to
// are allocated by the foreign library and must be freed by the routine that
// matches the storage tag.
//
// # Ownership
//
// Adopt takes ownership of a record. The resulting Matrix frees it exactly
// once:
//
//	m := supermatrix.Adopt(raw)
//	defer m.Close()
//
// Release returns ownership to the caller without freeing anything:
//
//	raw, err := m.Release()
//
// A Matrix that becomes unreachable while it still owns its record is
// reclaimed by the garbage collector and reported through the logger and the
// metrics collector. Do not rely on this; call Close.
//
// # Conversion
//
// ToCompressed copies a compressed-column, double precision, general matrix
// into a sparse.Compressed:
//
//	c, err := supermatrix.ToCompressed(m)
//	if errors.Is(err, supermatrix.ErrNotApplicable) {
//	    // some other layout or element type
//	}
//
// Recognized layouts without a conversion yet panic with
// *NotImplementedError.
//
// # Libraries
//
// By default records are freed by the off-heap allocator in native/offheap.
// Building with the "superlu" tag and cgo enabled links against libsuperlu
// and uses native/superlu instead.
//
// # Persistence and Monitoring
//
// The archive package stores converted matrices in any blobstore.BlobStore
// (memory, local files, S3, MinIO) using the codec wire format.
// metrics/prometheus exports the MetricsCollector events.
package supermatrix
