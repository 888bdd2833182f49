// Package resource implements a Controller for shared limits.
//
// The Controller manages three resource types:
//
//   - Memory: native (off-heap) bytes reserved by the off-heap library (non-blocking, fail-fast)
//   - Concurrency: worker slots for archive fan-out (PutAll, GetAll)
//   - IO: a token bucket throttling blob store traffic
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and an atomic
// counter for usage. AcquireMemory never blocks:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30,
//	})
//
//	if err := rc.AcquireMemory(n); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(n)
//
// # IO Rate Limiting
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 100 * 1024 * 1024,
//	})
//
//	if err := rc.AcquireIO(ctx, len(blob)); err != nil {
//	    return err
//	}
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
