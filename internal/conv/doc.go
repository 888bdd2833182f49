// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking when values cross the boundary
// between Go's platform-sized int and the fixed-width integers used by the
// native matrix layouts (int32 index buffers) and the wire format (uint64).
//
// Use cases:
//   - Narrowing caller-supplied indices into native int32 buffers
//   - Validating counts decoded from untrusted bytes
//
// For conversions that are provably safe (widening int32 to int), use
// direct type casts instead to avoid overhead.
package conv
