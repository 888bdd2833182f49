// Package hash provides the checksum used by the matrix wire format.
//
// All frames written by the codec package carry a CRC32-Castagnoli (CRC32C)
// checksum of their payload. The polynomial is hardware accelerated on x86
// (SSE4.2) and ARM (CRC extension).
//
//	sum := hash.CRC32C(payload)
package hash
