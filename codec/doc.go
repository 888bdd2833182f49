// Package codec serializes sparse.Compressed matrices into a self-describing
// binary frame.
//
// Frame layout (little endian):
//
//	magic        [4]byte  "SMX1"
//	format       uint8    sparse.Major
//	compression  uint8    Compression
//	reserved     uint16
//	rows         uint64
//	columns      uint64
//	nonzeros     uint64
//	rawLen       uint64   payload size before compression
//	storedLen    uint64   payload size as stored
//	checksum     uint32   CRC32C of the stored payload
//	payload      [storedLen]byte
//
// The uncompressed payload is the values (float64), then the indices and
// offsets (uint64). Changing the layout is a breaking change for persisted
// bytes; bump the magic when doing so.
package codec
