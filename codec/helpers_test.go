package codec

import "github.com/hupe1980/supermatrix/internal/hash"

func crc(b []byte) uint32 { return hash.CRC32C(b) }
