package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/supermatrix/internal/conv"
	"github.com/hupe1980/supermatrix/internal/hash"
	"github.com/hupe1980/supermatrix/sparse"
)

var (
	// ErrMagic is returned when the data does not start with the frame magic.
	ErrMagic = errors.New("codec: bad magic")
	// ErrTruncated is returned when the data is shorter than its header claims.
	ErrTruncated = errors.New("codec: truncated frame")
	// ErrChecksum is returned when the payload checksum does not match.
	ErrChecksum = errors.New("codec: checksum mismatch")
	// ErrCompression is returned for an unknown compression id.
	ErrCompression = errors.New("codec: unknown compression")
	// ErrTooLarge is returned when a header announces more than MaxPayload bytes.
	ErrTooLarge = errors.New("codec: payload too large")
)

var magic = [4]byte{'S', 'M', 'X', '1'}

const headerSize = 52

// MaxPayload bounds the uncompressed payload Unmarshal will allocate.
var MaxPayload = 1 << 30

type options struct {
	compression Compression
}

// Option configures Marshal.
type Option func(*options)

// WithCompression selects the payload compression. Default: CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// Marshal validates c and encodes it into a frame.
func Marshal(c *sparse.Compressed, optFns ...Option) ([]byte, error) {
	o := options{compression: CompressionNone}
	for _, fn := range optFns {
		fn(&o)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	raw := make([]byte, 0, payloadLen(c.Nonzeros, c.MajorLen()))
	for _, v := range c.Values {
		raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(v))
	}
	for _, ix := range c.Indices {
		raw = binary.LittleEndian.AppendUint64(raw, uint64(ix))
	}
	for _, off := range c.Offsets {
		raw = binary.LittleEndian.AppendUint64(raw, uint64(off))
	}

	stored, used, err := compress(raw, o.compression)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, headerSize, headerSize+len(stored))
	copy(buf[0:4], magic[:])
	buf[4] = byte(c.Format)
	buf[5] = byte(used)
	binary.LittleEndian.PutUint64(buf[8:], uint64(c.Rows))
	binary.LittleEndian.PutUint64(buf[16:], uint64(c.Columns))
	binary.LittleEndian.PutUint64(buf[24:], uint64(c.Nonzeros))
	binary.LittleEndian.PutUint64(buf[32:], uint64(len(raw)))
	binary.LittleEndian.PutUint64(buf[40:], uint64(len(stored)))
	binary.LittleEndian.PutUint32(buf[48:], hash.CRC32C(stored))

	return append(buf, stored...), nil
}

func payloadLen(nnz, majorLen int) int {
	return (2*nnz + majorLen + 1) * 8
}

// Unmarshal decodes a frame produced by Marshal and validates the result.
func Unmarshal(data []byte) (*sparse.Compressed, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}
	if [4]byte(data[0:4]) != magic {
		return nil, ErrMagic
	}

	format := sparse.Major(data[4])
	compression := Compression(data[5])

	var dims [5]int
	for i := range dims {
		v, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(data[8+8*i:]))
		if err != nil {
			return nil, fmt.Errorf("codec: header field %d: %w", i, err)
		}
		dims[i] = v
	}
	rows, cols, nnz, rawLen, storedLen := dims[0], dims[1], dims[2], dims[3], dims[4]

	if rawLen > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, rawLen)
	}
	if len(data)-headerSize != storedLen {
		return nil, fmt.Errorf("%w: payload has %d bytes, header says %d", ErrTruncated, len(data)-headerSize, storedLen)
	}

	stored := data[headerSize:]
	if hash.CRC32C(stored) != binary.LittleEndian.Uint32(data[48:]) {
		return nil, ErrChecksum
	}

	majorLen := cols
	if format == sparse.Row {
		majorLen = rows
	}
	if nnz > MaxPayload/16 || majorLen > MaxPayload/8 || rawLen != payloadLen(nnz, majorLen) {
		return nil, fmt.Errorf("%w: payload of %d bytes for nnz=%d major=%d", sparse.ErrLength, rawLen, nnz, majorLen)
	}

	raw, err := decompress(stored, compression, rawLen)
	if err != nil {
		return nil, fmt.Errorf("codec: decompress %s: %w", compression, err)
	}

	c := &sparse.Compressed{
		Rows:     rows,
		Columns:  cols,
		Nonzeros: nnz,
		Format:   format,
		Values:   make([]float64, nnz),
		Indices:  make([]int, nnz),
		Offsets:  make([]int, majorLen+1),
	}

	p := raw
	for i := range c.Values {
		c.Values[i] = math.Float64frombits(binary.LittleEndian.Uint64(p))
		p = p[8:]
	}
	for _, dst := range [][]int{c.Indices, c.Offsets} {
		for i := range dst {
			v, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(p))
			if err != nil {
				return nil, err
			}
			dst[i] = v
			p = p[8:]
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
