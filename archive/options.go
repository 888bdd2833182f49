package archive

import (
	"github.com/hupe1980/supermatrix"
	"github.com/hupe1980/supermatrix/codec"
)

type options struct {
	compression codec.Compression
	concurrency int64
	ioLimit     int64
	logger      *supermatrix.Logger
}

func defaultOptions() options {
	return options{
		compression: codec.CompressionZSTD,
		concurrency: 4,
		logger:      supermatrix.NoopLogger(),
	}
}

// Option configures an Archive.
type Option func(*options)

// WithCompression sets the payload compression. Default is ZSTD.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithConcurrency bounds the workers used by PutAll and GetAll. Default is 4.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = int64(n)
		}
	}
}

// WithIOLimit caps store traffic at bytesPerSec. Zero means unlimited.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.ioLimit = bytesPerSec
	}
}

// WithLogger sets the logger.
func WithLogger(l *supermatrix.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = supermatrix.NoopLogger()
		}
		o.logger = l
	}
}
