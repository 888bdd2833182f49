package supermatrix

import "github.com/hupe1980/supermatrix/native"

type options struct {
	library native.Library
	logger  *Logger
	metrics MetricsCollector
	cleanup bool
}

func defaultOptions() options {
	return options{
		library: DefaultLibrary(),
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
		cleanup: true,
	}
}

// Option configures Adopt.
type Option func(*options)

// WithLibrary selects the foreign library whose Destroy routines free the
// record. It must be the library that allocated it.
//
// If nil is passed, DefaultLibrary() is used.
func WithLibrary(lib native.Library) Option {
	return func(o *options) {
		if lib == nil {
			lib = DefaultLibrary()
		}
		o.library = lib
	}
}

// WithLogger configures structured logging of ownership events.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &supermatrix.BasicMetricsCollector{}
//	m := supermatrix.Adopt(raw, supermatrix.WithMetricsCollector(metrics))
//	defer m.Close()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithoutCleanup disables the garbage-collector safety net. Without it, a
// Matrix that is dropped without Close or Release leaks its native memory.
func WithoutCleanup() Option {
	return func(o *options) {
		o.cleanup = false
	}
}
