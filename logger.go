package supermatrix

import (
	"log/slog"
	"os"

	"github.com/hupe1980/supermatrix/native"
)

// Logger wraps slog.Logger with supermatrix-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithStorage adds the storage tag to the logger.
func (l *Logger) WithStorage(s native.StorageType) *Logger {
	return &Logger{
		Logger: l.Logger.With("storage", s.String()),
	}
}

// LogTeardown logs the end of a Close. freed is false when the storage tag
// has no destroy routine.
func (l *Logger) LogTeardown(s native.StorageType, freed bool) {
	if !freed {
		l.Warn("teardown skipped: no destroy routine for storage",
			"storage", s.String(),
		)
		return
	}
	l.Debug("teardown completed",
		"storage", s.String(),
	)
}

// LogRelease logs a transfer of ownership back to the caller.
func (l *Logger) LogRelease(s native.StorageType) {
	l.Debug("ownership released",
		"storage", s.String(),
	)
}

// LogConvert logs a ToCompressed call.
func (l *Logger) LogConvert(m *native.SuperMatrix, nonzeros int, err error) {
	attrs := []any{
		"storage", m.Stype.String(),
		"numeric", m.Dtype.String(),
		"matrix", m.Mtype.String(),
	}
	if err != nil {
		l.Debug("conversion declined", append(attrs, "error", err)...)
		return
	}
	l.Debug("conversion completed", append(attrs, "nonzeros", nonzeros)...)
}

// LogLeak logs a matrix reclaimed by the garbage collector instead of an
// explicit Close or Release.
func (l *Logger) LogLeak(s native.StorageType, freed bool) {
	l.Warn("matrix reclaimed without Close or Release",
		"storage", s.String(),
		"freed", freed,
	)
}
