package supermatrix

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/supermatrix/native"
)

// ConvertOutcome classifies the result of a ToCompressed call.
type ConvertOutcome uint8

const (
	// OutcomeConverted means a Compressed matrix was produced.
	OutcomeConverted ConvertOutcome = iota
	// OutcomeNotApplicable means the tag triple has no conversion.
	OutcomeNotApplicable
	// OutcomeNotImplemented means the call panicked with NotImplementedError.
	OutcomeNotImplemented
	// OutcomeRejected means the Matrix was closed or released.
	OutcomeRejected
)

func (o ConvertOutcome) String() string {
	switch o {
	case OutcomeConverted:
		return "converted"
	case OutcomeNotApplicable:
		return "not_applicable"
	case OutcomeNotImplemented:
		return "not_implemented"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see the
// metrics/prometheus package for a Prometheus implementation.
type MetricsCollector interface {
	// RecordTeardown is called after each Close that owned the record.
	// freed is false when the storage tag has no destroy routine.
	RecordTeardown(storage native.StorageType, freed bool, duration time.Duration)

	// RecordRelease is called after each successful Release.
	RecordRelease(storage native.StorageType)

	// RecordConvert is called after each ToCompressed call, including the
	// ones that panic. nonzeros is zero unless outcome is OutcomeConverted.
	RecordConvert(outcome ConvertOutcome, nonzeros int, duration time.Duration)

	// RecordLeak is called when the garbage collector reclaims a Matrix
	// that was never closed or released.
	RecordLeak(storage native.StorageType)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTeardown(native.StorageType, bool, time.Duration) {}
func (NoopMetricsCollector) RecordRelease(native.StorageType)                       {}
func (NoopMetricsCollector) RecordConvert(ConvertOutcome, int, time.Duration)       {}
func (NoopMetricsCollector) RecordLeak(native.StorageType)                          {}

const numStorageTypes = int(native.StorageCompRowLocal) + 1

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TeardownCount         atomic.Int64
	TeardownSkipped       atomic.Int64
	TeardownTotalNanos    atomic.Int64
	ReleaseCount          atomic.Int64
	ConvertCount          atomic.Int64
	ConvertNotApplicable  atomic.Int64
	ConvertNotImplemented atomic.Int64
	ConvertRejected       atomic.Int64
	ConvertedNonzeros     atomic.Int64
	ConvertTotalNanos     atomic.Int64
	LeakCount             atomic.Int64

	teardownsByStorage [numStorageTypes]atomic.Int64
}

// RecordTeardown implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTeardown(storage native.StorageType, freed bool, duration time.Duration) {
	b.TeardownCount.Add(1)
	b.TeardownTotalNanos.Add(duration.Nanoseconds())
	if !freed {
		b.TeardownSkipped.Add(1)
	}
	if storage >= 0 && int(storage) < numStorageTypes {
		b.teardownsByStorage[storage].Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(native.StorageType) {
	b.ReleaseCount.Add(1)
}

// RecordConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvert(outcome ConvertOutcome, nonzeros int, duration time.Duration) {
	b.ConvertTotalNanos.Add(duration.Nanoseconds())
	switch outcome {
	case OutcomeConverted:
		b.ConvertCount.Add(1)
		b.ConvertedNonzeros.Add(int64(nonzeros))
	case OutcomeNotApplicable:
		b.ConvertNotApplicable.Add(1)
	case OutcomeNotImplemented:
		b.ConvertNotImplemented.Add(1)
	case OutcomeRejected:
		b.ConvertRejected.Add(1)
	}
}

// RecordLeak implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLeak(native.StorageType) {
	b.LeakCount.Add(1)
}

// TeardownsFor returns the number of teardowns recorded for one storage tag.
func (b *BasicMetricsCollector) TeardownsFor(storage native.StorageType) int64 {
	if storage < 0 || int(storage) >= numStorageTypes {
		return 0
	}
	return b.teardownsByStorage[storage].Load()
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TeardownCount:         b.TeardownCount.Load(),
		TeardownSkipped:       b.TeardownSkipped.Load(),
		TeardownAvgNanos:      avg(b.TeardownTotalNanos.Load(), b.TeardownCount.Load()),
		ReleaseCount:          b.ReleaseCount.Load(),
		ConvertCount:          b.ConvertCount.Load(),
		ConvertNotApplicable:  b.ConvertNotApplicable.Load(),
		ConvertNotImplemented: b.ConvertNotImplemented.Load(),
		ConvertRejected:       b.ConvertRejected.Load(),
		ConvertedNonzeros:     b.ConvertedNonzeros.Load(),
		LeakCount:             b.LeakCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TeardownCount         int64
	TeardownSkipped       int64
	TeardownAvgNanos      int64
	ReleaseCount          int64
	ConvertCount          int64
	ConvertNotApplicable  int64
	ConvertNotImplemented int64
	ConvertRejected       int64
	ConvertedNonzeros     int64
	LeakCount             int64
}
