package prometheus

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/supermatrix"
	"github.com/hupe1980/supermatrix/native"
)

// Collector implements supermatrix.MetricsCollector with Prometheus metrics.
type Collector struct {
	teardowns        *prom.CounterVec
	teardownDuration prom.Histogram
	releases         *prom.CounterVec
	conversions      *prom.CounterVec
	convertDuration  prom.Histogram
	convertNonzeros  prom.Histogram
	leaks            *prom.CounterVec
}

var _ supermatrix.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewCollector(reg prom.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	c := &Collector{
		teardowns: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "teardowns_total",
			Help:      "Total native records torn down on Close",
		}, []string{"storage", "freed"}),
		teardownDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "teardown_duration_seconds",
			Help:      "Latency of native destroy routines",
			Buckets:   prom.ExponentialBuckets(1e-7, 10, 8),
		}),
		releases: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "releases_total",
			Help:      "Total native records released without teardown",
		}, []string{"storage"}),
		conversions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Total ToCompressed calls by outcome",
		}, []string{"outcome"}),
		convertDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Latency of ToCompressed calls",
			Buckets:   prom.ExponentialBuckets(1e-6, 10, 8),
		}),
		convertNonzeros: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_nonzeros",
			Help:      "Nonzeros copied per successful conversion",
			Buckets:   prom.ExponentialBuckets(1, 10, 9),
		}),
		leaks: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "leaks_total",
			Help:      "Matrices reclaimed by the garbage collector without Close or Release",
		}, []string{"storage"}),
	}

	for _, m := range []prom.Collector{
		c.teardowns,
		c.teardownDuration,
		c.releases,
		c.conversions,
		c.convertDuration,
		c.convertNonzeros,
		c.leaks,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Collector) RecordTeardown(storage native.StorageType, freed bool, duration time.Duration) {
	c.teardowns.WithLabelValues(storage.String(), strconv.FormatBool(freed)).Inc()
	if freed {
		c.teardownDuration.Observe(duration.Seconds())
	}
}

func (c *Collector) RecordRelease(storage native.StorageType) {
	c.releases.WithLabelValues(storage.String()).Inc()
}

func (c *Collector) RecordConvert(outcome supermatrix.ConvertOutcome, nonzeros int, duration time.Duration) {
	c.conversions.WithLabelValues(outcome.String()).Inc()
	c.convertDuration.Observe(duration.Seconds())
	if outcome == supermatrix.OutcomeConverted {
		c.convertNonzeros.Observe(float64(nonzeros))
	}
}

func (c *Collector) RecordLeak(storage native.StorageType) {
	c.leaks.WithLabelValues(storage.String()).Inc()
}
