package prometheus

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supermatrix"
	"github.com/hupe1980/supermatrix/native"
	"github.com/hupe1980/supermatrix/native/offheap"
)

func histogramCount(t *testing.T, reg *prom.Registry, name string) uint64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			require.Len(t, f.GetMetric(), 1)
			return f.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	return 0
}

func TestCollector_Record(t *testing.T) {
	reg := prom.NewRegistry()
	c, err := NewCollector(reg, "sm")
	require.NoError(t, err)

	c.RecordTeardown(native.StorageCompCol, true, time.Microsecond)
	c.RecordTeardown(native.StorageCompCol, true, time.Microsecond)
	c.RecordTeardown(native.StorageCompRowLocal, false, 0)
	c.RecordRelease(native.StorageDense)
	c.RecordConvert(supermatrix.OutcomeConverted, 4, time.Microsecond)
	c.RecordConvert(supermatrix.OutcomeNotApplicable, 0, time.Microsecond)
	c.RecordLeak(native.StorageSuperNode)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.teardowns.WithLabelValues("NC", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.teardowns.WithLabelValues("NR_loc", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.releases.WithLabelValues("DN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.conversions.WithLabelValues("converted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.conversions.WithLabelValues("not_applicable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.leaks.WithLabelValues("SC")))

	assert.Equal(t, uint64(2), histogramCount(t, reg, "sm_teardown_duration_seconds"))
	assert.Equal(t, uint64(2), histogramCount(t, reg, "sm_conversion_duration_seconds"))
	assert.Equal(t, uint64(1), histogramCount(t, reg, "sm_conversion_nonzeros"))
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prom.NewRegistry()
	_, err := NewCollector(reg, "sm")
	require.NoError(t, err)

	_, err = NewCollector(reg, "sm")
	var already prom.AlreadyRegisteredError
	require.ErrorAs(t, err, &already)
}

func TestCollector_WithMatrix(t *testing.T) {
	reg := prom.NewRegistry()
	c, err := NewCollector(reg, "sm")
	require.NoError(t, err)

	lib := offheap.New()
	raw, err := lib.CreateCompCol(3, 3,
		[]float64{1, 2, 3, 4},
		[]int{0, 2, 1, 2},
		[]int{0, 1, 2, 4},
		native.General,
	)
	require.NoError(t, err)

	m := supermatrix.Adopt(raw, supermatrix.WithLibrary(lib), supermatrix.WithMetricsCollector(c))
	_, err = supermatrix.ToCompressed(m)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	_, err = supermatrix.ToCompressed(m)
	require.ErrorIs(t, err, supermatrix.ErrClosed)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.teardowns.WithLabelValues("NC", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.conversions.WithLabelValues("converted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.conversions.WithLabelValues("rejected")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.conversions))
}
