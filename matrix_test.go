package supermatrix

import (
	"bytes"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supermatrix/native"
	"github.com/hupe1980/supermatrix/native/offheap"
)

type mockLibrary struct {
	mock.Mock
}

func (l *mockLibrary) DestroyCompCol(m *native.SuperMatrix)         { l.Called(m) }
func (l *mockLibrary) DestroyCompColPermuted(m *native.SuperMatrix) { l.Called(m) }
func (l *mockLibrary) DestroyCompRow(m *native.SuperMatrix)         { l.Called(m) }
func (l *mockLibrary) DestroySuperNode(m *native.SuperMatrix)       { l.Called(m) }
func (l *mockLibrary) DestroyDense(m *native.SuperMatrix)           { l.Called(m) }

func withStype(s native.StorageType) any {
	return mock.MatchedBy(func(m *native.SuperMatrix) bool { return m.Stype == s })
}

func TestClose_DispatchesByStorage(t *testing.T) {
	tests := []struct {
		stype  native.StorageType
		method string
	}{
		{native.StorageCompCol, "DestroyCompCol"},
		{native.StorageCompColPermuted, "DestroyCompColPermuted"},
		{native.StorageCompRow, "DestroyCompRow"},
		{native.StorageSuperNode, "DestroySuperNode"},
		{native.StorageSuperNodePermuted, "DestroySuperNode"},
		{native.StorageSuperNodeRow, "DestroySuperNode"},
		{native.StorageDense, "DestroyDense"},
		{native.StorageCompRowLocal, ""},
		{native.StorageType(42), ""},
	}

	for _, tt := range tests {
		t.Run(tt.stype.String(), func(t *testing.T) {
			lib := new(mockLibrary)
			if tt.method != "" {
				lib.On(tt.method, withStype(tt.stype)).Once()
			}

			m := Adopt(native.SuperMatrix{Stype: tt.stype}, WithLibrary(lib), WithoutCleanup())
			require.NoError(t, m.Close())
			require.NoError(t, m.Close())

			lib.AssertExpectations(t)
			if tt.method == "" {
				lib.AssertNotCalled(t, "DestroyCompCol", mock.Anything)
				lib.AssertNotCalled(t, "DestroyDense", mock.Anything)
			}
		})
	}
}

func TestClose_Nil(t *testing.T) {
	var m *Matrix
	assert.NoError(t, m.Close())
}

func TestRelease(t *testing.T) {
	lib := new(mockLibrary)
	metrics := &BasicMetricsCollector{}
	raw := native.SuperMatrix{Stype: native.StorageDense, Dtype: native.Double, Nrow: 2, Ncol: 3}

	m := Adopt(raw, WithLibrary(lib), WithMetricsCollector(metrics))
	assert.True(t, m.Live())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Columns())

	got, err := m.Release()
	require.NoError(t, err)
	assert.Equal(t, raw, got)
	assert.False(t, m.Live())

	// Close after Release frees nothing.
	require.NoError(t, m.Close())
	lib.AssertNotCalled(t, "DestroyDense", mock.Anything)

	_, err = m.Release()
	require.ErrorIs(t, err, ErrReleased)
	_, err = m.Raw()
	require.ErrorIs(t, err, ErrReleased)

	assert.Equal(t, int64(1), metrics.ReleaseCount.Load())
	assert.Zero(t, metrics.TeardownCount.Load())
}

func TestRelease_AfterClose(t *testing.T) {
	lib := new(mockLibrary)
	lib.On("DestroyCompRow", withStype(native.StorageCompRow)).Once()

	m := Adopt(native.SuperMatrix{Stype: native.StorageCompRow}, WithLibrary(lib))
	require.NoError(t, m.Close())

	_, err := m.Release()
	require.ErrorIs(t, err, ErrClosed)
	_, err = m.Raw()
	require.ErrorIs(t, err, ErrClosed)

	lib.AssertExpectations(t)
}

func TestRaw(t *testing.T) {
	lib := new(mockLibrary)
	lib.On("DestroyCompCol", withStype(native.StorageCompCol)).Once()

	m := Adopt(native.SuperMatrix{Stype: native.StorageCompCol, Mtype: native.TriLower}, WithLibrary(lib))
	defer m.Close()

	raw, err := m.Raw()
	require.NoError(t, err)
	assert.Equal(t, native.TriLower, raw.Mtype)
	assert.Equal(t, native.StorageCompCol, m.StorageType())
	assert.Equal(t, native.Single, m.NumericType())
	assert.Equal(t, native.TriLower, m.MatrixType())
	assert.IsType(t, native.CompCol{}, m.Storage())
}

func TestReleaseThenAdopt(t *testing.T) {
	lib := offheap.New()
	raw, err := lib.CreateDense(2, 2, []float64{1, 2, 3, 4}, native.General)
	require.NoError(t, err)

	m := Adopt(raw, WithLibrary(lib))
	released, err := m.Release()
	require.NoError(t, err)
	assert.Positive(t, lib.Live())

	require.NoError(t, Adopt(released, WithLibrary(lib)).Close())
	assert.Zero(t, lib.Live())
}

func TestMetrics_Teardown(t *testing.T) {
	lib := new(mockLibrary)
	lib.On("DestroyDense", mock.Anything).Twice()
	metrics := &BasicMetricsCollector{}

	for _, stype := range []native.StorageType{native.StorageDense, native.StorageDense, native.StorageCompRowLocal} {
		m := Adopt(native.SuperMatrix{Stype: stype}, WithLibrary(lib), WithMetricsCollector(metrics), WithoutCleanup())
		require.NoError(t, m.Close())
	}

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.TeardownCount)
	assert.Equal(t, int64(1), stats.TeardownSkipped)
	assert.Equal(t, int64(2), metrics.TeardownsFor(native.StorageDense))
	assert.Equal(t, int64(1), metrics.TeardownsFor(native.StorageCompRowLocal))
	assert.Zero(t, metrics.TeardownsFor(native.StorageType(-1)))
	lib.AssertExpectations(t)
}

func TestLogger_Teardown(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	lib := new(mockLibrary)
	lib.On("DestroySuperNode", mock.Anything).Once()

	require.NoError(t, Adopt(native.SuperMatrix{Stype: native.StorageSuperNodeRow}, WithLibrary(lib), WithLogger(logger)).Close())
	require.NoError(t, Adopt(native.SuperMatrix{Stype: native.StorageCompRowLocal}, WithLibrary(lib), WithLogger(logger)).Close())

	out := buf.String()
	assert.Contains(t, out, `"msg":"teardown completed","storage":"SR"`)
	assert.Contains(t, out, `"msg":"teardown skipped: no destroy routine for storage","storage":"NR_loc"`)
}

func adoptAndDrop(lib native.Library, raw native.SuperMatrix, metrics MetricsCollector) {
	_ = Adopt(raw, WithLibrary(lib), WithMetricsCollector(metrics))
}

func TestCleanup_ReclaimsLeakedMatrix(t *testing.T) {
	lib := offheap.New()
	metrics := &BasicMetricsCollector{}

	raw, err := lib.CreateCompCol(2, 2, []float64{1, 2}, []int{0, 1}, []int{0, 1, 2}, native.General)
	require.NoError(t, err)
	adoptAndDrop(lib, raw, metrics)

	require.Eventually(t, func() bool {
		runtime.GC()
		return metrics.LeakCount.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Zero(t, lib.Live())
}

func TestCleanup_DisarmedByClose(t *testing.T) {
	lib := offheap.New()
	metrics := &BasicMetricsCollector{}

	raw, err := lib.CreateDense(1, 1, []float64{1}, native.General)
	require.NoError(t, err)

	func() {
		m := Adopt(raw, WithLibrary(lib), WithMetricsCollector(metrics))
		require.NoError(t, m.Close())
	}()

	for range 3 {
		runtime.GC()
	}
	time.Sleep(10 * time.Millisecond)

	assert.Zero(t, metrics.LeakCount.Load())
	assert.Equal(t, int64(1), metrics.TeardownCount.Load())
	assert.Zero(t, lib.Live())
}

func TestOptions_NilFallbacks(t *testing.T) {
	o := defaultOptions()
	for _, fn := range []Option{WithLibrary(nil), WithLogger(nil), WithMetricsCollector(nil)} {
		fn(&o)
	}
	assert.Equal(t, DefaultLibrary(), o.library)
	assert.NotNil(t, o.logger)
	assert.Equal(t, NoopMetricsCollector{}, o.metrics)
	assert.True(t, o.cleanup)
}
