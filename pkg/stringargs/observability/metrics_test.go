package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest installs a test meter provider and returns its reader.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	originalProvider := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	cleanup := func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	}

	return reader, cleanup
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumValue adds up every data point of an int64 counter.
func sumValue(t *testing.T, m *metricdata.Metrics) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "Expected Sum type")
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestNewMetricsRecorder(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)

	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "Expected real metrics recorder, got noop")
}

func TestRecordApply(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordApply(ctx, 2*time.Millisecond, 3, 1, nil)
	m.RecordApply(ctx, time.Millisecond, 0, 2, errors.New("undefined variables: a, b"))

	rm := collectMetrics(t, reader)

	t.Run("counts calls", func(t *testing.T) {
		metric := findMetric(rm, "stringargs.apply.calls")
		require.NotNil(t, metric)
		assert.Equal(t, int64(2), sumValue(t, metric))
	})

	t.Run("records latency", func(t *testing.T) {
		metric := findMetric(rm, "stringargs.apply.latency_ms")
		require.NotNil(t, metric)

		hist, ok := metric.Data.(metricdata.Histogram[float64])
		require.True(t, ok, "Expected Histogram type")
		require.NotEmpty(t, hist.DataPoints)
	})

	t.Run("counts replaced and unresolved placeholders", func(t *testing.T) {
		replaced := findMetric(rm, "stringargs.placeholders.replaced")
		require.NotNil(t, replaced)
		assert.Equal(t, int64(3), sumValue(t, replaced))

		unresolved := findMetric(rm, "stringargs.placeholders.unresolved")
		require.NotNil(t, unresolved)
		assert.Equal(t, int64(3), sumValue(t, unresolved))
	})

	t.Run("counts errors", func(t *testing.T) {
		metric := findMetric(rm, "stringargs.apply.errors")
		require.NotNil(t, metric)
		assert.Equal(t, int64(1), sumValue(t, metric))
	})
}
