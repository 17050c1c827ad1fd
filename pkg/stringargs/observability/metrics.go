package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records substitution metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordApply records one substitution call: its duration, how many
	// placeholders were resolved and left unresolved, and its error status.
	RecordApply(ctx context.Context, duration time.Duration, replaced, unresolved int, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	calls      metric.Int64Counter
	latency    metric.Float64Histogram
	replaced   metric.Int64Counter
	unresolved metric.Int64Counter
	errors     metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the shared OTel metrics instance.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("stringargs")

	calls, err := meter.Int64Counter("stringargs.apply.calls",
		metric.WithDescription("Number of substitution calls"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("stringargs.apply.latency_ms",
		metric.WithDescription("Substitution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	replaced, err := meter.Int64Counter("stringargs.placeholders.replaced",
		metric.WithDescription("Number of placeholders resolved from the mapping"),
	)
	if err != nil {
		return nil, err
	}

	unresolved, err := meter.Int64Counter("stringargs.placeholders.unresolved",
		metric.WithDescription("Number of placeholders whose name was not in the mapping"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("stringargs.apply.errors",
		metric.WithDescription("Number of substitution calls that returned an error"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		calls:      calls,
		latency:    latency,
		replaced:   replaced,
		unresolved: unresolved,
		errors:     errs,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordApply records one substitution call.
func (m *otelMetrics) RecordApply(ctx context.Context, duration time.Duration, replaced, unresolved int, err error) {
	attrs := metric.WithAttributes(attribute.Bool("success", err == nil))

	m.calls.Add(ctx, 1, attrs)
	m.latency.Record(ctx, Milliseconds(duration), attrs)
	if replaced > 0 {
		m.replaced.Add(ctx, int64(replaced))
	}
	if unresolved > 0 {
		m.unresolved.Add(ctx, int64(unresolved))
	}
	if err != nil {
		m.errors.Add(ctx, 1)
	}
}
