package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records engine flow outcomes.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly; recording is fire-and-forget.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordFlow records one flow invocation. errKind classifies the
	// failure (rate_limited, invalid_credentials, forbidden, ...) and
	// is empty on success.
	RecordFlow(ctx context.Context, meta FlowMeta, duration time.Duration, errKind string)
}

// flowMetrics is the concrete implementation of Metrics.
type flowMetrics struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewFlowMetrics creates a Metrics instance with the given meter.
func NewFlowMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"auth.flow.total",
		metric.WithDescription("Total number of flow invocations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"auth.flow.errors",
		metric.WithDescription("Total number of flow failures by kind"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"auth.flow.duration_ms",
		metric.WithDescription("Flow duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &flowMetrics{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

// RecordFlow records counters and duration for one flow invocation.
func (m *flowMetrics) RecordFlow(ctx context.Context, meta FlowMeta, duration time.Duration, errKind string) {
	attrs := []attribute.KeyValue{
		attribute.String("flow", meta.Name),
	}
	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)

	if errKind != "" {
		m.errorCount.Add(ctx, 1, metric.WithAttributes(
			attribute.String("flow", meta.Name),
			attribute.String("kind", errKind),
		))
	}

	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

// NopMetrics returns a Metrics that records nothing.
func NopMetrics() Metrics {
	return &noopMetrics{}
}

func (m *noopMetrics) RecordFlow(ctx context.Context, meta FlowMeta, duration time.Duration, errKind string) {
}

// Ensure implementations satisfy Metrics
var (
	_ Metrics = (*flowMetrics)(nil)
	_ Metrics = (*noopMetrics)(nil)
)
