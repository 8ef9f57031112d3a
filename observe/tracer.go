package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// FlowMeta identifies an engine flow for telemetry purposes.
type FlowMeta struct {
	Name    string // Flow name: register, login, create_post, ... (required)
	Subject string // Acting username, once known (optional)
}

// SpanName returns the deterministic span name for this flow.
// Format: auth.flow.<name>
func (m FlowMeta) SpanName() string {
	return "auth.flow." + m.Name
}

// Tracer wraps OpenTelemetry tracing with flow-specific span
// management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a flow.
	StartSpan(ctx context.Context, meta FlowMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with flow metadata as attributes.
// Subjects are usernames, not credentials, so they may appear on
// spans.
func (t *tracerImpl) StartSpan(ctx context.Context, meta FlowMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("flow.name", meta.Name),
	}
	if meta.Subject != "" {
		attrs = append(attrs, attribute.String("flow.subject", meta.Subject))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("flow.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// NewNopTracer creates a no-op tracer.
func NewNopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta FlowMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
