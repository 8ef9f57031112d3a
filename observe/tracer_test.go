package observe

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// TestFlowMeta_SpanName verifies the deterministic span name format.
func TestFlowMeta_SpanName(t *testing.T) {
	tests := []struct {
		name     string
		meta     FlowMeta
		expected string
	}{
		{name: "login", meta: FlowMeta{Name: "login"}, expected: "auth.flow.login"},
		{name: "create post", meta: FlowMeta{Name: "create_post"}, expected: "auth.flow.create_post"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.meta.SpanName(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

// recordedTracer returns a Tracer whose spans are captured in memory.
func recordedTracer() (Tracer, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return NewTracer(tp.Tracer("test")), recorder
}

// TestTracer_SpanAttributes verifies flow attributes are present on the span.
func TestTracer_SpanAttributes(t *testing.T) {
	tr, recorder := recordedTracer()

	_, span := tr.StartSpan(context.Background(), FlowMeta{Name: "login", Subject: "alice"})
	tr.EndSpan(span, nil)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	got := spans[0]
	if got.Name() != "auth.flow.login" {
		t.Errorf("expected span name 'auth.flow.login', got %q", got.Name())
	}

	attrs := make(map[string]string)
	for _, kv := range got.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["flow.name"] != "login" {
		t.Errorf("expected flow.name='login', got %q", attrs["flow.name"])
	}
	if attrs["flow.subject"] != "alice" {
		t.Errorf("expected flow.subject='alice', got %q", attrs["flow.subject"])
	}
}

// TestTracer_EndSpanSuccess verifies OK status on success.
func TestTracer_EndSpanSuccess(t *testing.T) {
	tr, recorder := recordedTracer()

	_, span := tr.StartSpan(context.Background(), FlowMeta{Name: "register"})
	tr.EndSpan(span, nil)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status().Code != codes.Ok {
		t.Errorf("expected status Ok, got %v", spans[0].Status().Code)
	}
}

// TestTracer_EndSpanError verifies error status and attributes on failure.
func TestTracer_EndSpanError(t *testing.T) {
	tr, recorder := recordedTracer()

	_, span := tr.StartSpan(context.Background(), FlowMeta{Name: "login"})
	tr.EndSpan(span, errors.New("invalid credentials"))

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	got := spans[0]
	if got.Status().Code != codes.Error {
		t.Errorf("expected status Error, got %v", got.Status().Code)
	}

	var errorAttr bool
	for _, kv := range got.Attributes() {
		if kv.Key == attribute.Key("flow.error") && kv.Value.AsBool() {
			errorAttr = true
		}
	}
	if !errorAttr {
		t.Error("expected flow.error=true attribute")
	}

	if len(got.Events()) == 0 {
		t.Error("expected a recorded error event")
	}
}

// TestNopTracer_NoPanic verifies the no-op tracer is safe to use.
func TestNopTracer_NoPanic(t *testing.T) {
	tr := NewNopTracer()

	ctx, span := tr.StartSpan(context.Background(), FlowMeta{Name: "noop"})
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	tr.EndSpan(span, errors.New("ignored"))
}
