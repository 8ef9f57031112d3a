package observe

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// HTTPMiddleware wraps HTTP handlers with tracing, metrics, and
// request logging.
//
// Contract:
//   - Concurrency: Wrap() returns a handler safe for concurrent use.
//   - Context: the request context is propagated through the span.
//   - Errors: handler panics are not recovered here; mount a recoverer
//     further out.
type HTTPMiddleware struct {
	tracer   trace.Tracer
	logger   Logger
	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// NewHTTPMiddleware creates an HTTPMiddleware from an Observer.
func NewHTTPMiddleware(obs Observer) (*HTTPMiddleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	requests, err := obs.Meter().Int64Counter(
		"http.server.requests",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := obs.Meter().Float64Histogram(
		"http.server.duration_ms",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMiddleware{
		tracer:   obs.Tracer(),
		logger:   obs.Logger(),
		requests: requests,
		latency:  latency,
	}, nil
}

// Wrap instruments the handler.
func (m *HTTPMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.path", r.URL.Path),
			),
		)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(ctx))

		duration := time.Since(start)

		span.SetAttributes(attribute.Int("http.status_code", rec.status))
		if rec.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(rec.status))
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()

		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.Int("status", rec.status),
		)
		m.requests.Add(ctx, 1, attrs)
		m.latency.Record(ctx, float64(duration.Milliseconds()), attrs)

		fields := []Field{
			{Key: "method", Value: r.Method},
			{Key: "path", Value: r.URL.Path},
			{Key: "status", Value: rec.status},
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}
		if rec.status >= http.StatusInternalServerError {
			m.logger.Error(ctx, "request failed", fields...)
		} else {
			m.logger.Info(ctx, "request completed", fields...)
		}
	})
}

// statusRecorder captures the response status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
