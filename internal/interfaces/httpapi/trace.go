package httpapi

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("octofit-tracker/internal/interfaces/httpapi")

// startSpan opens a child span for a handler. Requests the tracing middleware
// filtered out (health checks, /metrics) carry no parent and get no span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
