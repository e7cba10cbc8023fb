// Package telemetry implements the tracing port on OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"github.com/objdelta/objdelta/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ ports.Tracer = (*OTelTracer)(nil)

// OTelTracer is a concrete implementation of ports.Tracer using
// OpenTelemetry. With no SDK provider installed it degrades to no-op
// spans, which keeps tracing free for library consumers.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a tracer with the given instrumentation name.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{tracer: otel.Tracer(name)}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)
	s := &otelSpan{span: span}
	for key, value := range cfg.Attributes {
		s.SetAttribute(key, value)
	}
	return ctx, s
}

type otelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *otelSpan) End() {
	s.span.End()
}

// RecordError records an error and marks the span as failed.
func (s *otelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *otelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case uint64:
		s.span.SetAttributes(attribute.Int64(key, int64(v)))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprint(v)))
	}
}
