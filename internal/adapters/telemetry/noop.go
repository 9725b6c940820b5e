package telemetry

import (
	"context"

	"go.trai.ch/stylecache/internal/core/ports"
)

// NoOpTracer is a tracer that does nothing.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that records nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noOpSpan{}
}

type noOpSpan struct{}

func (noOpSpan) End()                         {}
func (noOpSpan) RecordError(error)            {}
func (noOpSpan) SetAttribute(_ string, _ any) {}
