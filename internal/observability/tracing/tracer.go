// Package tracing provides OpenTelemetry tracing integration for HTTP
// requests and extraction calls.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the sendtocal application.
var tracer = otel.Tracer("sendtocal")

// GetTracer returns the global tracer for creating spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "extract-event")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
