// Package observability provides logging and tracing infrastructure for the
// event extraction service.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - tracing: OpenTelemetry tracing integration
//
// Prometheus metrics live next to the code that records them (the HTTP
// handler package and the extractor package) rather than here.
package observability
