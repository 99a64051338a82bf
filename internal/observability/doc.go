// Package observability groups the catalog's structured logging, Prometheus
// metrics and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: slog construction and context propagation
//   - metrics: Prometheus gauges, counters and histograms for catalog operations
//   - tracing: the catalog tracer and span helpers
package observability
