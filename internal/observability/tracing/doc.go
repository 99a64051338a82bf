// Package tracing provides OpenTelemetry tracing integration.
//
// Spans are created through the global tracer provider, so they are no-ops
// until a provider is installed with otel.SetTracerProvider.
//
// Example usage:
//
//	func (s *Service) Articles(ctx context.Context, id uuid.UUID) (_ []*entity.Article, err error) {
//	    ctx, span := tracing.StartSpan(ctx, "magazine.Articles")
//	    defer func() { tracing.EndSpan(span, err) }()
//	    ...
//	}
package tracing
