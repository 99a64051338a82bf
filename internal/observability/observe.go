package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
)

// Start opens a span for operation and returns a finish func that ends it,
// counts the outcome in catalog_operations_total and logs failures at debug level.
//
//	ctx, done := observability.Start(ctx, "magazine.Update")
//	defer func() { done(err) }()
func Start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := tracing.StartSpan(ctx, operation, attrs...)
	return ctx, func(err error) {
		tracing.EndSpan(span, err)
		metrics.RecordOperation(operation, err)
		if err != nil {
			logging.FromContext(ctx).Debug("operation failed",
				slog.String("operation", operation),
				slog.String("result", metrics.ClassifyResult(err)),
				slog.Any("error", err))
		}
	}
}
