// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the catalog's metrics:
//   - Registry sizes (authors, magazines, articles)
//   - Operation outcomes by operation name
//   - Validation failures by entity and field
//   - Relationship query latency
//
// All metrics are registered with the Prometheus default registry.
//
// Example usage:
//
//	start := time.Now()
//	articles, err := repo.ListByMagazine(ctx, id)
//	metrics.RecordQueryDuration("magazine_articles", time.Since(start))
//	metrics.RecordOperation("magazine_articles", err)
package metrics
