package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry size metrics mirror the number of registered entities
var (
	// AuthorsTotal tracks the number of registered authors
	AuthorsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_authors_total",
			Help: "Number of registered authors",
		},
	)

	// MagazinesTotal tracks the number of registered magazines
	MagazinesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_magazines_total",
			Help: "Number of registered magazines",
		},
	)

	// ArticlesTotal tracks the number of registered articles
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_articles_total",
			Help: "Number of registered articles",
		},
	)
)

// Operation metrics track use case calls
var (
	// OperationsTotal counts service operations by name and result
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "Total number of catalog operations",
		},
		[]string{"operation", "result"}, // result: success, invalid, immutable, not_found, error
	)

	// ValidationFailuresTotal counts rejected input by entity and field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total number of validation failures",
		},
		[]string{"entity", "field"},
	)

	// QueryDuration measures relationship query duration
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Relationship query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"query"},
	)
)
