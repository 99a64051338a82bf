package config

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoadTimestamp is the Unix time of the last configuration load.
	LoadTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_config_load_timestamp",
		Help: "Unix timestamp of the last configuration load",
	})

	// FallbacksTotal counts fallbacks applied per environment variable.
	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_config_fallbacks_total",
			Help: "Total number of configuration fallbacks by field",
		},
		[]string{"field"},
	)

	// FallbackActive is 1 when the last load applied at least one fallback.
	FallbackActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_config_fallback_active",
		Help: "Whether the current configuration uses any fallback value (1) or not (0)",
	})
)

func recordFallback(field string) {
	FallbacksTotal.WithLabelValues(field).Inc()
}

func recordLoad(fallbackActive bool) {
	LoadTimestamp.Set(float64(time.Now().Unix()))
	if fallbackActive {
		FallbackActive.Set(1)
		return
	}
	FallbackActive.Set(0)
}
