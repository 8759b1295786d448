// Package metrics holds the Prometheus collectors shared by the pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderFallbacks counts data providers that answered with a marker or synthetic record.
	ProviderFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "locatie",
			Subsystem: "provider",
			Name:      "fallback_total",
			Help:      "count of provider lookups that degraded to a marker or synthetic record",
		},
		[]string{"provider"},
	)

	// NarrativeSources counts which stage of the fallback chain produced each narrative.
	NarrativeSources = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "locatie",
			Subsystem: "narrative",
			Name:      "source_total",
			Help:      "count of generated narratives by provider and producing stage",
		},
		[]string{"provider", "source"},
	)

	// RequestDuration tracks handler latency per route.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "locatie",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "latency of HTTP requests by method, route and status",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "route", "status"},
	)
)

// ProviderFallback records a degraded provider lookup.
func ProviderFallback(provider string) {
	ProviderFallbacks.WithLabelValues(provider).Inc()
}

// NarrativeSource records the stage that produced a narrative.
func NarrativeSource(provider, source string) {
	NarrativeSources.WithLabelValues(provider, source).Inc()
}
