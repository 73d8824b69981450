// Package metrics registers the Prometheus instruments for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchesTotal counts provider fetch attempts by outcome
	// (success, fallback_cache, fallback_sample).
	FetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tenderpulse",
		Name:      "provider_fetches_total",
		Help:      "Provider fetch attempts by outcome.",
	}, []string{"outcome"})

	// ExportsTotal counts export attempts by format and outcome
	// (success, empty, error).
	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tenderpulse",
		Name:      "exports_total",
		Help:      "Export attempts by format and outcome.",
	}, []string{"format", "outcome"})

	// ExportedRows counts rows written across successful exports.
	ExportedRows = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tenderpulse",
		Name:      "exported_rows_total",
		Help:      "Rows written across successful exports.",
	})
)
