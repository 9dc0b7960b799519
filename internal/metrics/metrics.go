// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ModelCalls counts completed upstream model calls by task and outcome.
	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingua_model_calls_total",
			Help: "Total number of upstream model calls",
		},
		[]string{"provider", "task", "status"},
	)

	// ModelCallDuration observes upstream model latency.
	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lingua_model_call_duration_seconds",
			Help:    "Duration of upstream model calls in seconds",
			Buckets: []float64{0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
		},
		[]string{"provider", "task"},
	)

	// NormalizeFallbacks counts model replies that had to be replaced by a
	// fallback structure.
	NormalizeFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingua_normalize_fallback_total",
			Help: "Total number of model replies replaced by a fallback shape",
		},
		[]string{"mode", "reason"},
	)

	// HistoryWriteFailures counts persistence errors that were logged and swallowed.
	HistoryWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingua_history_write_failures_total",
			Help: "Total number of history rows that could not be written",
		},
		[]string{"table"},
	)
)
