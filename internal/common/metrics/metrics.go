package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Total number of backend analysis requests by outcome",
		},
		[]string{"operation", "outcome"},
	)

	BackendFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_fallbacks_total",
			Help: "Total number of fail-open fallback results served",
		},
		[]string{"operation", "error_code"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "backend_request_duration_seconds",
			Help: "Duration of backend requests in seconds",
		},
		[]string{"operation"},
	)

	HealthProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "health_probes_total",
			Help: "Total number of health probes by result",
		},
		[]string{"result", "trigger"},
	)
)
