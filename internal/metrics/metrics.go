// Package metrics registers the service's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by path and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nigelapi_http_requests_total",
		Help: "Total HTTP requests served.",
	}, []string{"path", "status"})

	// RequestDuration observes request latency by path.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nigelapi_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// CalculationsTotal counts Nigel Number calculations by result source.
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nigelapi_calculations_total",
		Help: "Completed calculations by source (cache or sieve).",
	}, []string{"source"})
)
