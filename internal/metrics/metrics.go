// Package metrics defines the Prometheus instruments the API exposes on
// /metrics. Instruments are registered once at package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, route pattern and
	// status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ganhospro_http_requests_total",
		Help: "Number of HTTP requests handled, by method, route and status.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ganhospro_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds, by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// RecordsStored tracks the current size of the in-memory record history.
	RecordsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ganhospro_records_stored",
		Help: "Number of run records currently held in the store.",
	})

	// InsightRequests counts AI analysis calls by outcome.
	InsightRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ganhospro_insight_requests_total",
		Help: "Number of AI insight generations attempted, by outcome.",
	}, []string{"outcome"})
)
