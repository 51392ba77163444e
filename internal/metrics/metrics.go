package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the resolution service

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rosetta_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rosetta_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// Resolution metrics. Outcome is one of team, player, market, none,
	// error.
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rosetta_resolutions_total",
			Help: "Total number of resolution requests by outcome",
		},
		[]string{"outcome"},
	)

	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rosetta_resolution_duration_seconds",
			Help:    "Duration of catalog resolution in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// Store metrics
	StoreHealthy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rosetta_store_healthy",
			Help: "Whether the catalog store answered the last health check (1/0)",
		},
	)
)
