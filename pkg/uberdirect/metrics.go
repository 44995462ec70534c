package uberdirect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "uber_direct_request_duration_seconds",
			Help:    "Duration of Uber Direct API calls",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "operation", "status"},
	)

	ClientErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uber_direct_errors_total",
			Help: "Total number of failed Uber Direct API calls by error kind",
		},
		[]string{"service", "operation", "kind"},
	)
)
