package provider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Duration of courier provider requests",
			Buckets: []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "method", "outcome"},
	)

	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_errors_total",
			Help: "Total number of failed courier provider requests",
		},
		[]string{"provider", "method", "kind"},
	)
)
