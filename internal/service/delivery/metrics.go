package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_transitions_total",
			Help: "Total number of delivery order transitions by operation and resulting status",
		},
		[]string{"operation", "status"},
	)

	DispatchFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_dispatch_failures_total",
			Help: "Total number of provider dispatch failures recorded on sales orders",
		},
		[]string{"provider"},
	)

	WebhookOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_webhook_outcomes_total",
			Help: "Total number of provider notifications by outcome",
		},
		[]string{"provider", "outcome"},
	)

	PendingDispatchFailures = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivery_pending_dispatch_failures",
			Help: "Sales orders whose last provider dispatch failed and awaits an operator",
		},
	)
)
