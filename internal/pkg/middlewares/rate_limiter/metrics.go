package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "samecity",
		Name:      "rate_limit_exceeded_total",
		Help:      "Webhook requests rejected by the per-provider token bucket",
	},
	[]string{"route", "key"},
)
