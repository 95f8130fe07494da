package timeout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RequestDeadlineExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "samecity",
		Name:      "http_request_deadline_exceeded_total",
		Help:      "Requests whose context deadline expired before the handler returned",
	},
	[]string{"route"},
)
