package fee

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var FeeComputationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fee_computations_total",
		Help: "Total number of delivery fee computations by outcome",
	},
	[]string{"outcome"},
)
