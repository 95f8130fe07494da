package geocoder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GeocodeRetriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "samecity",
		Name:      "geocode_retries_total",
		Help:      "Geocoding calls repeated after a transport error or 5xx",
	},
)
