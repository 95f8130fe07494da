package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	lookupHit   = "hit"
	lookupMiss  = "miss"
	lookupError = "error"
)

var GeocodeCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "samecity",
		Name:      "geocode_cache_lookups_total",
		Help:      "Geocode cache lookups by result",
	},
	[]string{"result"},
)
