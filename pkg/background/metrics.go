package background

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
	resultPanic = "panic"
)

var (
	TaskRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "background_task_runs_total",
			Help: "Periodic task runs by task and result",
		},
		[]string{"task", "result"},
	)

	TaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "background_task_duration_seconds",
			Help:    "Periodic task run duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"task"},
	)
)
