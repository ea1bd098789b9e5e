package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_dispatch_attempts_total",
			Help: "Total number of dispatch attempts by result",
		},
		[]string{"result"},
	)

	DispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "booking_dispatch_duration_seconds",
			Help:    "Duration of dispatch including the simulated courier search",
			Buckets: []float64{.01, .05, .1, .5, 1, 2, 3, 5, 10},
		},
	)
)
