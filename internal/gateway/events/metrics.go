package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ride_events_published_total",
		Help: "Ride lifecycle events sent to Kafka",
	},
	[]string{"type", "result"},
)
