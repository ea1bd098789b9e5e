package rides_stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StreamConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rides_stream_connections",
			Help: "Number of open ride tracking websocket connections",
		},
	)

	StreamSnapshotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rides_stream_snapshots_total",
			Help: "Total number of tracking snapshots pushed to websocket clients",
		},
		[]string{"result"},
	)
)
