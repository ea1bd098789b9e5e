package ride

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveRides = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "booking_active_rides",
			Help: "Number of rides currently tracked",
		},
	)

	RideMotionTicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_ride_motion_ticks_total",
			Help: "Total number of courier motion steps applied",
		},
	)

	RidesCancelledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_rides_cancelled_total",
			Help: "Total number of rides cancelled by the customer",
		},
	)
)
