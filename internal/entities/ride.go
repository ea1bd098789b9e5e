package entities

import (
	"time"

	"courier-booking/pkg/geo"
)

type RideStatus string

const (
	RideActive    RideStatus = "active"
	RideCancelled RideStatus = "cancelled"
)

func (s RideStatus) String() string {
	return string(s)
}

type Ride struct {
	ID              string
	Courier         Courier
	Order           Order
	CourierPosition geo.Point
	Status          RideStatus
	CreatedAt       time.Time
	MotionTicks     int
}

func (r Ride) Clone() Ride {
	clone := r
	clone.Order = r.Order.Clone()
	return clone
}

// RideTracking это проекция поездки для экрана отслеживания.
type RideTracking struct {
	Ride       Ride
	DistanceKm float64
	EtaMinutes int
}

type Particle struct {
	X float64
	Y float64
}

type Celebration struct {
	ID              string
	RideID          string
	Courier         Courier
	Bursts          []Particle
	Confetti        []Particle
	BurstsVisible   bool
	ConfettiVisible bool
	CreatedAt       time.Time
}

func (c Celebration) Clone() Celebration {
	clone := c
	clone.Bursts = append([]Particle(nil), c.Bursts...)
	clone.Confetti = append([]Particle(nil), c.Confetti...)
	return clone
}

type RideEventType string

const (
	EventRideDispatched RideEventType = "ride.dispatched"
	EventRideCancelled  RideEventType = "ride.cancelled"
)

func (t RideEventType) String() string {
	return string(t)
}

type RideEvent struct {
	ID         string
	Type       RideEventType
	Ride       Ride
	OccurredAt time.Time
}
