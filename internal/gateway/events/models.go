package events

import (
	"time"

	"courier-booking/internal/entities"
	"courier-booking/pkg/geo"
)

// rideEventMessage формат сообщения в топике событий поездок.
// Изображение посылки в событие не попадает.
type rideEventMessage struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Ride       rideBody  `json:"ride"`
}

type rideBody struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	CourierID       int64     `json:"courier_id"`
	CourierName     string    `json:"courier_name"`
	CourierPosition geo.Point `json:"courier_position"`
	PickupAddress   string    `json:"pickup_address"`
	Pickup          geo.Point `json:"pickup"`
	DropoffAddress  string    `json:"dropoff_address"`
	Dropoff         geo.Point `json:"dropoff"`
	PackageType     string    `json:"package_type"`
	CreatedAt       time.Time `json:"created_at"`
}

func toMessage(event entities.RideEvent) rideEventMessage {
	ride := event.Ride
	return rideEventMessage{
		ID:         event.ID,
		Type:       event.Type.String(),
		OccurredAt: event.OccurredAt.UTC(),
		Ride: rideBody{
			ID:              ride.ID,
			Status:          ride.Status.String(),
			CourierID:       ride.Courier.ID,
			CourierName:     ride.Courier.Name,
			CourierPosition: ride.CourierPosition,
			PickupAddress:   ride.Order.PickupAddress,
			Pickup:          ride.Order.Pickup,
			DropoffAddress:  ride.Order.DropoffAddress,
			Dropoff:         ride.Order.Dropoff,
			PackageType:     ride.Order.PackageType.String(),
			CreatedAt:       ride.CreatedAt.UTC(),
		},
	}
}
