package dto

import (
	"courier-booking/internal/entities"
	"courier-booking/pkg/geo"
)

func FromPoint(p geo.Point) Point {
	return Point{Lat: p.Lat, Lng: p.Lng}
}

func FromLocation(l entities.Location) *Location {
	if !l.IsSet() {
		return nil
	}
	return &Location{Address: l.Address, Lat: l.Point.Lat, Lng: l.Point.Lng}
}

func FromPending(p entities.PendingLocation) PendingLocation {
	res := PendingLocation{
		Target:    p.Target.String(),
		Address:   p.Address,
		Resolving: p.Resolving,
	}
	if p.Point != nil {
		res.Lat = p.Point.Lat
		res.Lng = p.Point.Lng
		res.HasPoint = true
	}
	return res
}

func FromContact(c entities.Contact) Contact {
	return Contact{Phone: c.Phone, WhatsApp: c.WhatsApp, Email: c.Email}
}

func (c ContactRequest) ToDomain() entities.Contact {
	return entities.Contact{Phone: c.Phone, WhatsApp: c.WhatsApp, Email: c.Email}
}

func FromCourier(c entities.Courier) Courier {
	return Courier{
		ID:                  c.ID,
		Name:                c.Name,
		Phone:               c.Phone,
		Rating:              c.Rating,
		CompletedDeliveries: c.CompletedDeliveries,
		VehicleKind:         c.VehicleKind.String(),
	}
}

func FromCouriers(couriers []entities.Courier) []Courier {
	res := make([]Courier, 0, len(couriers))
	for _, c := range couriers {
		res = append(res, FromCourier(c))
	}
	return res
}

func FromRide(r entities.Ride) Ride {
	return Ride{
		ID:              r.ID,
		Status:          r.Status.String(),
		Courier:         FromCourier(r.Courier),
		CourierPosition: FromPoint(r.CourierPosition),
		PickupAddress:   r.Order.PickupAddress,
		Pickup:          FromPoint(r.Order.Pickup),
		DropoffAddress:  r.Order.DropoffAddress,
		Dropoff:         FromPoint(r.Order.Dropoff),
		PackageType:     r.Order.PackageType.String(),
		CreatedAt:       r.CreatedAt,
	}
}

func FromRides(rides []entities.Ride) []Ride {
	res := make([]Ride, 0, len(rides))
	for _, r := range rides {
		res = append(res, FromRide(r))
	}
	return res
}

func FromTracking(tracking []entities.RideTracking) []RideTracking {
	res := make([]RideTracking, 0, len(tracking))
	for _, t := range tracking {
		res = append(res, RideTracking{
			Ride:       FromRide(t.Ride),
			DistanceKm: t.DistanceKm,
			EtaMinutes: t.EtaMinutes,
		})
	}
	return res
}

func FromCelebration(c entities.Celebration) Celebration {
	return Celebration{
		ID:              c.ID,
		RideID:          c.RideID,
		Courier:         FromCourier(c.Courier),
		Bursts:          fromParticles(c.Bursts),
		Confetti:        fromParticles(c.Confetti),
		BurstsVisible:   c.BurstsVisible,
		ConfettiVisible: c.ConfettiVisible,
	}
}

func fromParticles(particles []entities.Particle) []Particle {
	res := make([]Particle, 0, len(particles))
	for _, p := range particles {
		res = append(res, Particle{X: p.X, Y: p.Y})
	}
	return res
}
