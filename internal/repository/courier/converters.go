package courier

import (
	"courier-booking/internal/entities"
)

func ToDomain(c *CourierDB) entities.Courier {
	return entities.Courier{
		ID:                  c.ID,
		Name:                c.Name,
		Phone:               c.Phone,
		Rating:              c.Rating,
		CompletedDeliveries: c.CompletedDeliveries,
		VehicleKind:         entities.VehicleKind(c.VehicleKind),
	}
}

func FromDomain(c entities.Courier) CourierDB {
	return CourierDB{
		ID:                  c.ID,
		Name:                c.Name,
		Phone:               c.Phone,
		Rating:              c.Rating,
		CompletedDeliveries: c.CompletedDeliveries,
		VehicleKind:         c.VehicleKind.String(),
	}
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i := range couriersDB {
		result[i] = ToDomain(&couriersDB[i])
	}
	return result
}
