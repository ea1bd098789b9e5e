package roster

import (
	"context"
	"fmt"
	"slices"

	"courier-booking/internal/entities"
	"courier-booking/internal/service/courier"
)

// Reference справочник курьеров по умолчанию.
func Reference() []entities.Courier {
	return []entities.Courier{
		{
			ID:                  1,
			Name:                "Ebuka Okonkwo",
			Phone:               "07059865233",
			Rating:              4.9,
			CompletedDeliveries: 1234,
			VehicleKind:         entities.Bike,
		},
		{
			ID:                  2,
			Name:                "Chioma Adeleke",
			Phone:               "08012345678",
			Rating:              4.8,
			CompletedDeliveries: 892,
			VehicleKind:         entities.Car,
		},
		{
			ID:                  3,
			Name:                "Ahmed Ibrahim",
			Phone:               "09087654321",
			Rating:              4.7,
			CompletedDeliveries: 2156,
			VehicleKind:         entities.Bike,
		},
	}
}

// Repository неизменяемый справочник курьеров в памяти.
type Repository struct {
	couriers []entities.Courier
}

func New(couriers []entities.Courier) *Repository {
	return &Repository{couriers: slices.Clone(couriers)}
}

func (r *Repository) GetAll(context.Context) ([]entities.Courier, error) {
	return slices.Clone(r.couriers), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (entities.Courier, error) {
	for _, c := range r.couriers {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Courier{}, fmt.Errorf("courier %d: %w", id, courier.ErrCourierNotFound)
}
