//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"courier-booking/internal/entities"
	"courier-booking/pkg/geo"
	"courier-booking/pkg/logger"
)

type simulatorLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Roster interface {
	GetCouriers(ctx context.Context) ([]entities.Courier, error)
}

type Registry interface {
	ActiveCount() int
	Capacity() int
	BusyCourierIDs() map[int64]struct{}
	Add(ride entities.Ride) (entities.Ride, error)
}

// Matcher выбирает курьера из непустого списка свободных.
type Matcher interface {
	Match(order entities.Order, candidates []entities.Courier) entities.Courier
}

// Seeder задает стартовую позицию курьера для новой поездки.
type Seeder interface {
	Seed(order entities.Order, courier entities.Courier) geo.Point
}
