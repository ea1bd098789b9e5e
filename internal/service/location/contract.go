//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_test
package location

import (
	"context"

	"courier-booking/internal/entities"
	"courier-booking/pkg/geo"
	"courier-booking/pkg/logger"
)

type selectionLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Geocoder внешний сервис геокодирования. Все вызовы best-effort.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, point geo.Point) (string, error)
	Search(ctx context.Context, query string) (geo.Point, error)
}

type DraftStore interface {
	Location(target entities.LocationTarget) (entities.Location, error)
	SetLocation(target entities.LocationTarget, location entities.Location) error
}
