//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rides_delete_test
package rides_delete

import (
	"context"

	"courier-booking/internal/entities"
	"courier-booking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ResetAll(ctx context.Context) []entities.Ride
}
