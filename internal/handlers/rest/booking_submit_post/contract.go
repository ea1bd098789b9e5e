//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_submit_post_test
package booking_submit_post

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
	Submit(ctx context.Context) (entities.Ride, error)
}
