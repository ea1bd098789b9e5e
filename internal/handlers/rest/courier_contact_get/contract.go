//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_contact_get_test
package courier_contact_get

import (
	"context"

	"courier-booking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ContactLink(ctx context.Context, id int64) (string, error)
}
