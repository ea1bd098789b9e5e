//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"courier-booking/internal/entities"
	"courier-booking/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (entities.Courier, error)
	GetAll(ctx context.Context) ([]entities.Courier, error)
}

type RosterWriter interface {
	Upsert(ctx context.Context, courier entities.Courier) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ContactLinker строит ссылку для связи с курьером по номеру телефона.
type ContactLinker interface {
	Link(phone string) (string, error)
}
