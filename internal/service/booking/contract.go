//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"

	"courier-booking/internal/entities"
	"courier-booking/pkg/logger"
)

type sessionLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Draft interface {
	Snapshot() entities.BookingDraft
	Advance() (entities.BookingStep, bool)
	Back() (entities.BookingStep, bool)
	SetPackage(packageType entities.PackageType, image []byte) error
	SetContact(contact entities.Contact)
	Freeze() (entities.Order, error)
	Reset()
	RestoreForRepeat(order entities.Order)
}

type Selection interface {
	Pending() (entities.PendingLocation, bool)
	Cancel()
}

type Dispatcher interface {
	Dispatch(ctx context.Context, order entities.Order) (entities.Ride, error)
}

type Registry interface {
	Cancel(id string) (entities.Ride, bool)
	CancelAll() []entities.Ride
	ActiveCount() int
	Capacity() int
}

type Notifier interface {
	Celebrate(ride entities.Ride) entities.Celebration
	Clear()
}

// EventPublisher доставляет события жизненного цикла поездки во внешнюю систему.
type EventPublisher interface {
	Publish(ctx context.Context, event entities.RideEvent) error
}
