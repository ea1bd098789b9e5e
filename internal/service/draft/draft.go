// Package draft хранит единственный черновик заказа и переключает шаги оформления.
package draft

import (
	"fmt"
	"sync"

	"courier-booking/internal/entities"
)

// Draft пошаговый автомат LOCATIONS -> CONTACT -> REVIEW.
// Переходы вперед защищены проверками; неуспешная проверка не меняет состояние.
type Draft struct {
	mu    sync.RWMutex
	state entities.BookingDraft
}

func New() *Draft {
	return &Draft{state: entities.NewBookingDraft()}
}

func (d *Draft) Snapshot() entities.BookingDraft {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.state.Clone()
}

func (d *Draft) Step() entities.BookingStep {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.state.Step
}

// Advance переводит черновик на следующий шаг, если выполнены условия текущего.
func (d *Draft) Advance() (entities.BookingStep, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state.Step {
	case entities.StepLocations:
		if !d.state.Pickup.IsSet() || !d.state.Dropoff.IsSet() {
			return d.state.Step, false
		}
		d.state.Step = entities.StepContact
	case entities.StepContact:
		if !d.state.Contact.Complete() {
			return d.state.Step, false
		}
		d.state.Step = entities.StepReview
	default:
		return d.state.Step, false
	}

	return d.state.Step, true
}

func (d *Draft) Back() (entities.BookingStep, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state.Step {
	case entities.StepContact:
		d.state.Step = entities.StepLocations
	case entities.StepReview:
		d.state.Step = entities.StepContact
	default:
		return d.state.Step, false
	}

	return d.state.Step, true
}

func (d *Draft) Location(target entities.LocationTarget) (entities.Location, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	switch target {
	case entities.TargetPickup:
		return d.state.Pickup.Clone(), nil
	case entities.TargetDropoff:
		return d.state.Dropoff.Clone(), nil
	default:
		return entities.Location{}, fmt.Errorf("location %q: %w", target, ErrUnknownTarget)
	}
}

func (d *Draft) SetLocation(target entities.LocationTarget, location entities.Location) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch target {
	case entities.TargetPickup:
		d.state.Pickup = location.Clone()
	case entities.TargetDropoff:
		d.state.Dropoff = location.Clone()
	default:
		return fmt.Errorf("set location %q: %w", target, ErrUnknownTarget)
	}
	return nil
}

// SetPackage сохраняет тип посылки и фото как есть, без проверки содержимого.
func (d *Draft) SetPackage(packageType entities.PackageType, image []byte) error {
	if !packageType.Valid() {
		return fmt.Errorf("set package %q: %w", packageType, ErrUnknownPackageType)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.state.PackageType = packageType
	if image != nil {
		d.state.PackageImage = append([]byte(nil), image...)
	} else {
		d.state.PackageImage = nil
	}
	return nil
}

// SetContact заменяет контакт. Неполный контакт на шаге REVIEW возвращает черновик на CONTACT.
func (d *Draft) SetContact(contact entities.Contact) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state.Contact = contact
	if d.state.Step == entities.StepReview && !contact.Complete() {
		d.state.Step = entities.StepContact
	}
}

// Freeze возвращает независимую копию заказа. Черновик должен стоять на шаге REVIEW.
func (d *Draft) Freeze() (entities.Order, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.state.Step != entities.StepReview {
		return entities.Order{}, fmt.Errorf("freeze at step %s: %w", d.state.Step, ErrNotReadyForReview)
	}
	if !d.state.Pickup.IsSet() || !d.state.Dropoff.IsSet() {
		return entities.Order{}, fmt.Errorf("freeze without locations: %w", ErrNotReadyForReview)
	}
	if !d.state.Contact.Complete() {
		return entities.Order{}, fmt.Errorf("freeze without contact: %w", ErrNotReadyForReview)
	}

	order := entities.Order{
		PickupAddress:  d.state.Pickup.Address,
		Pickup:         *d.state.Pickup.Point,
		DropoffAddress: d.state.Dropoff.Address,
		Dropoff:        *d.state.Dropoff.Point,
		PackageType:    d.state.PackageType,
		PackageImage:   d.state.PackageImage,
		Contact:        d.state.Contact,
	}
	return order.Clone(), nil
}

func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = entities.NewBookingDraft()
}

// RestoreForRepeat готовит черновик для повторной отправки той же посылки:
// адреса и посылка берутся из прошлого заказа, контакты очищаются, шаг сбрасывается на LOCATIONS.
func (d *Draft) RestoreForRepeat(order entities.Order) {
	order = order.Clone()
	pickup := order.Pickup
	dropoff := order.Dropoff

	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = entities.BookingDraft{
		Step:         entities.StepLocations,
		Pickup:       entities.Location{Address: order.PickupAddress, Point: &pickup},
		Dropoff:      entities.Location{Address: order.DropoffAddress, Point: &dropoff},
		PackageType:  order.PackageType,
		PackageImage: order.PackageImage,
	}
}
