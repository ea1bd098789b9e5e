package booking

import (
	"context"
	"fmt"
	"sync"

	"courier-booking/internal/entities"
	"courier-booking/pkg/geo"
	"courier-booking/pkg/logger"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type Pricing struct {
	DeliveryPrice int64
	Currency      string
}

// Summary состояние бронирования для экрана клиента.
type Summary struct {
	Draft       entities.BookingDraft
	Pending     *entities.PendingLocation
	DistanceKm  float64
	EtaMinutes  int
	Price       int64
	Currency    string
	ActiveRides int
	MaxRides    int
	Submitting  bool
	MapCenter   geo.Point
}

// Session единственный владелец состояния бронирования: черновика, поездок,
// уведомления и последнего отправленного заказа.
type Session struct {
	log        sessionLogger
	draft      Draft
	selection  Selection
	dispatcher Dispatcher
	registry   Registry
	notifier   Notifier
	publisher  EventPublisher
	clock      clockwork.Clock
	pricing    Pricing
	mapCenter  geo.Point

	mu         sync.Mutex
	submitting bool
	lastOrder  *entities.Order
}

func New(
	log sessionLogger,
	draft Draft,
	selection Selection,
	dispatcher Dispatcher,
	registry Registry,
	notifier Notifier,
	publisher EventPublisher,
	clock clockwork.Clock,
	pricing Pricing,
	mapCenter geo.Point,
) *Session {
	return &Session{
		log:        log.With(logger.NewField("component", "booking_session")),
		draft:      draft,
		selection:  selection,
		dispatcher: dispatcher,
		registry:   registry,
		notifier:   notifier,
		publisher:  publisher,
		clock:      clock,
		pricing:    pricing,
		mapCenter:  mapCenter,
	}
}

// Advance переводит черновик на следующий шаг, если выполнены условия текущего.
func (s *Session) Advance() (entities.BookingStep, bool) {
	return s.draft.Advance()
}

func (s *Session) Back() (entities.BookingStep, bool) {
	return s.draft.Back()
}

func (s *Session) SetPackage(packageType entities.PackageType, image []byte) error {
	return s.draft.SetPackage(packageType, image)
}

func (s *Session) SetContact(contact entities.Contact) {
	s.draft.SetContact(contact)
}

// Submit отправляет черновик на назначение курьера. При любом отказе черновик сохраняется.
func (s *Session) Submit(ctx context.Context) (entities.Ride, error) {
	order, err := s.beginSubmit()
	if err != nil {
		return entities.Ride{}, err
	}
	defer s.endSubmit()

	dispatched, err := s.dispatcher.Dispatch(ctx, order)
	if err != nil {
		return entities.Ride{}, fmt.Errorf("dispatch: %w", err)
	}

	s.mu.Lock()
	s.draft.Reset()
	s.lastOrder = &order
	s.mu.Unlock()

	s.notifier.Celebrate(dispatched)
	s.publish(ctx, entities.EventRideDispatched, dispatched)

	s.log.Info("booking submitted",
		logger.NewField("ride_id", dispatched.ID),
		logger.NewField("courier_id", dispatched.Courier.ID),
	)
	return dispatched, nil
}

// Submitting сообщает, идет ли сейчас назначение курьера.
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submitting
}

// CancelRide отменяет поездку только после явного подтверждения.
// Отмена отсутствующей поездки ничего не делает: found=false без ошибки.
func (s *Session) CancelRide(ctx context.Context, id string, confirmed bool) (cancelled entities.Ride, found bool, err error) {
	if !confirmed {
		return entities.Ride{}, false, ErrConfirmationRequired
	}

	cancelled, found = s.registry.Cancel(id)
	if !found {
		return entities.Ride{}, false, nil
	}

	s.publish(ctx, entities.EventRideCancelled, cancelled)
	return cancelled, true, nil
}

// RepeatLastBooking заполняет черновик адресами и посылкой последнего заказа.
func (s *Session) RepeatLastBooking() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastOrder == nil {
		return ErrNoPreviousBooking
	}

	s.selection.Cancel()
	s.draft.RestoreForRepeat(*s.lastOrder)
	return nil
}

// ResetDraft сбрасывает черновик и незавершенный выбор точки, поездки не трогает.
func (s *Session) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Cancel()
	s.draft.Reset()
}

// ResetAll отменяет все поездки и возвращает сессию в исходное состояние.
func (s *Session) ResetAll(ctx context.Context) []entities.Ride {
	cancelled := s.registry.CancelAll()

	s.mu.Lock()
	s.selection.Cancel()
	s.draft.Reset()
	s.lastOrder = nil
	s.mu.Unlock()

	s.notifier.Clear()

	for _, ride := range cancelled {
		s.publish(ctx, entities.EventRideCancelled, ride)
	}

	s.log.Info("booking reset", logger.NewField("cancelled_rides", len(cancelled)))
	return cancelled
}

func (s *Session) Summary() Summary {
	snapshot := s.draft.Snapshot()
	distance := geo.DistanceKm(snapshot.Pickup.Point, snapshot.Dropoff.Point)

	summary := Summary{
		Draft:       snapshot,
		DistanceKm:  distance,
		EtaMinutes:  geo.EstimateEtaMinutes(distance),
		Price:       s.pricing.DeliveryPrice,
		Currency:    s.pricing.Currency,
		ActiveRides: s.registry.ActiveCount(),
		MaxRides:    s.registry.Capacity(),
		Submitting:  s.Submitting(),
		MapCenter:   s.mapCenter,
	}
	if pending, ok := s.selection.Pending(); ok {
		summary.Pending = &pending
	}
	return summary
}

func (s *Session) beginSubmit() (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return entities.Order{}, ErrDispatchInProgress
	}

	order, err := s.draft.Freeze()
	if err != nil {
		return entities.Order{}, fmt.Errorf("freeze draft: %w", err)
	}

	s.submitting = true
	return order, nil
}

func (s *Session) endSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
}

// publish не влияет на результат операции: ошибка доставки события только логируется.
func (s *Session) publish(ctx context.Context, eventType entities.RideEventType, ride entities.Ride) {
	event := entities.RideEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Ride:       ride,
		OccurredAt: s.clock.Now(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish ride event",
			logger.NewField("event_type", eventType.String()),
			logger.NewField("ride_id", ride.ID),
			logger.NewField("error", err),
		)
	}
}
