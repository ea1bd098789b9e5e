package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"courier-booking/internal/entities"
	"courier-booking/internal/service/ride"
	"courier-booking/pkg/logger"

	"github.com/jonboulle/clockwork"
)

const (
	resultDispatched  = "dispatched"
	resultCapacity    = "capacity_exceeded"
	resultNoCourier   = "no_courier"
	resultInterrupted = "interrupted"
	resultError       = "error"
)

// Simulator имитирует поиск курьера: ждет задержку, выбирает свободного курьера
// и регистрирует поездку.
type Simulator struct {
	log      simulatorLogger
	roster   Roster
	registry Registry
	matcher  Matcher
	seeder   Seeder
	clock    clockwork.Clock
	delay    time.Duration
	counter  atomic.Uint64
}

func New(
	log simulatorLogger,
	roster Roster,
	registry Registry,
	matcher Matcher,
	seeder Seeder,
	clock clockwork.Clock,
	delay time.Duration,
) *Simulator {
	return &Simulator{
		log:      log.With(logger.NewField("component", "dispatch_simulator")),
		roster:   roster,
		registry: registry,
		matcher:  matcher,
		seeder:   seeder,
		clock:    clock,
		delay:    delay,
	}
}

func (s *Simulator) Dispatch(ctx context.Context, order entities.Order) (entities.Ride, error) {
	start := s.clock.Now()

	dispatched, err := s.dispatch(ctx, order)

	DispatchDuration.Observe(s.clock.Since(start).Seconds())
	DispatchAttemptsTotal.WithLabelValues(resultLabel(err)).Inc()

	if err != nil {
		s.log.Warn("dispatch rejected",
			logger.NewField("pickup", order.PickupAddress),
			logger.NewField("error", err),
		)
		return entities.Ride{}, err
	}

	s.log.Info("courier dispatched",
		logger.NewField("ride_id", dispatched.ID),
		logger.NewField("courier_id", dispatched.Courier.ID),
		logger.NewField("courier", dispatched.Courier.Name),
	)
	return dispatched, nil
}

func (s *Simulator) dispatch(ctx context.Context, order entities.Order) (entities.Ride, error) {
	if s.registry.ActiveCount() >= s.registry.Capacity() {
		return entities.Ride{}, ErrCapacityExceeded
	}

	if err := s.wait(ctx); err != nil {
		return entities.Ride{}, fmt.Errorf("search courier: %w", err)
	}

	couriers, err := s.roster.GetCouriers(ctx)
	if err != nil {
		return entities.Ride{}, fmt.Errorf("get couriers: %w", err)
	}

	// каждая неудачная попытка из-за занятого курьера исключает его из кандидатов
	for attempt := 0; attempt <= len(couriers); attempt++ {
		if s.registry.ActiveCount() >= s.registry.Capacity() {
			return entities.Ride{}, ErrCapacityExceeded
		}

		candidates := available(couriers, s.registry.BusyCourierIDs())
		if len(candidates) == 0 {
			return entities.Ride{}, ErrNoCourierAvailable
		}

		courier := s.matcher.Match(order, candidates)
		now := s.clock.Now()

		added, err := s.registry.Add(entities.Ride{
			ID:              s.nextID(now),
			Courier:         courier,
			Order:           order.Clone(),
			CourierPosition: s.seeder.Seed(order, courier),
			Status:          entities.RideActive,
			CreatedAt:       now,
		})
		switch {
		case err == nil:
			return added, nil
		case errors.Is(err, ride.ErrCourierBusy):
			s.log.Info("courier taken concurrently, retrying",
				logger.NewField("courier_id", courier.ID),
			)
			continue
		case errors.Is(err, ride.ErrCapacityExceeded):
			return entities.Ride{}, fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
		default:
			return entities.Ride{}, fmt.Errorf("register ride: %w", err)
		}
	}

	return entities.Ride{}, ErrNoCourierAvailable
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := s.clock.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

// nextID склеивает время создания в миллисекундах и счетчик процесса.
func (s *Simulator) nextID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.FormatUint(s.counter.Add(1), 10)
}

func available(couriers []entities.Courier, busy map[int64]struct{}) []entities.Courier {
	candidates := make([]entities.Courier, 0, len(couriers))
	for _, courier := range couriers {
		if _, ok := busy[courier.ID]; !ok {
			candidates = append(candidates, courier)
		}
	}
	return candidates
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultDispatched
	case errors.Is(err, ErrCapacityExceeded):
		return resultCapacity
	case errors.Is(err, ErrNoCourierAvailable):
		return resultNoCourier
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return resultInterrupted
	default:
		return resultError
	}
}
