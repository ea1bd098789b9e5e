package ride

import (
	"context"
	"fmt"
	"sync"

	"courier-booking/internal/entities"
	"courier-booking/pkg/geo"
	"courier-booking/pkg/logger"
)

// Registry хранит активные поездки и для каждой запускает задачу движения курьера.
//
// Поездка удаляется из реестра под блокировкой, а ее задача останавливается уже после
// снятия блокировки: тик, ожидающий блокировку, увидит отсутствие поездки и ничего не запишет.
type Registry struct {
	log       registryLogger
	scheduler Scheduler
	tasks     MotionTaskFactory
	maxRides  int
	approach  float64

	mu    sync.Mutex
	rides map[string]*entities.Ride
	order []string
}

func New(
	log registryLogger,
	scheduler Scheduler,
	tasks MotionTaskFactory,
	maxRides int,
	approach float64,
) *Registry {
	return &Registry{
		log:       log.With(logger.NewField("component", "ride_registry")),
		scheduler: scheduler,
		tasks:     tasks,
		maxRides:  maxRides,
		approach:  approach,
		rides:     make(map[string]*entities.Ride),
	}
}

// Add добавляет поездку, повторно проверяя лимит и занятость курьера.
func (r *Registry) Add(ride entities.Ride) (entities.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.rides) >= r.maxRides {
		return entities.Ride{}, fmt.Errorf("add ride %q: %w", ride.ID, ErrCapacityExceeded)
	}
	if _, ok := r.rides[ride.ID]; ok {
		return entities.Ride{}, fmt.Errorf("add ride %q: %w", ride.ID, ErrRideExists)
	}
	for _, active := range r.rides {
		if active.Courier.ID == ride.Courier.ID {
			return entities.Ride{}, fmt.Errorf("add ride for courier %d: %w", ride.Courier.ID, ErrCourierBusy)
		}
	}

	stored := ride.Clone()
	stored.Status = entities.RideActive
	stored.MotionTicks = 0

	id := stored.ID
	task := r.tasks.NewMotionTask(id, func(ctx context.Context) error {
		return r.Move(ctx, id)
	})
	if err := r.scheduler.Start(id, task); err != nil {
		return entities.Ride{}, fmt.Errorf("start motion for ride %q: %w", id, err)
	}

	r.rides[id] = &stored
	r.order = append(r.order, id)
	ActiveRides.Set(float64(len(r.rides)))

	r.log.Info("ride added",
		logger.NewField("ride_id", id),
		logger.NewField("courier_id", stored.Courier.ID),
		logger.NewField("active", len(r.rides)),
	)
	return stored.Clone(), nil
}

// Cancel удаляет поездку и синхронно останавливает ее движение.
// Для отсутствующей поездки ничего не делает и возвращает false.
func (r *Registry) Cancel(id string) (entities.Ride, bool) {
	r.mu.Lock()
	ride, ok := r.rides[id]
	if ok {
		r.removeLocked(id)
	}
	r.mu.Unlock()

	if !ok {
		return entities.Ride{}, false
	}

	r.scheduler.Stop(id)
	RidesCancelledTotal.Inc()

	cancelled := ride.Clone()
	cancelled.Status = entities.RideCancelled

	r.log.Info("ride cancelled",
		logger.NewField("ride_id", id),
		logger.NewField("courier_id", cancelled.Courier.ID),
	)
	return cancelled, true
}

// CancelAll удаляет все поездки и возвращает их в порядке создания.
func (r *Registry) CancelAll() []entities.Ride {
	r.mu.Lock()
	cancelled := make([]entities.Ride, 0, len(r.order))
	for _, id := range r.order {
		ride := r.rides[id].Clone()
		ride.Status = entities.RideCancelled
		cancelled = append(cancelled, ride)
	}
	r.rides = make(map[string]*entities.Ride)
	r.order = nil
	ActiveRides.Set(0)
	r.mu.Unlock()

	for _, ride := range cancelled {
		r.scheduler.Stop(ride.ID)
	}

	if len(cancelled) > 0 {
		RidesCancelledTotal.Add(float64(len(cancelled)))
		r.log.Info("all rides cancelled", logger.NewField("count", len(cancelled)))
	}
	return cancelled
}

func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.rides)
}

func (r *Registry) Capacity() int {
	return r.maxRides
}

// BusyCourierIDs возвращает курьеров, занятых активными поездками.
func (r *Registry) BusyCourierIDs() map[int64]struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	busy := make(map[int64]struct{}, len(r.rides))
	for _, ride := range r.rides {
		busy[ride.Courier.ID] = struct{}{}
	}
	return busy
}

// List возвращает поездки в порядке создания.
func (r *Registry) List() []entities.Ride {
	r.mu.Lock()
	defer r.mu.Unlock()

	rides := make([]entities.Ride, 0, len(r.order))
	for _, id := range r.order {
		rides = append(rides, r.rides[id].Clone())
	}
	return rides
}

func (r *Registry) Get(id string) (entities.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ride, ok := r.rides[id]
	if !ok {
		return entities.Ride{}, fmt.Errorf("get ride %q: %w", id, ErrRideNotFound)
	}
	return ride.Clone(), nil
}

// Tracking возвращает для каждой поездки расстояние от курьера до точки забора и ETA.
func (r *Registry) Tracking() []entities.RideTracking {
	rides := r.List()

	tracking := make([]entities.RideTracking, 0, len(rides))
	for _, ride := range rides {
		distance := geo.HaversineKm(ride.CourierPosition, ride.Order.Pickup)
		tracking = append(tracking, entities.RideTracking{
			Ride:       ride,
			DistanceKm: distance,
			EtaMinutes: geo.EstimateEtaMinutes(distance),
		})
	}
	return tracking
}

// Move сдвигает курьера на долю оставшегося расстояния до точки забора.
// Тик, опоздавший к отмене поездки или остановке задачи, ничего не меняет и ошибкой не считается.
func (r *Registry) Move(ctx context.Context, id string) error {
	if ctx.Err() != nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ride, ok := r.rides[id]
	if !ok {
		return nil
	}

	ride.CourierPosition = geo.StepToward(ride.CourierPosition, ride.Order.Pickup, r.approach)
	ride.MotionTicks++
	RideMotionTicksTotal.Inc()
	return nil
}

// removeLocked вызывается под r.mu.
func (r *Registry) removeLocked(id string) {
	delete(r.rides, id)
	for i, orderID := range r.order {
		if orderID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	ActiveRides.Set(float64(len(r.rides)))
}
