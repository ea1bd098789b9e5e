//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"courier-booking/internal/gateway/nominatim"
	"courier-booking/internal/handlers/tasks/ride_motion"
	"courier-booking/internal/pkg/config"
	"courier-booking/internal/pkg/contact"
	bookingService "courier-booking/internal/service/booking"
	courierService "courier-booking/internal/service/courier"
	dispatchService "courier-booking/internal/service/dispatch"
	draftService "courier-booking/internal/service/draft"
	locationService "courier-booking/internal/service/location"
	notificationService "courier-booking/internal/service/notification"
	rideService "courier-booking/internal/service/ride"
	"courier-booking/pkg/background"
	"courier-booking/pkg/logger"

	"github.com/google/wire"
	"github.com/jonboulle/clockwork"
)

// InitializeApplication собирает сессию бронирования. Источник справочника курьеров,
// кэш геокодера и публикатор событий выбираются в cmd/service по конфигу.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	clock clockwork.Clock,
	roster courierService.Repository,
	cache nominatim.Cache,
	publisher bookingService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideBackgroundWorkers,
		provideMotionFactory,
		provideRideRegistry,

		draftService.New,
		provideGeocoderClient,
		provideGeocoder,
		provideSelection,

		provideContactNormalizer,
		provideServiceCourier,

		dispatchService.NewUniformMatcher,
		provideSeeder,
		provideDispatcher,

		provideNotificationCenter,
		provideSession,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceBooking), new(*bookingService.Session)),
		wire.Bind(new(ServiceLocation), new(*locationService.Selection)),
		wire.Bind(new(ServiceRides), new(*rideService.Registry)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Center)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),

		wire.Bind(new(rideService.Scheduler), new(*background.Worker)),
		wire.Bind(new(rideService.MotionTaskFactory), new(*ride_motion.Factory)),

		wire.Bind(new(locationService.Geocoder), new(*nominatim.Gateway)),
		wire.Bind(new(locationService.DraftStore), new(*draftService.Draft)),

		wire.Bind(new(courierService.ContactLinker), new(*contact.Normalizer)),

		wire.Bind(new(dispatchService.Roster), new(*courierService.Courier)),
		wire.Bind(new(dispatchService.Registry), new(*rideService.Registry)),
		wire.Bind(new(dispatchService.Matcher), new(*dispatchService.UniformMatcher)),
		wire.Bind(new(dispatchService.Seeder), new(*dispatchService.OffsetSeeder)),

		wire.Bind(new(bookingService.Draft), new(*draftService.Draft)),
		wire.Bind(new(bookingService.Selection), new(*locationService.Selection)),
		wire.Bind(new(bookingService.Dispatcher), new(*dispatchService.Simulator)),
		wire.Bind(new(bookingService.Registry), new(*rideService.Registry)),
		wire.Bind(new(bookingService.Notifier), new(*notificationService.Center)),
	)
	return &Application{}, nil
}
