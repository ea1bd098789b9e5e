package app

import (
	"context"
	"net/http"

	"courier-booking/internal/gateway/nominatim"
	"courier-booking/internal/handlers/tasks/ride_motion"
	"courier-booking/internal/pkg/config"
	"courier-booking/internal/pkg/contact"
	bookingService "courier-booking/internal/service/booking"
	courierService "courier-booking/internal/service/courier"
	dispatchService "courier-booking/internal/service/dispatch"
	locationService "courier-booking/internal/service/location"
	notificationService "courier-booking/internal/service/notification"
	rideService "courier-booking/internal/service/ride"
	"courier-booking/pkg/background"
	"courier-booking/pkg/geo"
	"courier-booking/pkg/logger"

	"github.com/jonboulle/clockwork"
)

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, clock clockwork.Clock) *background.Worker {
	return background.New(ctx, log, clock)
}

func provideMotionFactory(cfg *config.Config) *ride_motion.Factory {
	return ride_motion.NewFactory(cfg.Booking.MotionTickInterval)
}

func provideRideRegistry(
	log logger.Logger,
	scheduler rideService.Scheduler,
	tasks rideService.MotionTaskFactory,
	cfg *config.Config,
) *rideService.Registry {
	return rideService.New(log, scheduler, tasks, cfg.Booking.MaxRides, cfg.Booking.MotionApproach)
}

func provideGeocoderClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Geocoder.Timeout}
}

func provideGeocoder(log logger.Logger, client *http.Client, cache nominatim.Cache, cfg *config.Config) *nominatim.Gateway {
	return nominatim.New(log, client, cache, nominatim.Config{
		BaseURL:   cfg.Geocoder.BaseURL,
		UserAgent: cfg.Geocoder.UserAgent,
		CacheTTL:  cfg.Geocoder.CacheTTL,
	})
}

func provideSelection(
	log logger.Logger,
	geocoder locationService.Geocoder,
	draft locationService.DraftStore,
	cfg *config.Config,
) *locationService.Selection {
	return locationService.New(log, geocoder, draft, cfg.Geocoder.Timeout)
}

func provideContactNormalizer(cfg *config.Config) *contact.Normalizer {
	return contact.NewNormalizer(cfg.Contact.CountryCode, cfg.Contact.TrunkPrefix, cfg.Contact.Message)
}

func provideServiceCourier(
	log logger.Logger,
	repository courierService.Repository,
	linker courierService.ContactLinker,
) *courierService.Courier {
	return courierService.New(log, repository, linker)
}

// provideSeeder ставит курьера на одинаковом смещении по широте и долготе от точки забора.
func provideSeeder(cfg *config.Config) *dispatchService.OffsetSeeder {
	offset := cfg.Booking.CourierStartOffset
	return dispatchService.NewOffsetSeeder(offset, offset)
}

func provideDispatcher(
	log logger.Logger,
	roster dispatchService.Roster,
	registry dispatchService.Registry,
	matcher dispatchService.Matcher,
	seeder dispatchService.Seeder,
	clock clockwork.Clock,
	cfg *config.Config,
) *dispatchService.Simulator {
	return dispatchService.New(log, roster, registry, matcher, seeder, clock, cfg.Booking.DispatchDelay)
}

func provideNotificationCenter(log logger.Logger, clock clockwork.Clock, cfg *config.Config) *notificationService.Center {
	return notificationService.New(log, clock, notificationService.Effects{
		BurstCount:    cfg.Celebration.BurstCount,
		BurstTTL:      cfg.Celebration.BurstTTL,
		ConfettiCount: cfg.Celebration.ConfettiCount,
		ConfettiTTL:   cfg.Celebration.ConfettiTTL,
	})
}

func provideSession(
	log logger.Logger,
	draft bookingService.Draft,
	selection bookingService.Selection,
	dispatcher bookingService.Dispatcher,
	registry bookingService.Registry,
	notifier bookingService.Notifier,
	publisher bookingService.EventPublisher,
	clock clockwork.Clock,
	cfg *config.Config,
) *bookingService.Session {
	return bookingService.New(
		log,
		draft,
		selection,
		dispatcher,
		registry,
		notifier,
		publisher,
		clock,
		bookingService.Pricing{
			DeliveryPrice: cfg.Booking.DeliveryPrice,
			Currency:      cfg.Booking.Currency,
		},
		geo.Point{Lat: cfg.Booking.MapDefaultLat, Lng: cfg.Booking.MapDefaultLng},
	)
}
