package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "courier-booking/internal/app"
	"courier-booking/internal/gateway/events"
	"courier-booking/internal/gateway/nominatim"
	"courier-booking/internal/handlers/rest/booking_contact_put"
	"courier-booking/internal/handlers/rest/booking_get"
	"courier-booking/internal/handlers/rest/booking_package_put"
	"courier-booking/internal/handlers/rest/booking_reset_post"
	"courier-booking/internal/handlers/rest/booking_step_post"
	"courier-booking/internal/handlers/rest/booking_submit_post"
	"courier-booking/internal/handlers/rest/courier_contact_get"
	"courier-booking/internal/handlers/rest/couriers_get"
	"courier-booking/internal/handlers/rest/healthcheck_head"
	"courier-booking/internal/handlers/rest/location_cancel_post"
	"courier-booking/internal/handlers/rest/location_confirm_post"
	"courier-booking/internal/handlers/rest/location_open_post"
	"courier-booking/internal/handlers/rest/location_pick_post"
	"courier-booking/internal/handlers/rest/location_search_post"
	"courier-booking/internal/handlers/rest/notification_ack_post"
	"courier-booking/internal/handlers/rest/notification_get"
	"courier-booking/internal/handlers/rest/ping_get"
	"courier-booking/internal/handlers/rest/ride_delete"
	"courier-booking/internal/handlers/rest/rides_delete"
	"courier-booking/internal/handlers/rest/rides_get"
	"courier-booking/internal/handlers/tasks/system_metrics"
	"courier-booking/internal/handlers/ws/rides_stream"
	"courier-booking/internal/pkg/cache/memory"
	rediscache "courier-booking/internal/pkg/cache/redis"
	"courier-booking/internal/pkg/config"
	"courier-booking/internal/pkg/dotenv"
	"courier-booking/internal/pkg/kafka"
	metrics_system "courier-booking/internal/pkg/metrics"
	"courier-booking/internal/pkg/middlewares/graceful_shutdown"
	"courier-booking/internal/pkg/middlewares/metrics"
	"courier-booking/internal/pkg/middlewares/rate_limiter"
	"courier-booking/internal/pkg/middlewares/timeout"
	"courier-booking/internal/pkg/postgres"
	courierRepo "courier-booking/internal/repository/courier"
	"courier-booking/internal/repository/roster"
	"courier-booking/internal/service/booking"
	courierService "courier-booking/internal/service/courier"
	"courier-booking/pkg/logger"
	"courier-booking/pkg/logger/zap_adapter"
	"courier-booking/pkg/querier"
	"courier-booking/pkg/token_bucket"
	"courier-booking/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const (
	streamPath            = "/rides/stream"
	systemMetricsInterval = 15 * time.Second
)

type eventPublisher interface {
	booking.EventPublisher
	Close() error
}

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			stdlog.Fatalf("failed to load .env file: %v", err)
		}
	}
	if err := dotenv.ApplyFlags(os.Args[1:]); err != nil {
		stdlog.Fatalf("failed to apply flags: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting courier-booking application")

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx наследуются от context.Background() намеренно, это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()
	clock := clockwork.NewRealClock()

	rosterRepo, rosterProbe, closeRoster, err := initRoster(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("courier roster: %w", err)
	}
	defer closeRoster()

	cache, closeCache, err := initGeocoderCache(ctx, log, cfg, clock)
	if err != nil {
		return fmt.Errorf("geocoder cache: %w", err)
	}
	defer closeCache()

	publisher, err := initEventPublisher(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("ride events: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			runLog.Error("failed to close event publisher", logger.NewField("error", err))
		}
	}()

	// ctx задач отменяется по сигналу, Close дожидается их выхода
	app, err := application.InitializeApplication(ctx, log, clock, rosterRepo, cache, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer func() {
		app.ServiceLocation.Close()
		if err := app.BackgroundWorkers.Close(); err != nil {
			runLog.Error("failed to stop background workers", logger.NewField("error", err))
		}
	}()

	err = app.BackgroundWorkers.Start("system_metrics",
		system_metrics.NewSystemMetrics(metrics_system.CollectSystemMetrics, systemMetricsInterval))
	if err != nil {
		return fmt.Errorf("system metrics task: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown(), в том числе закрывает websocket-потоки.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, app, rosterProbe, clock, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var pprofServer *http.Server
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		runLog.Info("server starting", logger.NewField("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})

	if pprofServer != nil {
		g.Go(func() error {
			runLog.Info("pprof server starting", logger.NewField("port", cfg.Server.PprofPort))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("pprof server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		runLog.Info("Shutdown signal received")

		stop()
		isShuttingDown.Store(true)

		time.Sleep(readinessDrainDelay)
		runLog.Info("draining requests")

		// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if pprofServer != nil {
			if pprofErr := pprofServer.Shutdown(shutdownCtx); pprofErr != nil {
				runLog.Error("pprof server shutdown error", logger.NewField("error", pprofErr))
				err = errors.Join(err, pprofErr)
			} else {
				runLog.Info("pprof server stopped")
			}
		}

		stopOngoingGracefully()
		if err != nil {
			runLog.Info("Graceful shutdown timeout, forcing close")
			time.Sleep(shutdownHardPeriod)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	runLog.Info("Server stopped")
	return nil
}

// initRoster возвращает справочник курьеров: эталонный в памяти или таблицу Postgres.
// Для Postgres возвращается и проверка готовности базы.
func initRoster(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (courierService.Repository, healthcheck_head.Pinger, func(), error) {
	if cfg.Roster.Source == config.RosterStatic {
		return roster.New(roster.Reference()), nil, func() {}, nil
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database: %w", err)
	}

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("migrate: %w", err)
	}

	q := querier.New(pool, pgxv5.DefaultCtxGetter)
	repo := courierRepo.New(q)

	if cfg.Roster.Seed {
		seeder := courierService.NewRosterSeeder(log, repo, tx.New(pool, tx.WithIsoLevel(pgx.ReadCommitted)))
		if err := seeder.Seed(ctx, roster.Reference()); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("seed: %w", err)
		}
	}

	return repo, q, pool.Close, nil
}

func initGeocoderCache(ctx context.Context, log logger.Logger, cfg *config.Config, clock clockwork.Clock) (nominatim.Cache, func(), error) {
	if !cfg.Redis.Enabled() {
		log.Info("redis is not configured, using in-memory geocoder cache")
		return memory.New(clock), func() {}, nil
	}

	client, err := rediscache.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}

	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", logger.NewField("error", err))
		}
	}
	return rediscache.New(client), closeClient, nil
}

func initEventPublisher(ctx context.Context, log logger.Logger, cfg *config.Config) (eventPublisher, error) {
	if !cfg.Kafka.Enabled() {
		log.Info("kafka is not configured, ride events are not published")
		return events.Noop{}, nil
	}

	producer, err := kafka.NewSyncProducer(ctx, log, cfg.Kafka)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return events.New(producer, cfg.Kafka.Topic), nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	rosterProbe healthcheck_head.Pinger,
	clock clockwork.Clock,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout, streamPath))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, rosterProbe)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, clock)).Methods("GET")

	router.Handle("/booking", booking_get.New(log, app.ServiceBooking)).Methods("GET")
	router.Handle("/booking/package", booking_package_put.New(log, app.ServiceBooking)).Methods("PUT")
	router.Handle("/booking/contact", booking_contact_put.New(app.ServiceBooking)).Methods("PUT")
	router.Handle("/booking/step", booking_step_post.New(log, app.ServiceBooking)).Methods("POST")
	router.Handle("/booking/reset", booking_reset_post.New(app.ServiceBooking)).Methods("POST")
	router.Handle("/booking/submit", booking_submit_post.New(log, app.ServiceBooking)).Methods("POST")

	router.Handle("/booking/location/open", location_open_post.New(log, app.ServiceLocation)).Methods("POST")
	router.Handle("/booking/location/pick", location_pick_post.New(log, app.ServiceLocation)).Methods("POST")
	router.Handle("/booking/location/search", location_search_post.New(log, app.ServiceLocation)).Methods("POST")
	router.Handle("/booking/location/confirm", location_confirm_post.New(log, app.ServiceLocation)).Methods("POST")
	router.Handle("/booking/location/cancel", location_cancel_post.New(app.ServiceLocation)).Methods("POST")

	router.Handle("/rides", rides_get.New(log, app.ServiceRides)).Methods("GET")
	router.Handle(streamPath, rides_stream.New(log, app.ServiceRides, clock, cfg.StreamPushInterval)).Methods("GET")
	router.Handle("/rides", rides_delete.New(log, app.ServiceBooking)).Methods("DELETE")
	router.Handle("/ride/{id}", ride_delete.New(log, app.ServiceBooking)).Methods("DELETE")

	router.Handle("/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/courier/{id}/contact", courier_contact_get.New(log, app.ServiceCourier)).Methods("GET")

	router.Handle("/notification", notification_get.New(log, app.ServiceNotification)).Methods("GET")
	router.Handle("/notification/ack", notification_ack_post.New(app.ServiceNotification)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
