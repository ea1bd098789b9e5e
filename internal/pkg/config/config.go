package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type RosterSource string

const (
	RosterStatic   RosterSource = "static"
	RosterPostgres RosterSource = "postgres"
)

type (
	HTTPServer struct {
		Port               string
		RequestTimeout     time.Duration // middleware timeout
		RateLimiterQPS     int           // middleware rate limiter capacity
		RateLimiterBurst   int           // middleware rate limiter burst/refill
		PprofEnabled       bool
		PprofPort          string
		StreamPushInterval time.Duration // период отправки снимков в websocket
	}

	Log struct {
		Level string
	}

	Booking struct {
		MaxRides           int
		DispatchDelay      time.Duration
		MotionTickInterval time.Duration
		MotionApproach     float64 // доля оставшегося пути за один тик
		CourierStartOffset float64 // сдвиг стартовой позиции курьера от точки забора, градусы
		DeliveryPrice      int64
		Currency           string
		MapDefaultLat      float64
		MapDefaultLng      float64
	}

	Celebration struct {
		BurstCount    int
		BurstTTL      time.Duration
		ConfettiCount int
		ConfettiTTL   time.Duration
	}

	Contact struct {
		CountryCode string
		TrunkPrefix string
		Message     string
	}

	Geocoder struct {
		BaseURL   string
		UserAgent string
		Timeout   time.Duration
		CacheTTL  time.Duration
	}

	Roster struct {
		Source RosterSource
		Seed   bool // залить эталонный состав курьеров в пустую таблицу
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Kafka struct {
		Brokers       string
		Topic         string
		SaramaVersion string
	}

	Config struct {
		Server      HTTPServer
		Log         Log
		Booking     Booking
		Celebration Celebration
		Contact     Contact
		Geocoder    Geocoder
		Roster      Roster
		Database    Database
		Redis       Redis
		Kafka       Kafka
	}
)

func (k Kafka) Enabled() bool {
	return k.Brokers != ""
}

func (k Kafka) BrokerList() []string {
	parts := strings.Split(k.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	var p parser

	cfg := &Config{
		Server: HTTPServer{
			Port:               os.Getenv("PORT"),
			RequestTimeout:     p.getDuration("MIDDLEWARE_REQUEST_TIMEOUT"),
			RateLimiterQPS:     p.getInt("MIDDLEWARE_RATE_LIMIT_QPS"),
			RateLimiterBurst:   p.getInt("MIDDLEWARE_RATE_LIMIT_BURST"),
			PprofEnabled:       p.getBool("PPROF_ENABLED"),
			PprofPort:          os.Getenv("PPROF_PORT"),
			StreamPushInterval: p.getDuration("STREAM_PUSH_INTERVAL"),
		},
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
		Booking: Booking{
			MaxRides:           p.getInt("BOOKING_MAX_RIDES"),
			DispatchDelay:      p.getDuration("BOOKING_DISPATCH_DELAY"),
			MotionTickInterval: p.getDuration("BOOKING_MOTION_TICK_INTERVAL"),
			MotionApproach:     p.getFloat("BOOKING_MOTION_APPROACH_FACTOR"),
			CourierStartOffset: p.getFloat("BOOKING_COURIER_START_OFFSET"),
			DeliveryPrice:      int64(p.getInt("BOOKING_DELIVERY_PRICE")),
			Currency:           os.Getenv("BOOKING_CURRENCY"),
			MapDefaultLat:      p.getFloat("MAP_DEFAULT_LAT"),
			MapDefaultLng:      p.getFloat("MAP_DEFAULT_LNG"),
		},
		Celebration: Celebration{
			BurstCount:    p.getInt("CELEBRATION_BURST_COUNT"),
			BurstTTL:      p.getDuration("CELEBRATION_BURST_TTL"),
			ConfettiCount: p.getInt("CELEBRATION_CONFETTI_COUNT"),
			ConfettiTTL:   p.getDuration("CELEBRATION_CONFETTI_TTL"),
		},
		Contact: Contact{
			CountryCode: os.Getenv("CONTACT_COUNTRY_CODE"),
			TrunkPrefix: os.Getenv("CONTACT_TRUNK_PREFIX"),
			Message:     os.Getenv("CONTACT_MESSAGE"),
		},
		Geocoder: Geocoder{
			BaseURL:   os.Getenv("GEOCODER_BASE_URL"),
			UserAgent: os.Getenv("GEOCODER_USER_AGENT"),
			Timeout:   p.getDuration("GEOCODER_TIMEOUT"),
			CacheTTL:  p.getDuration("GEOCODER_CACHE_TTL"),
		},
		Roster: Roster{
			Source: RosterSource(os.Getenv("ROSTER_SOURCE")),
			Seed:   p.getBool("ROSTER_SEED"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       p.getInt("REDIS_DB"),
		},
		Kafka: Kafka{
			Brokers:       os.Getenv("KAFKA_BROKERS"),
			Topic:         os.Getenv("KAFKA_TOPIC"),
			SaramaVersion: os.Getenv("KAFKA_SARAMA_VERSION"),
		},
	}

	if p.err != nil {
		return nil, fmt.Errorf("loading config: %w", p.err)
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.Server.StreamPushInterval <= 0 {
		return errors.New("STREAM_PUSH_INTERVAL is required")
	}

	if cfg.Booking.MaxRides <= 0 {
		return errors.New("BOOKING_MAX_RIDES must be positive")
	}
	if cfg.Booking.DispatchDelay < 0 {
		return errors.New("BOOKING_DISPATCH_DELAY must not be negative")
	}
	// submit держит запрос открытым на время имитации диспетчеризации
	if cfg.Booking.DispatchDelay >= cfg.Server.RequestTimeout {
		return errors.New("BOOKING_DISPATCH_DELAY must be shorter than MIDDLEWARE_REQUEST_TIMEOUT")
	}
	if cfg.Booking.MotionTickInterval <= 0 {
		return errors.New("BOOKING_MOTION_TICK_INTERVAL is required")
	}
	if cfg.Booking.MotionApproach <= 0 || cfg.Booking.MotionApproach > 1 {
		return errors.New("BOOKING_MOTION_APPROACH_FACTOR must be in (0, 1]")
	}
	if cfg.Booking.DeliveryPrice < 0 {
		return errors.New("BOOKING_DELIVERY_PRICE must not be negative")
	}
	if cfg.Booking.Currency == "" {
		return errors.New("BOOKING_CURRENCY is required")
	}

	if cfg.Celebration.BurstCount < 0 || cfg.Celebration.ConfettiCount < 0 {
		return errors.New("CELEBRATION_*_COUNT must not be negative")
	}
	if cfg.Celebration.BurstTTL <= 0 {
		return errors.New("CELEBRATION_BURST_TTL is required")
	}
	if cfg.Celebration.ConfettiTTL <= 0 {
		return errors.New("CELEBRATION_CONFETTI_TTL is required")
	}

	if cfg.Contact.CountryCode == "" {
		return errors.New("CONTACT_COUNTRY_CODE is required")
	}

	if cfg.Geocoder.BaseURL == "" {
		return errors.New("GEOCODER_BASE_URL is required")
	}
	if cfg.Geocoder.UserAgent == "" {
		return errors.New("GEOCODER_USER_AGENT is required")
	}
	if cfg.Geocoder.Timeout <= 0 {
		return errors.New("GEOCODER_TIMEOUT is required")
	}

	switch cfg.Roster.Source {
	case RosterStatic:
	case RosterPostgres:
		if err := validateDatabase(cfg.Database); err != nil {
			return err
		}
	default:
		return fmt.Errorf("ROSTER_SOURCE must be %q or %q, got %q", RosterStatic, RosterPostgres, cfg.Roster.Source)
	}

	if cfg.Kafka.Enabled() {
		if cfg.Kafka.Topic == "" {
			return errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
		}
		if cfg.Kafka.SaramaVersion == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required when KAFKA_BROKERS is set")
		}
	}

	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

// parser запоминает первую ошибку разбора, чтобы не проверять каждую переменную отдельно.
type parser struct {
	err error
}

func (p *parser) getInt(key string) int {
	val := os.Getenv(key)
	if val == "" || p.err != nil {
		return 0
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		p.err = fmt.Errorf("invalid int format for %s=%q: %w", key, val, err)
	}
	return res
}

func (p *parser) getFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" || p.err != nil {
		return 0
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		p.err = fmt.Errorf("invalid float format for %s=%q: %w", key, val, err)
	}
	return res
}

func (p *parser) getDuration(key string) time.Duration {
	val := os.Getenv(key)
	if val == "" || p.err != nil {
		return time.Duration(0)
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		p.err = fmt.Errorf("invalid duration format for %s=%q: %w", key, val, err)
	}
	return res
}

func (p *parser) getBool(key string) bool {
	val := os.Getenv(key)
	if val == "" || p.err != nil {
		return false
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		p.err = fmt.Errorf("invalid bool format for %s=%q: %w", key, val, err)
	}
	return res
}
