package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"courier-booking/pkg/geo"
	"courier-booking/pkg/logger"
	retrierconfig "courier-booking/pkg/retrier"
	"courier-booking/pkg/retrier/backoff_adapter"
)

const (
	methodReverse = "reverse"
	methodSearch  = "search"

	maxPayloadBytes = 1 << 20
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

type Config struct {
	BaseURL   string
	UserAgent string
	CacheTTL  time.Duration
}

// Gateway клиент Nominatim-совместимого геокодера с ретраями и кэшем.
type Gateway struct {
	log     gatewayLogger
	client  httpClient
	cache   Cache
	retrier retrierconfig.Retrier
	cfg     Config
}

func New(log gatewayLogger, client httpClient, cache Cache, cfg Config) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Gateway{
		log:     log.With(logger.NewField("component", "nominatim_gateway")),
		client:  client,
		cache:   cache,
		retrier: backoff_adapter.New(retryConfig),
		cfg:     cfg,
	}
}

// ReverseGeocode возвращает адрес точки. ErrNotFound, если геокодер адреса не знает.
func (g *Gateway) ReverseGeocode(ctx context.Context, point geo.Point) (string, error) {
	key := methodReverse + ":" + strconv.FormatFloat(point.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(point.Lng, 'f', 6, 64)
	if cached, ok := g.fromCache(ctx, methodReverse, key); ok {
		return string(cached), nil
	}

	query := url.Values{
		"format":         {"json"},
		"lat":            {strconv.FormatFloat(point.Lat, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(point.Lng, 'f', -1, 64)},
		"addressdetails": {"1"},
	}

	var resp reverseResponse
	if err := g.get(ctx, methodReverse, "/reverse", query, &resp); err != nil {
		return "", fmt.Errorf("gateway nominatim, reverse %s: %w", point, err)
	}

	address := strings.TrimSpace(resp.DisplayName)
	if address == "" {
		return "", fmt.Errorf("gateway nominatim, reverse %s: %w", point, ErrNotFound)
	}

	g.toCache(ctx, key, []byte(address))
	return address, nil
}

// Search возвращает координаты первого найденного места.
func (g *Gateway) Search(ctx context.Context, text string) (geo.Point, error) {
	key := methodSearch + ":" + strings.ToLower(strings.TrimSpace(text))
	if cached, ok := g.fromCache(ctx, methodSearch, key); ok {
		var point geo.Point
		if err := json.Unmarshal(cached, &point); err == nil {
			return point, nil
		}
	}

	query := url.Values{
		"format": {"json"},
		"q":      {text},
		"limit":  {"1"},
	}

	var results []searchResult
	if err := g.get(ctx, methodSearch, "/search", query, &results); err != nil {
		return geo.Point{}, fmt.Errorf("gateway nominatim, search %q: %w", text, err)
	}
	if len(results) == 0 {
		return geo.Point{}, fmt.Errorf("gateway nominatim, search %q: %w", text, ErrNotFound)
	}

	point, err := toPoint(results[0])
	if err != nil {
		return geo.Point{}, fmt.Errorf("gateway nominatim, search %q: %w", text, err)
	}

	if payload, err := json.Marshal(point); err == nil {
		g.toCache(ctx, key, payload)
	}
	return point, nil
}

func (g *Gateway) get(ctx context.Context, method, path string, query url.Values, dst any) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return g.do(ctx, path, query, dst)
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(method, status).Inc()
	}

	return err
}

func (g *Gateway) do(ctx context.Context, path string, query url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	// публичный Nominatim отклоняет запросы без User-Agent
	req.Header.Set("User-Agent", g.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxPayloadBytes))
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return nil
}

func (g *Gateway) fromCache(ctx context.Context, method, key string) ([]byte, bool) {
	value, ok, err := g.cache.Get(ctx, key)
	if err != nil {
		g.log.Warn("geocoder cache get", logger.NewField("key", key), logger.NewField("error", err))
		CacheLookupsTotal.WithLabelValues(method, "error").Inc()
		return nil, false
	}
	if !ok {
		CacheLookupsTotal.WithLabelValues(method, "miss").Inc()
		return nil, false
	}
	CacheLookupsTotal.WithLabelValues(method, "hit").Inc()
	return value, true
}

func (g *Gateway) toCache(ctx context.Context, key string, value []byte) {
	if err := g.cache.Set(ctx, key, value, g.cfg.CacheTTL); err != nil {
		g.log.Warn("geocoder cache set", logger.NewField("key", key), logger.NewField("error", err))
	}
}

func toPoint(r searchResult) (geo.Point, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w: lat %q", ErrMalformedPayload, r.Lat)
	}
	lng, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w: lon %q", ErrMalformedPayload, r.Lon)
	}
	return geo.Point{Lat: lat, Lng: lng}, nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnexpectedStatus, e.code)
}

func (e *statusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// isRetryable ретраит сетевые ошибки, 429 и 5xx. Отмена контекста и битый ответ не ретраятся.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrMalformedPayload) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}
	return true
}

func statusLabel(err error) string {
	if err == nil {
		return "200"
	}
	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}
	if errors.Is(err, ErrMalformedPayload) {
		return "malformed"
	}
	return "transport"
}
