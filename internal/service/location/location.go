package location

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"courier-booking/internal/entities"
	"courier-booking/pkg/geo"
	"courier-booking/pkg/logger"
)

const MinQueryLength = 3

// Selection хранит непринятый выбор точки и переносит его в черновик только при подтверждении.
//
// Асинхронные ответы геокодера применяются по принципу "побеждает последний запрос":
//   - адрес применяется, только если с момента запроса точка не менялась (pointGen);
//   - результат поиска применяется, только если после него не было других запросов (seq).
type Selection struct {
	log      selectionLogger
	geocoder Geocoder
	draft    DraftStore
	timeout  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	open     bool
	pending  entities.PendingLocation
	seq      uint64
	pointGen uint64
}

func New(log selectionLogger, geocoder Geocoder, draft DraftStore, timeout time.Duration) *Selection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Selection{
		log:      log.With(logger.NewField("component", "location_selection")),
		geocoder: geocoder,
		draft:    draft,
		timeout:  timeout,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Open начинает выбор точки для target, подставляя уже сохраненное в черновике значение.
func (s *Selection) Open(target entities.LocationTarget) (entities.PendingLocation, error) {
	if !target.Valid() {
		return entities.PendingLocation{}, fmt.Errorf("open %q: %w", target, ErrUnknownTarget)
	}

	current, err := s.draft.Location(target)
	if err != nil {
		return entities.PendingLocation{}, fmt.Errorf("read draft location: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.pointGen++
	s.open = true
	s.pending = entities.PendingLocation{
		Target:  target,
		Point:   current.Point,
		Address: current.Address,
	}
	return s.snapshotLocked(), nil
}

// SetFromCoordinates сразу сохраняет точку, а адрес определяет в фоне.
// Пока адрес не получен, в качестве адреса стоят отформатированные координаты.
func (s *Selection) SetFromCoordinates(point geo.Point) (entities.PendingLocation, error) {
	if !point.Valid() {
		return entities.PendingLocation{}, fmt.Errorf("set %s: %w", point, ErrInvalidCoordinates)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return entities.PendingLocation{}, ErrSelectionClosed
	}

	s.seq++
	s.applyPointLocked(point)
	return s.snapshotLocked(), nil
}

// SearchByText ищет точку по адресу в фоне. Короткие запросы игнорируются, started=false.
// При неудаче поиска текущий выбор не меняется.
func (s *Selection) SearchByText(query string) (started bool, err error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return false, ErrSelectionClosed
	}

	s.seq++
	seq := s.seq

	s.wg.Add(1)
	go s.search(seq, query)

	return true, nil
}

// Confirm записывает выбранную точку в черновик и закрывает выбор.
func (s *Selection) Confirm() (entities.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return entities.Location{}, ErrSelectionClosed
	}
	if s.pending.Point == nil {
		return entities.Location{}, ErrNothingToConfirm
	}

	point := *s.pending.Point
	location := entities.Location{
		Address: s.pending.Address,
		Point:   &point,
	}
	if err := s.draft.SetLocation(s.pending.Target, location); err != nil {
		return entities.Location{}, fmt.Errorf("write draft location: %w", err)
	}

	s.closeLocked()
	return location.Clone(), nil
}

// Cancel закрывает выбор, не трогая черновик.
func (s *Selection) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeLocked()
}

// Pending возвращает текущий выбор; ok=false, если выбор закрыт.
func (s *Selection) Pending() (entities.PendingLocation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(), s.open
}

// Wait дожидается завершения всех запросов к геокодеру.
func (s *Selection) Wait() {
	s.wg.Wait()
}

// Close отменяет запросы к геокодеру и дожидается их завершения.
func (s *Selection) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *Selection) search(seq uint64, query string) {
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	point, err := s.geocoder.Search(ctx, query)
	if err != nil {
		s.log.Warn("forward geocoding failed, keeping current pick",
			logger.NewField("query", query),
			logger.NewField("error", err),
		)
		return
	}
	if !point.Valid() {
		s.log.Warn("forward geocoding returned invalid point",
			logger.NewField("query", query),
			logger.NewField("point", point.String()),
		)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open || seq != s.seq {
		s.log.Info("discarding stale search result",
			logger.NewField("query", query),
		)
		return
	}

	s.seq++
	s.applyPointLocked(point)
}

func (s *Selection) resolveAddress(gen uint64, point geo.Point) {
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	address, err := s.geocoder.ReverseGeocode(ctx, point)
	if err != nil || strings.TrimSpace(address) == "" {
		s.log.Warn("reverse geocoding failed, using coordinates",
			logger.NewField("point", point.String()),
			logger.NewField("error", err),
		)
		address = geo.FormatCoordinates(point)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open || gen != s.pointGen {
		s.log.Info("discarding stale address",
			logger.NewField("point", point.String()),
		)
		return
	}

	s.pending.Address = address
	s.pending.Resolving = false
}

// applyPointLocked вызывается под s.mu.
func (s *Selection) applyPointLocked(point geo.Point) {
	s.pointGen++
	s.pending.Point = &point
	s.pending.Address = geo.FormatCoordinates(point)
	s.pending.Resolving = true

	s.wg.Add(1)
	go s.resolveAddress(s.pointGen, point)
}

func (s *Selection) closeLocked() {
	s.seq++
	s.pointGen++
	s.open = false
	s.pending = entities.PendingLocation{}
}

func (s *Selection) snapshotLocked() entities.PendingLocation {
	snapshot := s.pending
	if s.pending.Point != nil {
		p := *s.pending.Point
		snapshot.Point = &p
	}
	return snapshot
}
