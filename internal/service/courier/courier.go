package courier

import (
	"context"
	"fmt"

	"courier-booking/internal/entities"
	"courier-booking/pkg/logger"
)

type Courier struct {
	log        serviceLogger
	repository Repository
	linker     ContactLinker
}

func New(log serviceLogger, repository Repository, linker ContactLinker) *Courier {
	return &Courier{
		log:        log.With(logger.NewField("component", "courier_service")),
		repository: repository,
		linker:     linker,
	}
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (entities.Courier, error) {
	if id <= 0 {
		return entities.Courier{}, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return entities.Courier{}, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// ContactLink возвращает ссылку на чат с курьером.
func (s *Courier) ContactLink(ctx context.Context, id int64) (string, error) {
	courier, err := s.GetCourier(ctx, id)
	if err != nil {
		return "", err
	}

	link, err := s.linker.Link(courier.Phone)
	if err != nil {
		return "", fmt.Errorf("contact courier %d: %w", id, err)
	}

	s.log.Info("courier contact requested", logger.NewField("courier_id", id))
	return link, nil
}

// RosterSeeder записывает справочник курьеров одной транзакцией.
type RosterSeeder struct {
	log       serviceLogger
	writer    RosterWriter
	txManager TxManager
}

func NewRosterSeeder(log serviceLogger, writer RosterWriter, txManager TxManager) *RosterSeeder {
	return &RosterSeeder{
		log:       log.With(logger.NewField("component", "roster_seeder")),
		writer:    writer,
		txManager: txManager,
	}
}

// Seed проверяет всех курьеров до записи: невалидный справочник не пишется частично.
func (s *RosterSeeder) Seed(ctx context.Context, couriers []entities.Courier) error {
	for _, c := range couriers {
		if err := validateCourier(c); err != nil {
			return fmt.Errorf("seed roster: %w", err)
		}
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, c := range couriers {
			if err := s.writer.Upsert(ctx, c); err != nil {
				return fmt.Errorf("upsert courier %d: %w", c.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}

	s.log.Info("courier roster seeded", logger.NewField("count", len(couriers)))
	return nil
}
