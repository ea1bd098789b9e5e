package courier

import (
	"context"
	"errors"
	"fmt"

	"courier-booking/internal/entities"
	"courier-booking/internal/repository"
	"courier-booking/internal/service/courier"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id",
	"name",
	"phone",
	"rating",
	"completed_deliveries",
	"vehicle_kind",
	"created_at",
	"updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert создает курьера или обновляет его данные по id.
func (r *Repository) Upsert(ctx context.Context, c entities.Courier) error {
	model := FromDomain(c)

	query, args, err := qb.
		Insert("couriers").
		Columns("id", "name", "phone", "rating", "completed_deliveries", "vehicle_kind").
		Values(model.ID, model.Name, model.Phone, model.Rating, model.CompletedDeliveries, model.VehicleKind).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			rating = EXCLUDED.rating,
			completed_deliveries = EXCLUDED.completed_deliveries,
			vehicle_kind = EXCLUDED.vehicle_kind,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected courier repository upsert error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) ||
			repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("courier %d: %w", c.ID, repository.ErrConstraintViolation)
		}
		return fmt.Errorf("unexpected courier repository upsert error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (entities.Courier, error) {
	query, args, err := qb.
		Select(columns...).
		From("couriers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return entities.Courier{}, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	var courierModel CourierDB
	err = scanCourier(r.querier.QueryRow(ctx, query, args...), &courierModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Courier{}, courier.ErrCourierNotFound
		}

		return entities.Courier{}, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query, args, err := qb.
		Select(columns...).
		From("couriers").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		if err := scanCourier(rows, &courierModel); err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

func scanCourier(row pgx.Row, c *CourierDB) error {
	return row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Rating,
		&c.CompletedDeliveries,
		&c.VehicleKind,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}
