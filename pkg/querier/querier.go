package querier

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	operationExec     = "exec"
	operationQuery    = "query"
	operationQueryRow = "query_row"
)

// Querier выполняет запросы в транзакции из контекста, а без нее прямо в пуле.
// Длительность каждого запроса попадает в QueryDuration.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	defer observe(operationExec, time.Now())

	return q.executor(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	defer observe(operationQuery, time.Now())

	return q.executor(ctx).Query(ctx, sql, args...)
}

// QueryRow учитывает только отправку запроса: строка сканируется уже вызывающим.
func (q *Querier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	defer observe(operationQueryRow, time.Now())

	return q.executor(ctx).QueryRow(ctx, sql, args...)
}

// Ping проверяет доступность базы, минуя транзакцию из контекста.
func (q *Querier) Ping(ctx context.Context) error {
	return q.pool.Ping(ctx)
}

func (q *Querier) executor(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

func observe(operation string, start time.Time) {
	QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
