package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager выполняет функцию в транзакции с заданным уровнем изоляции.
// Вложенный Do переиспользует внешнюю транзакцию.
type Manager struct {
	internal   *manager.Manager
	txSettings pgxv5.Settings
}

type Option func(*options)

type options struct {
	isoLevel pgx.TxIsoLevel
}

// WithIsoLevel переопределяет уровень изоляции, по умолчанию serializable.
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(o *options) {
		o.isoLevel = level
	}
}

func New(db pgxv5.Transactional, opts ...Option) *Manager {
	o := options{isoLevel: pgx.Serializable}
	for _, opt := range opts {
		opt(&o)
	}

	return &Manager{
		internal:   manager.Must(pgxv5.NewDefaultFactory(db)),
		txSettings: pgxv5.MustSettings(
			settings.Must(),
			pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: o.isoLevel}),
		),
	}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.internal.DoWithSettings(ctx, m.txSettings, fn)
}
