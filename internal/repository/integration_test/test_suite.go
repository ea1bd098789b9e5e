package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"courier-booking/internal/pkg/config"
	"courier-booking/internal/pkg/postgres"
	"courier-booking/pkg/logger/zap_adapter"
	"courier-booking/pkg/querier"
	"courier-booking/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
)

var (
	querierInstance *querier.Querier
	txInstance      *tx.Manager
	suiteOnce       sync.Once
)

func setup() {
	suiteOnce.Do(func() {
		// переменные окружения подгружает Makefile из .env.test
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}

		if err := postgres.Migrate(ctx, zapLogger, connPool); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
		txInstance = tx.New(connPool)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return txInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `TRUNCATE TABLE couriers;`)
	require.NoError(t, err)
}
