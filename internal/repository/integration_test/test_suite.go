package integration_test

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"samecity/internal/pkg/config"
	"samecity/internal/pkg/postgres"
	"samecity/migrations"
	"samecity/pkg/logger/zap_adapter"
	"samecity/pkg/querier"
	"samecity/pkg/tx"
)

var (
	querierInstance *querier.Querier
	txManager       *tx.Manager
	querierOnce     sync.Once
)

func databaseConfig() *config.Database {
	// env comes from the Makefile (.env.test), godotenv is not loaded here
	return &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		cfg := databaseConfig()
		ctx := context.Background()

		if err := migrate(cfg); err != nil {
			panic(err)
		}

		connPool, err := postgres.NewConnPool(ctx, zap_adapter.NewNop(), cfg)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
		txManager = tx.New(connPool)
	})

	return querierInstance
}

func GetTxManager() *tx.Manager {
	GetQuerier()
	return txManager
}

func migrate(cfg *config.Database) error {
	db, err := sql.Open("pgx", postgres.DSN(cfg))
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE delivery_stations, merchant_delivery_configs, sales_orders,
			delivery_orders, order_status_logs RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
