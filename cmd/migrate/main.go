package main

import (
	"context"
	"database/sql"
	"flag"
	stdlog "log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"samecity/internal/pkg/config"
	"samecity/internal/pkg/dotenv"
	"samecity/internal/pkg/postgres"
	"samecity/migrations"
	"samecity/pkg/logger"
	"samecity/pkg/logger/zap_adapter"
)

// usage: migrate [up|down|status|version|redo|reset]
func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter("")
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	if err := run(context.Background(), command, flag.Args()); err != nil {
		log.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		return
	}
	log.Info("migration finished", logger.NewField("command", command))
}

func run(ctx context.Context, command string, args []string) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", postgres.DSN(cfg))
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	return goose.RunContext(ctx, command, db, ".", rest...)
}
