package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nailbook/stories-player/pkg/config"
	"github.com/nailbook/stories-player/pkg/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

const Dialect = "pgx"

// SeedVersion loads the demo directory. Its story timestamps are taken at
// migration time, so STORIES_TTL eventually expires all of them.
const SeedVersion int64 = 20250301090200

type gooseLogger struct {
	log logger.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func setup(log logger.Logger) error {
	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect(Dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Up applies every registered migration.
func Up(ctx context.Context, db *sql.DB, log logger.Logger) error {
	if err := setup(log); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Reseed rolls back to just before SeedVersion and migrates up again, so the
// demo stories are stamped relative to now.
func Reseed(ctx context.Context, db *sql.DB, log logger.Logger) error {
	if err := setup(log); err != nil {
		return err
	}
	if err := goose.DownToContext(ctx, db, ".", SeedVersion-1); err != nil {
		return fmt.Errorf("failed to roll back demo directory: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to reseed demo directory: %w", err)
	}
	log.Info("Demo directory reseeded")
	return nil
}

// Module runs the migrations once the database is reachable, reseeding the
// demo directory when CATALOG_RESEED is set.
var Module = fx.Invoke(func(lc fx.Lifecycle, db *sql.DB, log logger.Logger, cfg *config.Config) {
	log = log.WithComponent("migrations")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := Up(ctx, db, log); err != nil {
				return err
			}
			if cfg.Catalog.Reseed {
				return Reseed(ctx, db, log)
			}
			return nil
		},
	})
})
