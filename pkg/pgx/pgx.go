package pgx

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/nailbook/stories-player/pkg/config"
	"github.com/nailbook/stories-player/pkg/logger"
	"github.com/nailbook/stories-player/pkg/retry"
	"go.uber.org/fx"
)

// Opts holds dependencies for opening the catalog database.
type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New opens a *sql.DB on the pgx driver and manages its lifecycle.
func New(opts Opts) (*sql.DB, error) {
	db, err := sql.Open("pgx", opts.Config.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	opts.LC.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := retry.Do(ctx, opts.Logger, "postgres ping", db.PingContext, PingRetryConfig(opts.Config)); err != nil {
					return fmt.Errorf("failed to ping postgres: %w", err)
				}
				opts.Logger.Info("Connected to postgres", "host", opts.Config.Postgres.Host, "db", opts.Config.Postgres.Name)
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return db.Close()
			},
		},
	)

	return db, nil
}

// PingRetryConfig maps the POSTGRES_PING_* settings onto a retry policy.
func PingRetryConfig(cfg *config.Config) retry.Config {
	rc := retry.DefaultConfig()
	rc.MaxRetries = cfg.Postgres.PingRetries
	if cfg.Postgres.PingInterval > 0 {
		rc.InitialInterval = cfg.Postgres.PingInterval
	}
	if cfg.Postgres.PingMaxInterval > 0 {
		rc.MaxInterval = cfg.Postgres.PingMaxInterval
	}
	rc.AttemptTimeout = cfg.Postgres.PingTimeout
	return rc
}

var Module = fx.Provide(New)
