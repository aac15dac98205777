package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/migrations"
	"github.com/nailbook/stories-player/internal/ratelimit"
	"github.com/nailbook/stories-player/internal/repositories/catalog"
	"github.com/nailbook/stories-player/internal/scheduler"
	"github.com/nailbook/stories-player/internal/scheduler/schedulerimpl"
	"github.com/nailbook/stories-player/internal/viewer"
	"github.com/nailbook/stories-player/internal/viewer/viewerimpl"
	"github.com/nailbook/stories-player/pkg/config"
	"github.com/nailbook/stories-player/pkg/errors"
	"github.com/nailbook/stories-player/pkg/logger"
	"github.com/nailbook/stories-player/pkg/pgx"
	"go.uber.org/fx"
)

// New assembles the application for cfg. The database and its migrations
// are only part of the graph for the postgres catalog.
func New(cfg *config.Config) fx.Option {
	options := []fx.Option{
		fx.Supply(cfg),
		fx.Provide(
			logger.FxOption,
			newClock,
			fx.Annotate(
				newLimiter,
				fx.As(new(ratelimit.Limiter)),
			),
		),
		fx.Provide(
			fx.Annotate(
				schedulerimpl.New,
				fx.As(new(scheduler.Client)),
			),
			fx.Annotate(
				viewerimpl.New,
				fx.As(new(viewer.Client)),
			),
		),
		catalog.Module,
	}

	if cfg.Catalog.Driver == config.CatalogDriverPostgres {
		options = append(options, pgx.Module, migrations.Module)
	}

	return fx.Options(append(options, fx.Invoke(run))...)
}

const profileLookupTimeout = 5 * time.Second

func newClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func newLimiter(clock clockwork.Clock, cfg *config.Config) *ratelimit.InMemoryLimiter {
	return ratelimit.NewInMemoryLimiter(clock, cfg.Viewer.NavPerSecond, time.Second, cfg.Viewer.NavBurst)
}

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, log logger.Logger, cfg *config.Config,
	viewerClient viewer.Client, schedulerClient scheduler.Client, repo catalog.Repository) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := schedulerClient.ScheduleStoryExpiry(ctx); err != nil {
				log.Error("Schedule story expiry error", "error", err)
				return err
			}

			go func() {
				code := 0
				result, err := viewerClient.Run(ctx, cfg.Viewer.StartPerformer)
				if err != nil && ctx.Err() == nil {
					log.Error("Viewer error", "error", err)
					code = 1
				}

				log.Info("Viewer exited", "reason", string(result.Reason), "performer", result.PerformerID)
				if result.Reason == viewer.ReasonProfile {
					openProfile(ctx, os.Stdout, log, repo, result.PerformerID)
				}

				if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
					log.Error("Shutdown error", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

// openProfile resolves the performer picked in the viewer and prints the
// profile to open.
func openProfile(ctx context.Context, w io.Writer, log logger.Logger, repo catalog.Repository, performerID string) {
	ctx, cancel := context.WithTimeout(ctx, profileLookupTimeout)
	defer cancel()

	performer, err := repo.GetPerformer(ctx, performerID)
	if err != nil {
		if errors.IsNotFound(err) {
			log.Warn("Profile performer not found", "performer", performerID, "error", err)
		} else {
			log.Error("Profile lookup error", "performer", performerID, "error", err)
		}
		fmt.Fprintf(w, "open profile %s\n", performerID)
		return
	}

	fmt.Fprintf(w, "open profile %s (%s)\n", performer.ID, performer.Name)
}
