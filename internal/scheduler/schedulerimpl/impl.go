package schedulerimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/repositories/catalog"
	"github.com/nailbook/stories-player/internal/scheduler"
	"github.com/nailbook/stories-player/pkg/config"
	"github.com/nailbook/stories-player/pkg/logger"
	"go.uber.org/fx"
)

const cleanupTimeout = time.Minute

type Opts struct {
	fx.In

	Catalog catalog.Repository
	Clock   clockwork.Clock
	Logger  logger.Logger
	Config  *config.Config
}

type SchedulerImpl struct {
	Catalog catalog.Repository
	Clock   clockwork.Clock
	Logger  logger.Logger
	Config  *config.Config
}

func New(opts Opts) *SchedulerImpl {
	return &SchedulerImpl{
		Catalog: opts.Catalog,
		Clock:   opts.Clock,
		Logger:  opts.Logger.WithComponent("scheduler"),
		Config:  opts.Config,
	}
}

var _ scheduler.Client = (*SchedulerImpl)(nil)

func (s *SchedulerImpl) ScheduleStoryExpiry(ctx context.Context) error {
	options := []gocron.SchedulerOption{}
	if s.Clock != nil {
		options = append(options, gocron.WithClock(s.Clock))
	}

	cron, err := gocron.NewScheduler(options...)
	if err != nil {
		return fmt.Errorf("failed to create expiry scheduler: %w", err)
	}

	ttl := s.Config.Stories.TTL

	_, err = cron.NewJob(
		gocron.DurationJob(s.Config.Stories.ExpiryInterval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				s.Logger.Info("Context cancelled, skipping story expiry")
				return
			}

			cleanupCtx, cancel := context.WithTimeout(ctx, cleanupTimeout)
			defer cancel()

			removed, err := s.Catalog.CleanupExpired(cleanupCtx, ttl)
			if err != nil {
				s.Logger.Error("Failed to expire stories", "error", err)
				return
			}

			s.Logger.Debug("Story expiry completed", "removed", removed, "ttl", ttl.String())
		}),
		gocron.WithName("story-expiry"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = cron.Shutdown()
		return fmt.Errorf("failed to schedule story expiry: %w", err)
	}

	cron.Start()
	s.Logger.Info("Story expiry scheduled", "interval", s.Config.Stories.ExpiryInterval.String(), "ttl", ttl.String())

	go func() {
		<-ctx.Done()
		s.Logger.Info("Stopping story expiry scheduler")
		if err := cron.Shutdown(); err != nil {
			s.Logger.Error("Failed to shut down expiry scheduler", "error", err)
		}
	}()

	return nil
}
