package logger

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/nailbook/stories-player/pkg/config"
	"go.uber.org/fx"
)

var FxOption = fx.Annotate(
	func(lc fx.Lifecycle, cfg *config.Config) (*Impl, error) {
		// stdout belongs to the terminal viewer
		out, err := os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", cfg.App.LogFile, err)
		}

		withSentry := false
		if cfg.App.SentryUrl != "" {
			if err := sentry.Init(sentry.ClientOptions{
				Dsn:         cfg.App.SentryUrl,
				Environment: cfg.App.Env,
			}); err != nil {
				_ = out.Close()
				return nil, fmt.Errorf("failed to init sentry: %w", err)
			}
			withSentry = true
		}

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if withSentry {
					sentry.Flush(2 * time.Second)
				}
				return out.Close()
			},
		})

		return New(
			Opts{
				Env:    cfg.App.Env,
				Output: out,
				Sentry: withSentry,
			},
		), nil
	},
	fx.As(new(Logger)),
)
