package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nailbook/stories-player/internal/app"
	"github.com/nailbook/stories-player/pkg/config"
	"github.com/nailbook/stories-player/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	application := fx.New(
		fx.WithLogger(func(log logger.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log.Slog()}
		}),
		app.New(cfg),
	)

	// Start the application
	if err := application.Start(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start application: %v\n", err)
		os.Exit(1)
	}

	// Wait for the viewer to exit or an interrupt signal
	signal := <-application.Wait()

	// Gracefully shutdown the application
	if err := application.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to stop application: %v\n", err)
		os.Exit(1)
	}

	os.Exit(signal.ExitCode)
}
