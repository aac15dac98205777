package viewerimpl

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/playback"
	"github.com/nailbook/stories-player/internal/ratelimit"
	"github.com/nailbook/stories-player/internal/repositories/catalog"
	"github.com/nailbook/stories-player/internal/viewer"
	"github.com/nailbook/stories-player/pkg/config"
	"github.com/nailbook/stories-player/pkg/errors"
	"github.com/nailbook/stories-player/pkg/logger"
	"go.uber.org/fx"
)

// eventBuffer bounds undelivered controller events; the refresh tick covers
// anything dropped.
const eventBuffer = 64

type Opts struct {
	fx.In

	Catalog catalog.Repository
	Limiter ratelimit.Limiter
	Clock   clockwork.Clock
	Logger  logger.Logger
	Config  *config.Config
}

type ViewerImpl struct {
	Catalog catalog.Repository
	Limiter ratelimit.Limiter
	Clock   clockwork.Clock
	Logger  logger.Logger
	Config  *config.Config

	programOptions []tea.ProgramOption
}

func New(opts Opts) *ViewerImpl {
	return &ViewerImpl{
		Catalog: opts.Catalog,
		Limiter: opts.Limiter,
		Clock:   opts.Clock,
		Logger:  opts.Logger.WithComponent("viewer"),
		Config:  opts.Config,
		programOptions: []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		},
	}
}

var _ viewer.Client = (*ViewerImpl)(nil)

func (v *ViewerImpl) Run(ctx context.Context, performerID string) (viewer.Result, error) {
	performers, err := v.Catalog.Performers(ctx)
	if err != nil {
		return viewer.Result{}, fmt.Errorf("failed to load performers: %w", err)
	}
	stories, err := v.Catalog.StoriesByPerformer(ctx)
	if err != nil {
		return viewer.Result{}, fmt.Errorf("failed to load stories: %w", err)
	}

	events := make(chan playback.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)

	ctrl := playback.New(v.controllerOpts(func(ev playback.Event) {
		select {
		case events <- ev:
		default:
			v.Logger.Debug("Dropped playback event", "kind", ev.Kind.String())
		}
	}))
	defer ctrl.Release()

	err = ctrl.Initialize(performerID, performers, stories)
	noStories := errors.IsNoStoriesAvailable(err)
	if err != nil && !noStories {
		return viewer.Result{}, err
	}
	if noStories {
		v.Logger.Warn("No stories available", "requested", performerID)
	}

	model := NewModel(ModelOpts{
		Controller: ctrl,
		Events:     events,
		Done:       done,
		Limiter:    v.Limiter,
		Clock:      v.Clock,
		Logger:     v.Logger,
		CellWidth:  v.Config.Viewer.CellWidth,
		CellHeight: v.Config.Viewer.CellHeight,
		NoStories:  noStories,
	})

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, v.programOptions...)
	final, err := tea.NewProgram(model, options...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return viewer.Result{Reason: viewer.ReasonClosed}, ctx.Err()
		}
		return viewer.Result{}, fmt.Errorf("viewer failed: %w", err)
	}

	result := viewer.Result{Reason: viewer.ReasonClosed}
	if m, ok := final.(Model); ok && m.Finished() {
		result = m.Result()
	}

	v.Logger.Info("Viewer finished", "reason", string(result.Reason), "performer", result.PerformerID, "session", ctrl.Session())
	return result, nil
}

func (v *ViewerImpl) controllerOpts(notify func(playback.Event)) playback.Opts {
	mode := playback.ResumeRestart
	if v.Config.Stories.ResumeMode == config.ResumeModeContinue {
		mode = playback.ResumeContinue
	}

	return playback.Opts{
		Clock:      v.Clock,
		Duration:   v.Config.Stories.Duration,
		ResumeMode: mode,
		Thresholds: playback.Thresholds{
			Close: v.Config.Stories.CloseThreshold,
			Swipe: v.Config.Stories.SwipeThreshold,
		},
		Logger: v.Logger,
		Notify: notify,
	}
}
