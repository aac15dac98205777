package viewerimpl

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/playback"
	"github.com/nailbook/stories-player/internal/ratelimit"
	"github.com/nailbook/stories-player/internal/viewer"
	"github.com/nailbook/stories-player/pkg/errors"
	"github.com/nailbook/stories-player/pkg/formatter"
	"github.com/nailbook/stories-player/pkg/logger"
)

const (
	refreshInterval = 50 * time.Millisecond
	// tapZone is the share of the width on each side that navigates on a tap.
	tapZone      = 0.3
	barGap       = 1
	defaultWidth = 60
	chromeHeight = 9
)

type tickMsg time.Time

type eventMsg playback.Event

type ModelOpts struct {
	Controller *playback.Controller
	// Events carries controller notifications; Done stops waiting on it.
	Events     <-chan playback.Event
	Done       <-chan struct{}
	Limiter    ratelimit.Limiter
	Clock      clockwork.Clock
	Logger     logger.Logger
	CellWidth  float64
	CellHeight float64
	NoStories  bool
}

// Model renders one viewing session and turns input into controller calls.
type Model struct {
	ctrl    *playback.Controller
	events  <-chan playback.Event
	done    <-chan struct{}
	limiter ratelimit.Limiter
	clock   clockwork.Clock
	log     logger.Logger

	keys keyMap
	help help.Model
	bar  progress.Model

	cellWidth  float64
	cellHeight float64
	width      int
	height     int

	pressing bool
	pressX   int
	pressY   int

	noStories bool
	finished  bool
	result    viewer.Result
}

func NewModel(opts ModelOpts) Model {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = 1
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 1
	}

	bar := progress.New(
		progress.WithoutPercentage(),
		progress.WithSolidFill("#FFFFFF"),
	)
	bar.EmptyColor = "#4D4D4D"

	return Model{
		ctrl:       opts.Controller,
		events:     opts.Events,
		done:       opts.Done,
		limiter:    opts.Limiter,
		clock:      opts.Clock,
		log:        opts.Logger.WithComponent("viewer"),
		keys:       defaultKeyMap(),
		help:       help.New(),
		bar:        bar,
		cellWidth:  opts.CellWidth,
		cellHeight: opts.CellHeight,
		noStories:  opts.NoStories,
	}
}

func (m Model) Init() tea.Cmd {
	if m.noStories {
		return nil
	}
	return tea.Batch(tick(), waitForEvent(m.events, m.done))
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForEvent(events <-chan playback.Event, done <-chan struct{}) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev := <-events:
			return eventMsg(ev)
		case <-done:
			return nil
		}
	}
}

// Result is what the host should do next. Zero until the session ended.
func (m Model) Result() viewer.Result {
	return m.result
}

func (m Model) Finished() bool {
	return m.finished
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// a countdown may have completed the session between events
		if !m.noStories && m.ctrl.State() == playback.StateClosed {
			return m.finish(viewer.ReasonComplete)
		}
		return m, tick()

	case eventMsg:
		switch msg.Kind {
		case playback.EventComplete:
			return m.finish(viewer.ReasonComplete)
		case playback.EventClosed:
			return m.finish(viewer.ReasonClosed)
		}
		return m, waitForEvent(m.events, m.done)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.noStories {
		return m.finish(viewer.ReasonNoStories)
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Close):
		if _, err := m.ctrl.Close(); err != nil {
			m.ignored("Close", err)
		}
		return m.finish(viewer.ReasonClosed)

	case key.Matches(msg, m.keys.Profile):
		return m.finish(viewer.ReasonProfile)

	case key.Matches(msg, m.keys.Pause):
		if m.ctrl.State() == playback.StatePaused {
			err = m.ctrl.Resume()
		} else {
			err = m.ctrl.Pause()
		}

	case key.Matches(msg, m.keys.Next):
		if !m.allow("advance") {
			return m, nil
		}
		var signal playback.Signal
		signal, err = m.ctrl.Advance()
		if signal == playback.SignalComplete {
			return m.finish(viewer.ReasonComplete)
		}

	case key.Matches(msg, m.keys.Prev):
		if !m.allow("retreat") {
			return m, nil
		}
		err = m.ctrl.Retreat()
	}

	if err != nil {
		m.ignored("Key", err, "key", msg.String())
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.noStories {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.pressing = true
		m.pressX, m.pressY = msg.X, msg.Y
		if err := m.ctrl.BeginGesture(); err != nil {
			m.ignored("Gesture start", err)
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.pressing {
			return m, nil
		}
		m.pressing = false

		dx := float64(msg.X-m.pressX) * m.cellWidth
		dy := float64(msg.Y-m.pressY) * m.cellHeight
		action, signal, err := m.ctrl.EndGesture(dx, dy)
		if err != nil {
			m.ignored("Gesture", err, "action", action.String())
			return m, nil
		}

		switch {
		case action == playback.ActionClose:
			return m.finish(viewer.ReasonClosed)
		case signal == playback.SignalComplete:
			return m.finish(viewer.ReasonComplete)
		case action == playback.ActionResume:
			return m.tap(m.pressX)
		}
	}

	return m, nil
}

// tap applies the side tap zones to a press that did not travel far enough to
// count as a swipe.
func (m Model) tap(x int) (tea.Model, tea.Cmd) {
	if m.width <= 0 {
		return m, nil
	}

	zone := int(float64(m.width) * tapZone)
	switch {
	case x < zone:
		if err := m.ctrl.Retreat(); err != nil {
			m.ignored("Tap", err)
		}
	case x >= m.width-zone:
		signal, err := m.ctrl.Advance()
		if err != nil {
			m.ignored("Tap", err)
		}
		if signal == playback.SignalComplete {
			return m.finish(viewer.ReasonComplete)
		}
	}
	return m, nil
}

// ignored logs a controller call rejected in the current state.
func (m Model) ignored(what string, err error, args ...any) {
	args = append(args, "code", errors.GetCode(err), "reason", errors.GetMessage(err))
	m.log.Warn(what+" ignored", args...)
}

func (m Model) allow(name string) bool {
	return m.limiter == nil || m.limiter.Allow(name)
}

func (m Model) finish(reason viewer.Reason) (tea.Model, tea.Cmd) {
	m.finished = true
	m.result = viewer.Result{Reason: reason}
	if reason == viewer.ReasonProfile {
		m.result.PerformerID = m.ctrl.CurrentPerformerID()
	}
	m.ctrl.Release()
	return m, tea.Quit
}

func (m Model) View() string {
	if m.noStories {
		return emptyStyle.Render("No stories available\n\nPress any key to go back")
	}
	if m.finished {
		return ""
	}

	snap := m.ctrl.Snapshot()
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(m.progressView(snap.Progress, width))
	b.WriteString("\n")
	b.WriteString(m.headerView(snap))
	b.WriteString("\n")

	imageHeight := m.height - chromeHeight
	if imageHeight < 3 {
		imageHeight = 3
	}
	b.WriteString(imageStyle.Width(width - 2).Height(imageHeight).Render(snap.Story.ImageRef))
	b.WriteString("\n")

	if snap.Story.HasCaption() {
		b.WriteString(captionStyle.Render(snap.Story.Caption))
		b.WriteString("\n")
	}
	b.WriteString(profileButtonStyle.Render("View Profile"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) progressView(values []float64, width int) string {
	n := len(values)
	if n == 0 {
		return ""
	}

	barWidth := (width - 2 - (n-1)*barGap) / n
	if barWidth < 1 {
		barWidth = 1
	}
	bar := m.bar
	bar.Width = barWidth

	bars := make([]string, 0, n)
	for _, v := range values {
		bars = append(bars, bar.ViewAs(v))
	}
	return " " + strings.Join(bars, strings.Repeat(" ", barGap))
}

func (m Model) headerView(snap playback.Snapshot) string {
	posted := snap.Story.Timestamp
	parts := []string{
		"(" + snap.Performer.AvatarRef + ")",
		nameStyle.Render(snap.Performer.Name),
		timestampStyle.Render(formatter.StoryClock(posted) + " · " + formatter.StoryAge(posted, m.clock.Now())),
		timestampStyle.Render(formatter.StoryPosition(snap.StoryIndex, snap.StoryCount)),
	}
	if snap.Paused() {
		parts = append(parts, pausedStyle.Render("❚❚ paused"))
	}
	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
}
