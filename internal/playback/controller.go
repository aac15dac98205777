package playback

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/domain"
	"github.com/nailbook/stories-player/pkg/errors"
	"github.com/nailbook/stories-player/pkg/logger"
)

type Opts struct {
	Clock      clockwork.Clock
	Duration   time.Duration
	ResumeMode ResumeMode
	Thresholds Thresholds
	Logger     logger.Logger
	// Notify is called after each transition, never with the controller locked,
	// so it may call back into the controller.
	Notify func(Event)
}

type watchKey struct {
	performerID string
	story       int
}

// Controller owns the playback position of one viewing session. All methods
// are safe to call from the UI goroutine while the countdown fires on its own.
type Controller struct {
	mu sync.Mutex

	clock      clockwork.Clock
	duration   time.Duration
	resumeMode ResumeMode
	thresholds Thresholds
	log        *slog.Logger
	notify     func(Event)
	session    string

	state      State
	performers []domain.Performer
	stories    map[string][]domain.Story
	performer  int
	story      int
	watched    map[watchKey]bool

	startedAt time.Time
	elapsed   time.Duration

	timer clockwork.Timer
	// gen invalidates countdowns that fired after being cancelled.
	gen uint64
}

func New(opts Opts) *Controller {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = DefaultThresholds()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	session := uuid.NewString()
	return &Controller{
		clock:      opts.Clock,
		duration:   opts.Duration,
		resumeMode: opts.ResumeMode,
		thresholds: opts.Thresholds,
		log:        opts.Logger.WithComponent("Playback").Slog().With("session", session),
		notify:     opts.Notify,
		session:    session,
		state:      StateIdle,
		watched:    make(map[watchKey]bool),
	}
}

// Initialize resolves the starting performer and starts the first countdown.
// A requested performer without stories falls back to the first one that has
// some; when nobody has stories it returns ErrNoStoriesAvailable.
func (c *Controller) Initialize(requestedID string, performers []domain.Performer, storiesByPerformer map[string][]domain.Story) error {
	c.mu.Lock()
	if c.state != StateIdle {
		state := c.state
		c.mu.Unlock()
		return c.misuse("initialize", state)
	}

	eligible := make([]domain.Performer, 0, len(performers))
	stories := make(map[string][]domain.Story, len(storiesByPerformer))
	start := -1
	for _, p := range performers {
		list := storiesByPerformer[p.ID]
		if len(list) == 0 {
			continue
		}
		if p.ID == requestedID {
			start = len(eligible)
		}
		eligible = append(eligible, p)
		stories[p.ID] = slices.Clone(list)
	}

	if len(eligible) == 0 {
		c.mu.Unlock()
		c.log.Warn("No performer has stories", "requested", requestedID, "performers", len(performers))
		return fmt.Errorf("initialize %q: %w", requestedID, ErrNoStoriesAvailable)
	}
	if start < 0 {
		c.log.Info("Requested performer has no stories, falling back", "requested", requestedID, "fallback", eligible[0].ID)
		start = 0
	}

	c.performers = eligible
	c.stories = stories
	c.enter(start, 0)
	c.log.Info("Playback started", "performer", eligible[start].ID, "eligible", len(eligible))
	events := []Event{c.event(EventStoryChanged)}
	c.mu.Unlock()

	c.dispatch(events)
	return nil
}

// Advance marks the active story watched and moves forward, crossing to the
// next performer when needed. Past the last story it returns SignalComplete
// and the controller is closed.
func (c *Controller) Advance() (Signal, error) {
	c.mu.Lock()
	if !c.active() {
		state := c.state
		c.mu.Unlock()
		return SignalNone, c.misuse("advance", state)
	}
	signal, events := c.advance()
	c.mu.Unlock()

	c.dispatch(events)
	return signal, nil
}

// Retreat moves back one story, crossing to the previous performer's last
// story when needed. The story moved to is un-watched and starts from zero.
// At the very first story nothing moves; a paused story is restarted.
func (c *Controller) Retreat() error {
	c.mu.Lock()
	if !c.active() {
		state := c.state
		c.mu.Unlock()
		return c.misuse("retreat", state)
	}
	events := c.retreat()
	c.mu.Unlock()

	c.dispatch(events)
	return nil
}

// Pause freezes the countdown and the progress value. Pausing twice is a no-op.
func (c *Controller) Pause() error {
	c.mu.Lock()
	if !c.active() {
		state := c.state
		c.mu.Unlock()
		return c.misuse("pause", state)
	}

	var events []Event
	if c.state == StatePlaying {
		c.elapsed = c.currentElapsed()
		c.stopTimer()
		c.state = StatePaused
		c.log.Debug("Paused", "elapsed", c.elapsed)
		events = append(events, c.event(EventPaused))
	}
	c.mu.Unlock()

	c.dispatch(events)
	return nil
}

// Resume restarts the countdown of a paused story. With ResumeRestart the
// story replays from zero; with ResumeContinue only the remainder is awaited.
// Resuming a story that is already playing is a no-op.
func (c *Controller) Resume() error {
	c.mu.Lock()
	if !c.active() {
		state := c.state
		c.mu.Unlock()
		return c.misuse("resume", state)
	}

	var events []Event
	if c.state == StatePaused {
		c.resume()
		events = append(events, c.event(EventResumed))
	}
	c.mu.Unlock()

	c.dispatch(events)
	return nil
}

// Close cancels the countdown and ends the session.
func (c *Controller) Close() (Signal, error) {
	c.mu.Lock()
	if !c.active() {
		state := c.state
		c.mu.Unlock()
		return SignalNone, c.misuse("close", state)
	}
	c.finish()
	c.log.Info("Playback closed", "performer", c.performers[c.performer].ID, "story", c.story)
	events := []Event{c.event(EventClosed)}
	c.mu.Unlock()

	c.dispatch(events)
	return SignalClosed, nil
}

// Release is the unmount path: it cancels any countdown and closes the
// controller from whatever state it is in. It never fails and emits nothing.
func (c *Controller) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StatePlaying {
		c.elapsed = c.currentElapsed()
	}
	c.stopTimer()
	c.state = StateClosed
}

// BeginGesture is called when the user touches the screen.
func (c *Controller) BeginGesture() error {
	return c.Pause()
}

// EndGesture classifies the released gesture and applies it.
func (c *Controller) EndGesture(dx, dy float64) (Action, Signal, error) {
	action := Classify(dx, dy, c.thresholds)

	var (
		signal Signal
		err    error
	)
	switch action {
	case ActionClose:
		signal, err = c.Close()
	case ActionRetreat:
		err = c.Retreat()
	case ActionAdvance:
		signal, err = c.Advance()
	default:
		err = c.Resume()
	}

	return action, signal, err
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentPerformerID is read by navigation that leaves the viewer, such as
// opening the performer's profile. Empty before initialization.
func (c *Controller) CurrentPerformerID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.performers) == 0 {
		return ""
	}
	return c.performers[c.performer].ID
}

// Watched reports whether the story at index storyIdx of the performer was
// left by advancing during this session and not re-entered by retreating.
func (c *Controller) Watched(performerID string, storyIdx int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.watched[watchKey{performerID: performerID, story: storyIdx}]
}

// PendingTimers is the number of outstanding countdowns: 0 or 1.
func (c *Controller) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer == nil {
		return 0
	}
	return 1
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) Session() string {
	return c.session
}

func (c *Controller) active() bool {
	return c.state == StatePlaying || c.state == StatePaused
}

func (c *Controller) misuse(op string, state State) error {
	c.log.Error("Playback operation in wrong state", "op", op, "state", state.String())
	return errors.WrapWithCode(ErrInvalidState, errors.CodeInvalidState, fmt.Sprintf("%s while %s", op, state))
}

func (c *Controller) currentStories() []domain.Story {
	return c.stories[c.performers[c.performer].ID]
}

// enter makes (performer, story) the active story and starts a full countdown.
func (c *Controller) enter(performer, story int) {
	c.stopTimer()
	c.performer = performer
	c.story = story
	c.elapsed = 0
	c.startedAt = c.clock.Now()
	c.state = StatePlaying
	c.startTimer(c.duration)

	c.log.Debug("Story entered", "performer", c.performers[performer].ID, "story", story)
}

func (c *Controller) advance() (Signal, []Event) {
	id := c.performers[c.performer].ID
	c.watched[watchKey{performerID: id, story: c.story}] = true

	switch {
	case c.story+1 < len(c.currentStories()):
		c.enter(c.performer, c.story+1)
	case c.performer+1 < len(c.performers):
		c.enter(c.performer+1, 0)
	default:
		c.finish()
		c.log.Info("Playback complete", "performer", id, "story", c.story)
		return SignalComplete, []Event{c.event(EventComplete)}
	}

	return SignalNone, []Event{c.event(EventStoryChanged)}
}

func (c *Controller) retreat() []Event {
	performer, story := c.performer, c.story
	switch {
	case story > 0:
		story--
	case performer > 0:
		performer--
		story = len(c.stories[c.performers[performer].ID]) - 1
	default:
		if c.state == StatePaused {
			c.enter(performer, story)
			return []Event{c.event(EventResumed)}
		}
		return nil
	}

	delete(c.watched, watchKey{performerID: c.performers[performer].ID, story: story})
	c.enter(performer, story)
	return []Event{c.event(EventStoryChanged)}
}

func (c *Controller) resume() {
	if c.resumeMode == ResumeContinue {
		remaining := c.duration - c.elapsed
		if remaining < 0 {
			remaining = 0
		}
		c.startedAt = c.clock.Now()
		c.state = StatePlaying
		c.startTimer(remaining)
		c.log.Debug("Resumed", "remaining", remaining)
		return
	}

	c.elapsed = 0
	c.startedAt = c.clock.Now()
	c.state = StatePlaying
	c.startTimer(c.duration)
	c.log.Debug("Resumed from start")
}

// finish freezes progress and moves to the terminal state.
func (c *Controller) finish() {
	if c.state == StatePlaying {
		c.elapsed = c.currentElapsed()
	}
	c.stopTimer()
	c.state = StateClosed
}

func (c *Controller) startTimer(d time.Duration) {
	c.gen++
	gen := c.gen
	c.timer = c.clock.AfterFunc(d, func() {
		c.expire(gen)
	})
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

// expire runs on the clock's goroutine when a countdown elapses.
func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != StatePlaying {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	_, events := c.advance()
	c.mu.Unlock()

	c.dispatch(events)
}

func (c *Controller) currentElapsed() time.Duration {
	if c.state != StatePlaying {
		return c.elapsed
	}
	return c.elapsed + c.clock.Since(c.startedAt)
}

func (c *Controller) snapshot() Snapshot {
	if len(c.performers) == 0 {
		return Snapshot{State: c.state}
	}

	stories := c.currentStories()
	progress := make([]float64, len(stories))
	for i := range stories {
		switch {
		case i < c.story:
			progress[i] = 1
		case i == c.story:
			progress[i] = Progress(c.currentElapsed(), c.duration)
		}
	}

	return Snapshot{
		State:          c.state,
		Performer:      c.performers[c.performer],
		Story:          stories[c.story],
		PerformerIndex: c.performer,
		StoryIndex:     c.story,
		StoryCount:     len(stories),
		Progress:       progress,
	}
}

func (c *Controller) event(kind EventKind) Event {
	return Event{Kind: kind, Snapshot: c.snapshot()}
}

func (c *Controller) dispatch(events []Event) {
	if c.notify == nil {
		return
	}
	for _, e := range events {
		c.notify(e)
	}
}
