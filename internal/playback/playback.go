// Package playback drives the stories slideshow: an ordered walk over
// performers and their stories, one countdown per story, and gesture driven
// navigation that can pause, resume or override that countdown.
package playback

import (
	"time"

	"github.com/nailbook/stories-player/internal/domain"
	"github.com/nailbook/stories-player/pkg/errors"
)

// DefaultDuration is how long every story stays on screen.
const DefaultDuration = 5 * time.Second

var (
	ErrNoStoriesAvailable = errors.NewWithCode(errors.CodeNoStoriesAvailable, "no stories available")
	ErrInvalidState       = errors.NewWithCode(errors.CodeInvalidState, "invalid playback state")
)

type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Signal tells the host whether the view has to be dismissed.
type Signal int

const (
	SignalNone Signal = iota
	SignalComplete
	SignalClosed
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalComplete:
		return "complete"
	case SignalClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ResumeMode selects what Resume does with the time already played.
type ResumeMode int

const (
	// ResumeRestart replays the paused story from zero.
	ResumeRestart ResumeMode = iota
	// ResumeContinue keeps the elapsed time and waits only for the remainder.
	ResumeContinue
)

type EventKind int

const (
	EventStoryChanged EventKind = iota
	EventPaused
	EventResumed
	EventComplete
	EventClosed
)

func (k EventKind) String() string {
	switch k {
	case EventStoryChanged:
		return "story_changed"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventComplete:
		return "complete"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event is delivered to Opts.Notify after every transition, including the
// ones triggered by the countdown.
type Event struct {
	Kind     EventKind
	Snapshot Snapshot
}

// Snapshot is everything the rendering layer needs for one frame.
type Snapshot struct {
	State          State
	Performer      domain.Performer
	Story          domain.Story
	PerformerIndex int
	StoryIndex     int
	StoryCount     int
	// Progress holds one value in [0,1] per story of the current performer.
	Progress []float64
}

func (s Snapshot) Paused() bool {
	return s.State == StatePaused
}

// Current is the progress of the active story.
func (s Snapshot) Current() float64 {
	if s.StoryIndex < 0 || s.StoryIndex >= len(s.Progress) {
		return 0
	}
	return s.Progress[s.StoryIndex]
}
