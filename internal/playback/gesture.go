package playback

// Action is what a released gesture resolves to.
type Action int

const (
	ActionResume Action = iota
	ActionAdvance
	ActionRetreat
	ActionClose
)

func (a Action) String() string {
	switch a {
	case ActionResume:
		return "resume"
	case ActionAdvance:
		return "advance"
	case ActionRetreat:
		return "retreat"
	case ActionClose:
		return "close"
	default:
		return "unknown"
	}
}

// Thresholds are displacements in logical units.
type Thresholds struct {
	Close float64 // downward dy beyond this closes the viewer
	Swipe float64 // |dx| beyond this navigates
}

func DefaultThresholds() Thresholds {
	return Thresholds{Close: 70, Swipe: 50}
}

// Classify resolves a gesture release. The checks are ordered: a long enough
// downward drag closes even when it also moved sideways.
func Classify(dx, dy float64, t Thresholds) Action {
	switch {
	case dy > t.Close:
		return ActionClose
	case dx > t.Swipe:
		return ActionRetreat
	case dx < -t.Swipe:
		return ActionAdvance
	default:
		return ActionResume
	}
}
