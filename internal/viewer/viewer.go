package viewer

import "context"

// Reason says why the viewer handed control back to its host.
type Reason string

const (
	ReasonClosed    Reason = "closed"
	ReasonComplete  Reason = "complete"
	ReasonProfile   Reason = "profile"
	ReasonNoStories Reason = "no-stories"
)

type Result struct {
	Reason Reason
	// PerformerID is set for ReasonProfile: the performer whose profile to open.
	PerformerID string
}

type Client interface {
	// Run shows the stories starting at performerID and blocks until the
	// viewer is dismissed or ctx is done.
	Run(ctx context.Context, performerID string) (Result, error)
}
