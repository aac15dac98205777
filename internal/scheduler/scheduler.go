package scheduler

import "context"

type Client interface {
	// ScheduleStoryExpiry periodically drops stories older than the configured TTL
	// until ctx is done.
	ScheduleStoryExpiry(ctx context.Context) error
}
