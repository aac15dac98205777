package catalog

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/domain"
)

var _ Repository = (*MemoryRepository)(nil)

type MemoryRepository struct {
	mu         sync.RWMutex
	clock      clockwork.Clock
	performers []domain.Performer
	stories    map[string][]domain.Story
}

func NewMemoryRepository(clock clockwork.Clock, performers []domain.Performer, stories map[string][]domain.Story) *MemoryRepository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	r := &MemoryRepository{
		clock:      clock,
		performers: slices.Clone(performers),
		stories:    make(map[string][]domain.Story, len(stories)),
	}
	for id, list := range stories {
		r.stories[id] = slices.Clone(list)
	}
	return r
}

// NewSeededRepository returns the demo directory: twelve technicians, five of
// them with stories posted relative to the clock's current time.
func NewSeededRepository(clock clockwork.Clock) *MemoryRepository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	now := clock.Now()
	performers, stories := seed(now)
	return NewMemoryRepository(clock, performers, stories)
}

func (r *MemoryRepository) Performers(_ context.Context) ([]domain.Performer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.performers), nil
}

func (r *MemoryRepository) StoriesByPerformer(_ context.Context) (map[string][]domain.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]domain.Story, len(r.stories))
	for id, list := range r.stories {
		out[id] = slices.Clone(list)
	}
	return out, nil
}

func (r *MemoryRepository) GetPerformer(_ context.Context, id string) (*domain.Performer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.performers {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) CleanupExpired(_ context.Context, olderThan time.Duration) (int64, error) {
	cutoff := r.clock.Now().Add(-olderThan)

	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, list := range r.stories {
		kept := list[:0]
		for _, s := range list {
			if s.Timestamp.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, s)
		}
		r.stories[id] = kept
	}
	return removed, nil
}
