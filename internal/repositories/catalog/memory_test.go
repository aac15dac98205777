package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/domain"
	"github.com/nailbook/stories-player/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	repo := NewSeededRepository(clockwork.NewFakeClockAt(now))

	performers, err := repo.Performers(ctx)
	require.NoError(t, err)
	require.Len(t, performers, 12)
	assert.Equal(t, "Sarah M.", performers[0].Name)
	assert.Equal(t, "12", performers[11].ID)

	stories, err := repo.StoriesByPerformer(ctx)
	require.NoError(t, err)
	assert.Len(t, stories["1"], 3)
	assert.Len(t, stories["2"], 2)
	assert.Len(t, stories["4"], 1)
	assert.Empty(t, stories["6"])
	assert.Equal(t, now.Add(-2*time.Hour), stories["1"][0].Timestamp)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededRepository(clockwork.NewFakeClock())

	stories, err := repo.StoriesByPerformer(ctx)
	require.NoError(t, err)
	stories["1"][0].Caption = "changed"
	delete(stories, "2")

	again, err := repo.StoriesByPerformer(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again["1"][0].Caption)
	assert.Len(t, again["2"], 2)
}

func TestMemoryRepository_GetPerformer(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededRepository(clockwork.NewFakeClock())

	p, err := repo.GetPerformer(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Amy R.", p.Name)

	_, err = repo.GetPerformer(ctx, "404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, errors.IsNotFound(err))
}

func TestMemoryRepository_CleanupExpired(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	now := clock.Now()

	repo := NewMemoryRepository(clock,
		[]domain.Performer{{ID: "a"}, {ID: "b"}},
		map[string][]domain.Story{
			"a": {
				{ID: "a-1", PerformerID: "a", Timestamp: now.Add(-48 * time.Hour)},
				{ID: "a-2", PerformerID: "a", Timestamp: now.Add(-time.Hour)},
			},
			"b": {
				{ID: "b-1", PerformerID: "b", Timestamp: now.Add(-25 * time.Hour)},
			},
		},
	)

	removed, err := repo.CleanupExpired(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	stories, err := repo.StoriesByPerformer(ctx)
	require.NoError(t, err)
	require.Len(t, stories["a"], 1)
	assert.Equal(t, "a-2", stories["a"][0].ID)
	assert.Empty(t, stories["b"])

	clock.Advance(2 * time.Hour)
	removed, err = repo.CleanupExpired(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestMemoryRepository_ConcurrentCleanup(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededRepository(clockwork.NewFakeClock())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = repo.CleanupExpired(ctx, time.Hour)
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.StoriesByPerformer(ctx)
		}()
	}
	wg.Wait()

	stories, err := repo.StoriesByPerformer(ctx)
	require.NoError(t, err)
	assert.Len(t, stories["1"], 2)
	assert.Len(t, stories["2"], 1)
	assert.Empty(t, stories["5"])
}
