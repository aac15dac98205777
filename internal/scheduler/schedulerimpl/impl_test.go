package schedulerimpl

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/repositories/catalog/mocks"
	"github.com/nailbook/stories-player/pkg/config"
	"github.com/nailbook/stories-player/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Stories.TTL = 24 * time.Hour
	cfg.Stories.ExpiryInterval = 10 * time.Minute
	return cfg
}

func TestScheduleStoryExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	clock := clockwork.NewFakeClock()

	runs := make(chan struct{}, 4)
	repo.EXPECT().
		CleanupExpired(gomock.Any(), 24*time.Hour).
		DoAndReturn(func(context.Context, time.Duration) (int64, error) {
			runs <- struct{}{}
			return 1, nil
		}).
		MinTimes(2)

	s := New(Opts{Catalog: repo, Clock: clock, Logger: logger.Nop(), Config: testConfig()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.ScheduleStoryExpiry(ctx))

	waitRun := func() {
		t.Helper()
		select {
		case <-runs:
		case <-time.After(2 * time.Second):
			t.Fatal("expiry job did not run")
		}
	}

	// runs once on start, then every interval
	waitRun()

	blockCtx, blockCancel := context.WithTimeout(ctx, 2*time.Second)
	defer blockCancel()
	require.NoError(t, clock.BlockUntilContext(blockCtx, 1))

	clock.Advance(10 * time.Minute)
	waitRun()
}

func TestScheduleStoryExpiry_ErrorIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	done := make(chan struct{})
	repo.EXPECT().
		CleanupExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Duration) (int64, error) {
			close(done)
			return 0, context.DeadlineExceeded
		}).
		Times(1)

	s := New(Opts{Catalog: repo, Clock: clockwork.NewFakeClock(), Logger: logger.Nop(), Config: testConfig()})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.ScheduleStoryExpiry(ctx))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expiry job did not run")
	}
	cancel()
}
