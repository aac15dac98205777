package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nailbook/stories-player/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), logger.Nop(), "ping", func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("not yet")
		}
		return nil
	}, fastConfig())

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_GivesUp(t *testing.T) {
	attempts := 0
	boom := errors.New("connection refused")
	err := Do(context.Background(), logger.Nop(), "ping", func(context.Context) error {
		attempts++
		return boom
	}, fastConfig())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "ping failed after 4 attempts")
	assert.Equal(t, 4, attempts)
}

func TestDo_PermanentStopsEarly(t *testing.T) {
	attempts := 0
	boom := errors.New("bad password")
	err := Do(context.Background(), logger.Nop(), "ping", func(context.Context) error {
		attempts++
		return backoff.Permanent(boom)
	}, fastConfig())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}

func TestDo_AttemptTimeout(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxRetries = 1
	cfg.AttemptTimeout = 5 * time.Millisecond

	var deadlines int
	err := Do(context.Background(), logger.Nop(), "ping", func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); ok {
			deadlines++
		}
		<-ctx.Done()
		return ctx.Err()
	}, cfg)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, deadlines)
}

func TestDo_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Do(ctx, logger.Nop(), "ping", func(context.Context) error {
		attempts++
		return errors.New("down")
	}, fastConfig())

	assert.Error(t, err)
	assert.LessOrEqual(t, attempts, 1)
}
