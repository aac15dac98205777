package pgx

import (
	"testing"
	"time"

	"github.com/nailbook/stories-player/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestPingRetryConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Postgres.PingRetries = 2
	cfg.Postgres.PingInterval = 100 * time.Millisecond
	cfg.Postgres.PingMaxInterval = time.Second
	cfg.Postgres.PingTimeout = 250 * time.Millisecond

	rc := PingRetryConfig(cfg)
	assert.Equal(t, uint64(2), rc.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, rc.InitialInterval)
	assert.Equal(t, time.Second, rc.MaxInterval)
	assert.Equal(t, 250*time.Millisecond, rc.AttemptTimeout)
	assert.Equal(t, 1.5, rc.Multiplier)
}

func TestPingRetryConfigKeepsDefaultIntervals(t *testing.T) {
	rc := PingRetryConfig(&config.Config{})
	assert.Zero(t, rc.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, rc.InitialInterval)
	assert.Equal(t, 5*time.Second, rc.MaxInterval)
	assert.Zero(t, rc.AttemptTimeout)
}
