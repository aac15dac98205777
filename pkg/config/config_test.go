package config

import (
	"testing"
	"time"

	"github.com/nailbook/stories-player/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Stories.Duration)
	assert.Equal(t, ResumeModeRestart, cfg.Stories.ResumeMode)
	assert.Equal(t, 70.0, cfg.Stories.CloseThreshold)
	assert.Equal(t, 50.0, cfg.Stories.SwipeThreshold)
	assert.Equal(t, 24*time.Hour, cfg.Stories.TTL)
	assert.Equal(t, CatalogDriverMemory, cfg.Catalog.Driver)
	assert.Equal(t, "1", cfg.Viewer.StartPerformer)
	assert.Equal(t, 4, cfg.Viewer.NavPerSecond)
	assert.Equal(t, 2, cfg.Viewer.NavBurst)
	assert.Equal(t, uint64(5), cfg.Postgres.PingRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Postgres.PingInterval)
	assert.Equal(t, 3*time.Second, cfg.Postgres.PingTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORIES_DURATION", "3s")
	t.Setenv("STORIES_RESUME_MODE", "continue")
	t.Setenv("CATALOG_DRIVER", "postgres")
	t.Setenv("VIEWER_START_PERFORMER", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Stories.Duration)
	assert.Equal(t, ResumeModeContinue, cfg.Stories.ResumeMode)
	assert.Equal(t, CatalogDriverPostgres, cfg.Catalog.Driver)
	assert.Equal(t, "4", cfg.Viewer.StartPerformer)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown resume mode", env: map[string]string{"STORIES_RESUME_MODE": "rewind"}},
		{name: "unknown driver", env: map[string]string{"CATALOG_DRIVER": "mongo"}},
		{name: "zero duration", env: map[string]string{"STORIES_DURATION": "0s"}},
		{name: "negative threshold", env: map[string]string{"STORIES_SWIPE_THRESHOLD": "-1"}},
		{name: "zero cell width", env: map[string]string{"VIEWER_CELL_WIDTH": "0"}},
		{name: "ping interval above max", env: map[string]string{"POSTGRES_PING_INTERVAL": "10s", "POSTGRES_PING_MAX_INTERVAL": "1s"}},
		{name: "zero nav burst", env: map[string]string{"VIEWER_NAV_BURST": "0"}},
		{name: "negative nav rate", env: map[string]string{"VIEWER_NAV_PER_SECOND": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorIs(t, err, errors.ErrInvalidInput)
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Postgres.User = "nail"
	cfg.Postgres.Pass = "secret"
	cfg.Postgres.Host = "db"
	cfg.Postgres.Port = 5432
	cfg.Postgres.Name = "stories"
	cfg.Postgres.SslMode = "disable"

	assert.Equal(t, "postgres://nail:secret@db:5432/stories?sslmode=disable", cfg.GetDSN())
}
