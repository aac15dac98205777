package app

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/repositories/catalog"
	"github.com/nailbook/stories-player/internal/repositories/catalog/mocks"
	"github.com/nailbook/stories-player/pkg/config"
	"github.com/nailbook/stories-player/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"
)

func testConfig(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.LogFile = "test.log"
	cfg.Stories.Duration = 5 * time.Second
	cfg.Stories.ResumeMode = config.ResumeModeRestart
	cfg.Stories.CloseThreshold = 70
	cfg.Stories.SwipeThreshold = 50
	cfg.Stories.TTL = 24 * time.Hour
	cfg.Stories.ExpiryInterval = 10 * time.Minute
	cfg.Catalog.Driver = driver
	cfg.Viewer.CellWidth = 8
	cfg.Viewer.CellHeight = 16
	cfg.Viewer.NavPerSecond = 4
	cfg.Viewer.NavBurst = 2
	return cfg
}

func TestAppGraph(t *testing.T) {
	for _, driver := range []string{config.CatalogDriverMemory, config.CatalogDriverPostgres} {
		t.Run(driver, func(t *testing.T) {
			assert.NoError(t, fx.ValidateApp(New(testConfig(driver)), fx.NopLogger))
		})
	}
}

func TestOpenProfile(t *testing.T) {
	repo := catalog.NewSeededRepository(clockwork.NewFakeClock())

	var out bytes.Buffer
	openProfile(context.Background(), &out, logger.Nop(), repo, "1")
	assert.Equal(t, "open profile 1 (Sarah M.)\n", out.String())
}

func TestOpenProfileUnknownPerformer(t *testing.T) {
	repo := catalog.NewSeededRepository(clockwork.NewFakeClock())

	var out, logs bytes.Buffer
	log := logger.New(logger.Opts{Env: "production", Output: &logs})
	openProfile(context.Background(), &out, log, repo, "404")

	assert.Equal(t, "open profile 404\n", out.String())
	assert.Contains(t, logs.String(), "Profile performer not found")
}

func TestOpenProfileLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().GetPerformer(gomock.Any(), "7").Return(nil, context.DeadlineExceeded)

	var out, logs bytes.Buffer
	log := logger.New(logger.Opts{Env: "production", Output: &logs})
	openProfile(context.Background(), &out, log, repo, "7")

	assert.Equal(t, "open profile 7\n", out.String())
	assert.Contains(t, logs.String(), "Profile lookup error")
}
