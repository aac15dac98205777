package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/nailbook/stories-player/pkg/errors"
)

const (
	ResumeModeRestart  = "restart"
	ResumeModeContinue = "continue"

	CatalogDriverMemory   = "memory"
	CatalogDriverPostgres = "postgres"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		LogFile   string `env:"APP_LOG_FILE" env-default:"stories-player.log"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Stories struct {
		Duration       time.Duration `env:"STORIES_DURATION" env-default:"5s"`
		ResumeMode     string        `env:"STORIES_RESUME_MODE" env-default:"restart"`
		CloseThreshold float64       `env:"STORIES_CLOSE_THRESHOLD" env-default:"70"`
		SwipeThreshold float64       `env:"STORIES_SWIPE_THRESHOLD" env-default:"50"`
		TTL            time.Duration `env:"STORIES_TTL" env-default:"24h"`
		ExpiryInterval time.Duration `env:"STORIES_EXPIRY_INTERVAL" env-default:"10m"`
	}
	Catalog struct {
		// The postgres demo directory is seeded once by migration; with the
		// default STORIES_TTL its stories expire a day later. CATALOG_RESEED
		// (or `migrate reseed`) stamps them again.
		Driver string `env:"CATALOG_DRIVER" env-default:"memory"`
		Reseed bool   `env:"CATALOG_RESEED" env-default:"false"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`

		PingRetries     uint64        `env:"POSTGRES_PING_RETRIES" env-default:"5"`
		PingInterval    time.Duration `env:"POSTGRES_PING_INTERVAL" env-default:"500ms"`
		PingMaxInterval time.Duration `env:"POSTGRES_PING_MAX_INTERVAL" env-default:"5s"`
		PingTimeout     time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"3s"`
	}
	Viewer struct {
		StartPerformer string  `env:"VIEWER_START_PERFORMER" env-default:"1"`
		CellWidth      float64 `env:"VIEWER_CELL_WIDTH" env-default:"8"`
		CellHeight     float64 `env:"VIEWER_CELL_HEIGHT" env-default:"16"`
		NavPerSecond   int     `env:"VIEWER_NAV_PER_SECOND" env-default:"4"`
		NavBurst       int     `env:"VIEWER_NAV_BURST" env-default:"2"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

// New reads the process configuration once.
func New() (*Config, error) {
	once.Do(func() {
		c, err := Load()
		if err != nil && !errors.Is(err, errors.ErrInvalidInput) {
			help, _ := cleanenv.GetDescription(&Config{}, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
		cfg = c
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the environment into a fresh Config and validates it.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

// GetDSN returns the postgres connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

// Validate checks the values cleanenv cannot express as tags.
func (c *Config) Validate() error {
	switch c.Stories.ResumeMode {
	case ResumeModeRestart, ResumeModeContinue:
	default:
		return errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("unknown STORIES_RESUME_MODE %q", c.Stories.ResumeMode))
	}

	switch c.Catalog.Driver {
	case CatalogDriverMemory, CatalogDriverPostgres:
	default:
		return errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("unknown CATALOG_DRIVER %q", c.Catalog.Driver))
	}

	if c.Stories.Duration <= 0 {
		return errors.Wrap(errors.ErrInvalidInput, "STORIES_DURATION must be positive")
	}
	if c.Stories.CloseThreshold <= 0 || c.Stories.SwipeThreshold <= 0 {
		return errors.Wrap(errors.ErrInvalidInput, "gesture thresholds must be positive")
	}
	if c.Stories.TTL <= 0 || c.Stories.ExpiryInterval <= 0 {
		return errors.Wrap(errors.ErrInvalidInput, "STORIES_TTL and STORIES_EXPIRY_INTERVAL must be positive")
	}
	if c.Viewer.CellWidth <= 0 || c.Viewer.CellHeight <= 0 {
		return errors.Wrap(errors.ErrInvalidInput, "viewer cell size must be positive")
	}
	if c.Postgres.PingInterval <= 0 || c.Postgres.PingMaxInterval < c.Postgres.PingInterval {
		return errors.Wrap(errors.ErrInvalidInput, "POSTGRES_PING_INTERVAL must be positive and not above POSTGRES_PING_MAX_INTERVAL")
	}
	if c.Viewer.NavPerSecond <= 0 || c.Viewer.NavBurst <= 0 {
		return errors.Wrap(errors.ErrInvalidInput, "VIEWER_NAV_PER_SECOND and VIEWER_NAV_BURST must be positive")
	}

	return nil
}
