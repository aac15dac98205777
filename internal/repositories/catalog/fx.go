package catalog

import (
	"database/sql"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/pkg/config"
	"github.com/nailbook/stories-player/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In

	Config *config.Config
	Clock  clockwork.Clock
	Logger logger.Logger
	DB     *sql.DB `optional:"true"`
}

// New picks the repository for CATALOG_DRIVER.
func New(p Params) (Repository, error) {
	log := p.Logger.WithComponent("catalog")

	switch p.Config.Catalog.Driver {
	case config.CatalogDriverPostgres:
		if p.DB == nil {
			return nil, fmt.Errorf("catalog driver %q needs a database connection", p.Config.Catalog.Driver)
		}
		log.Info("Using postgres catalog")
		return NewPgxRepository(p.DB, p.Clock, log), nil
	default:
		log.Info("Using in-memory catalog")
		return NewSeededRepository(p.Clock), nil
	}
}
