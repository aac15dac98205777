package catalog

import (
	"context"
	"time"

	"github.com/nailbook/stories-player/internal/domain"
	"github.com/nailbook/stories-player/pkg/errors"
)

var ErrNotFound = errors.Wrap(errors.ErrNotFound, "performer not found")

//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock.go -package=mocks

// Repository is the read side of the performer directory and its stories.
type Repository interface {
	// Performers returns every performer in directory order, with or without stories.
	Performers(ctx context.Context) ([]domain.Performer, error)
	// StoriesByPerformer returns stories keyed by performer ID in display order.
	StoriesByPerformer(ctx context.Context) (map[string][]domain.Story, error)
	GetPerformer(ctx context.Context, id string) (*domain.Performer, error)
	// CleanupExpired drops stories older than olderThan and reports how many went.
	CleanupExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}
