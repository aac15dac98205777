package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/domain"
	"github.com/nailbook/stories-player/internal/repositories"
	"github.com/nailbook/stories-player/pkg/errors"
	"github.com/nailbook/stories-player/pkg/logger"
)

var _ Repository = (*PgxRepository)(nil)

type PgxRepository struct {
	db     *sql.DB
	clock  clockwork.Clock
	logger logger.Logger
}

func NewPgxRepository(db *sql.DB, clock clockwork.Clock, logger logger.Logger) *PgxRepository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &PgxRepository{
		db:     db,
		clock:  clock,
		logger: logger,
	}
}

func (r *PgxRepository) Performers(ctx context.Context) ([]domain.Performer, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "name", "avatar_ref").
		From("performers").
		OrderBy("position", "id").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query performers: %w", err)
	}
	defer rows.Close()

	var performers []domain.Performer
	for rows.Next() {
		var p domain.Performer
		if err := rows.Scan(&p.ID, &p.Name, &p.AvatarRef); err != nil {
			return nil, fmt.Errorf("failed to scan performer row: %w", err)
		}
		performers = append(performers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating performer rows: %w", err)
	}

	return performers, nil
}

func (r *PgxRepository) StoriesByPerformer(ctx context.Context) (map[string][]domain.Story, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "performer_id", "image_ref", "caption", "created_at").
		From("stories").
		OrderBy("performer_id", "position", "created_at").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stories: %w", err)
	}
	defer rows.Close()

	stories := make(map[string][]domain.Story)
	for rows.Next() {
		var (
			s       domain.Story
			caption sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.PerformerID, &s.ImageRef, &caption, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan story row: %w", err)
		}
		s.Caption = caption.String
		stories[s.PerformerID] = append(stories[s.PerformerID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating story rows: %w", err)
	}

	return stories, nil
}

func (r *PgxRepository) GetPerformer(ctx context.Context, id string) (*domain.Performer, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "name", "avatar_ref").
		From("performers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var p domain.Performer
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.AvatarRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get performer by id: %w", err)
	}

	return &p, nil
}

func (r *PgxRepository) CleanupExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := r.clock.Now().Add(-olderThan)

	query, args, err := repositories.SqBuilder.
		Delete("stories").
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired stories: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	if count > 0 {
		r.logger.Info("Removed expired stories", "count", count, "cutoff", cutoff)
	}

	return count, nil
}
