package migrations

import (
	"context"
	"database/sql"

	"github.com/jonboulle/clockwork"
	"github.com/nailbook/stories-player/internal/repositories"
	"github.com/nailbook/stories-player/internal/repositories/catalog"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSeedDirectory, downSeedDirectory)
}

// upSeedDirectory loads the demo technicians so a fresh database plays the
// same directory as the in-memory catalog.
func upSeedDirectory(ctx context.Context, tx *sql.Tx) error {
	seeded := catalog.NewSeededRepository(clockwork.NewRealClock())

	performers, err := seeded.Performers(ctx)
	if err != nil {
		return err
	}
	stories, err := seeded.StoriesByPerformer(ctx)
	if err != nil {
		return err
	}

	insertPerformers := repositories.SqBuilder.
		Insert("performers").
		Columns("id", "name", "avatar_ref", "position")
	for i, p := range performers {
		insertPerformers = insertPerformers.Values(p.ID, p.Name, p.AvatarRef, i)
	}
	query, args, err := insertPerformers.ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	insertStories := repositories.SqBuilder.
		Insert("stories").
		Columns("id", "performer_id", "image_ref", "caption", "created_at", "position")
	for _, p := range performers {
		for i, s := range stories[p.ID] {
			insertStories = insertStories.Values(s.ID, s.PerformerID, s.ImageRef, s.Caption, s.Timestamp, i)
		}
	}
	query, args, err = insertStories.ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func downSeedDirectory(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DELETE FROM stories;
	DELETE FROM performers;
	`)
	if err != nil {
		return err
	}
	return nil
}
