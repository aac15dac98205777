package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateStories, downCreateStories)
}

func upCreateStories(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE stories (
		id           VARCHAR PRIMARY KEY,
		performer_id VARCHAR NOT NULL REFERENCES performers (id) ON DELETE CASCADE,
		image_ref    VARCHAR NOT NULL,
		caption      VARCHAR,
		created_at   TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		position     INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX stories_created_at_idx ON stories (created_at);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateStories(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE stories;
	`)
	if err != nil {
		return err
	}
	return nil
}
