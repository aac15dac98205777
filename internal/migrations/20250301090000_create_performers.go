package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePerformers, downCreatePerformers)
}

func upCreatePerformers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE performers (
		id         VARCHAR PRIMARY KEY,
		name       VARCHAR NOT NULL,
		avatar_ref VARCHAR NOT NULL DEFAULT '',
		position   INTEGER NOT NULL DEFAULT 0
	);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreatePerformers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE performers;
	`)
	if err != nil {
		return err
	}
	return nil
}
