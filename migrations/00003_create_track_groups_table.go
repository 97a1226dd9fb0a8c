package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTrackGroupsTable, downCreateTrackGroupsTable)
}

func upCreateTrackGroupsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE track_groups (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  name TEXT NOT NULL,
	  color TEXT NOT NULL DEFAULT '',
	  visible BOOLEAN NOT NULL DEFAULT TRUE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateTrackGroupsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS track_groups;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
