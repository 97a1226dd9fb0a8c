package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTracksTable, downCreateTracksTable)
}

func upCreateTracksTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE tracks (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  name TEXT NOT NULL,
	  group_id UUID REFERENCES track_groups(id) ON DELETE SET NULL,
	  position INTEGER NOT NULL DEFAULT 0,
	  visible BOOLEAN NOT NULL DEFAULT TRUE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_tracks_position ON tracks(position);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateTracksTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS tracks;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
