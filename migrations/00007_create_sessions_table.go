package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSessionsTable, downCreateSessionsTable)
}

func upCreateSessionsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE sessions (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  day_id TEXT NOT NULL,
	  track_id UUID NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
	  title TEXT NOT NULL,
	  instructor TEXT NOT NULL,
	  type TEXT NOT NULL DEFAULT 'offline',
	  time TEXT NOT NULL,
	  custom_start_time TEXT,
	  custom_end_time TEXT,
	  count INTEGER NOT NULL DEFAULT 0,
	  total INTEGER NOT NULL DEFAULT 0,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_sessions_day_id ON sessions(day_id);
	CREATE INDEX idx_sessions_day_track ON sessions(day_id, track_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateSessionsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS sessions;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
