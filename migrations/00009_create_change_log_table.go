package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateChangeLogTable, downCreateChangeLogTable)
}

func upCreateChangeLogTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE change_log (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  table_name TEXT NOT NULL,
	  action TEXT NOT NULL,
	  record_id UUID,
	  occurred_at TIMESTAMP WITH TIME ZONE NOT NULL
	);

	CREATE INDEX idx_change_log_table_name ON change_log(table_name, occurred_at);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateChangeLogTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS change_log;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
