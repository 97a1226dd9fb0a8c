package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ChangeLogEntry is one audited mutation, appended by the event subscriber.
type ChangeLogEntry struct {
	ID         uuid.UUID `db:"id"`
	TableName  string    `db:"table_name"`
	Action     string    `db:"action"`
	RecordID   uuid.UUID `db:"record_id"`
	OccurredAt time.Time `db:"occurred_at"`
}

type ChangeLogRepository interface {
	Append(ctx context.Context, entry *ChangeLogEntry) error
}

type postgresChangeLogRepository struct {
	db *sqlx.DB
}

func NewPostgresChangeLogRepository(db *sqlx.DB) ChangeLogRepository {
	return &postgresChangeLogRepository{db: db}
}

func (r *postgresChangeLogRepository) Append(ctx context.Context, entry *ChangeLogEntry) error {
	query := `
		INSERT INTO change_log (table_name, action, record_id, occurred_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, entry.TableName, entry.Action, entry.RecordID, entry.OccurredAt)
	return err
}
