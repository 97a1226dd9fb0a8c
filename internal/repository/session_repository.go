package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
)

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) (*model.Session, error)
	FindByID(ctx context.Context, sessionID uuid.UUID) (*model.Session, error)
	Update(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
	ListByDay(ctx context.Context, dayID string) ([]model.Session, error)
	ListByRange(ctx context.Context, fromDayID, toDayID string) ([]model.Session, error)
}

type postgresSessionRepository struct {
	db *sqlx.DB
}

func NewPostgresSessionRepository(db *sqlx.DB) SessionRepository {
	return &postgresSessionRepository{db: db}
}

func (r *postgresSessionRepository) Create(ctx context.Context, session *model.Session) (*model.Session, error) {
	query := `
		INSERT INTO sessions (day_id, track_id, title, instructor, type, time, custom_start_time, custom_end_time, count, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		session.DayID, session.TrackID, session.Title, session.Instructor,
		session.Type, session.Time, session.CustomStartTime, session.CustomEndTime,
		session.Count, session.Total,
	)
	err := row.Scan(&session.ID, &session.CreatedAt)

	if err != nil {
		return nil, err
	}

	return session, nil
}

func (r *postgresSessionRepository) FindByID(ctx context.Context, sessionID uuid.UUID) (*model.Session, error) {
	var session model.Session
	query := `SELECT * FROM sessions WHERE id = $1`
	err := r.db.GetContext(ctx, &session, query, sessionID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &session, nil
}

func (r *postgresSessionRepository) Update(ctx context.Context, session *model.Session) error {
	query := `
		UPDATE sessions
		SET day_id = $1, track_id = $2, title = $3, instructor = $4, type = $5,
			time = $6, custom_start_time = $7, custom_end_time = $8, count = $9, total = $10
		WHERE id = $11
	`

	result, err := r.db.ExecContext(ctx, query,
		session.DayID, session.TrackID, session.Title, session.Instructor,
		session.Type, session.Time, session.CustomStartTime, session.CustomEndTime,
		session.Count, session.Total, session.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *postgresSessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *postgresSessionRepository) ListByDay(ctx context.Context, dayID string) ([]model.Session, error) {
	var sessions []model.Session
	query := `SELECT * FROM sessions WHERE day_id = $1 ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &sessions, query, dayID)

	if err != nil {
		return nil, err
	}

	if sessions == nil {
		sessions = []model.Session{}
	}

	return sessions, nil
}

func (r *postgresSessionRepository) ListByRange(ctx context.Context, fromDayID, toDayID string) ([]model.Session, error) {
	var sessions []model.Session
	query := `SELECT * FROM sessions WHERE day_id >= $1 AND day_id <= $2 ORDER BY day_id ASC, created_at ASC`
	err := r.db.SelectContext(ctx, &sessions, query, fromDayID, toDayID)

	if err != nil {
		return nil, err
	}

	if sessions == nil {
		sessions = []model.Session{}
	}

	return sessions, nil
}
