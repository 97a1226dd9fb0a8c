package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
)

type TrackRepository interface {
	Create(ctx context.Context, track *model.Track) (*model.Track, error)
	FindByID(ctx context.Context, trackID uuid.UUID) (*model.Track, error)
	Update(ctx context.Context, track *model.Track) error
	Delete(ctx context.Context, trackID uuid.UUID) error
	List(ctx context.Context) ([]model.Track, error)
	Reorder(ctx context.Context, orderedIDs []uuid.UUID) error
}

type postgresTrackRepository struct {
	db *sqlx.DB
}

func NewPostgresTrackRepository(db *sqlx.DB) TrackRepository {
	return &postgresTrackRepository{db: db}
}

func (r *postgresTrackRepository) Create(ctx context.Context, track *model.Track) (*model.Track, error) {
	query := `
		INSERT INTO tracks (name, group_id, position, visible)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, track.Name, track.GroupID, track.Position, track.Visible)
	err := row.Scan(&track.ID, &track.CreatedAt)

	if err != nil {
		return nil, err
	}

	return track, nil
}

func (r *postgresTrackRepository) FindByID(ctx context.Context, trackID uuid.UUID) (*model.Track, error) {
	var track model.Track
	query := `SELECT * FROM tracks WHERE id = $1`
	err := r.db.GetContext(ctx, &track, query, trackID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &track, nil
}

func (r *postgresTrackRepository) Update(ctx context.Context, track *model.Track) error {
	query := `
		UPDATE tracks SET name = $1, group_id = $2, position = $3, visible = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, track.Name, track.GroupID, track.Position, track.Visible, track.ID)
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

func (r *postgresTrackRepository) Delete(ctx context.Context, trackID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tracks WHERE id = $1`, trackID)
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

func (r *postgresTrackRepository) List(ctx context.Context) ([]model.Track, error) {
	var tracks []model.Track
	query := `SELECT * FROM tracks ORDER BY position ASC, created_at ASC`
	err := r.db.SelectContext(ctx, &tracks, query)

	if err != nil {
		return nil, err
	}

	if tracks == nil {
		tracks = []model.Track{}
	}

	return tracks, nil
}

// Reorder rewrites every track position in one transaction so a drag
// reorder lands atomically.
func (r *postgresTrackRepository) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE tracks SET position = $1 WHERE id = $2`
	for position, id := range orderedIDs {
		if _, err := tx.ExecContext(ctx, query, position, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}
