package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
)

type TrackGroupRepository interface {
	Create(ctx context.Context, group *model.TrackGroup) (*model.TrackGroup, error)
	Update(ctx context.Context, group *model.TrackGroup) error
	Delete(ctx context.Context, groupID uuid.UUID) error
	List(ctx context.Context) ([]model.TrackGroup, error)
}

type postgresTrackGroupRepository struct {
	db *sqlx.DB
}

func NewPostgresTrackGroupRepository(db *sqlx.DB) TrackGroupRepository {
	return &postgresTrackGroupRepository{db: db}
}

func (r *postgresTrackGroupRepository) Create(ctx context.Context, group *model.TrackGroup) (*model.TrackGroup, error) {
	query := `
		INSERT INTO track_groups (name, color, visible)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, group.Name, group.Color, group.Visible)
	err := row.Scan(&group.ID, &group.CreatedAt)

	if err != nil {
		return nil, err
	}

	return group, nil
}

func (r *postgresTrackGroupRepository) Update(ctx context.Context, group *model.TrackGroup) error {
	query := `UPDATE track_groups SET name = $1, color = $2, visible = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, group.Name, group.Color, group.Visible, group.ID)
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

func (r *postgresTrackGroupRepository) Delete(ctx context.Context, groupID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM track_groups WHERE id = $1`, groupID)
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

func (r *postgresTrackGroupRepository) List(ctx context.Context) ([]model.TrackGroup, error) {
	var groups []model.TrackGroup
	query := `SELECT * FROM track_groups ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &groups, query)

	if err != nil {
		return nil, err
	}

	if groups == nil {
		groups = []model.TrackGroup{}
	}

	return groups, nil
}
