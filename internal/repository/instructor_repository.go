package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
)

type InstructorRepository interface {
	Create(ctx context.Context, instructor *model.Instructor) (*model.Instructor, error)
	FindByID(ctx context.Context, instructorID uuid.UUID) (*model.Instructor, error)
	Update(ctx context.Context, instructor *model.Instructor) error
	Delete(ctx context.Context, instructorID uuid.UUID) error
	List(ctx context.Context) ([]model.Instructor, error)
}

type postgresInstructorRepository struct {
	db *sqlx.DB
}

func NewPostgresInstructorRepository(db *sqlx.DB) InstructorRepository {
	return &postgresInstructorRepository{db: db}
}

func (r *postgresInstructorRepository) Create(ctx context.Context, instructor *model.Instructor) (*model.Instructor, error) {
	query := `
		INSERT INTO instructors (name, bio, avatar_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, instructor.Name, instructor.Bio, instructor.AvatarURL)
	err := row.Scan(&instructor.ID, &instructor.CreatedAt)

	if err != nil {
		return nil, err
	}

	return instructor, nil
}

func (r *postgresInstructorRepository) FindByID(ctx context.Context, instructorID uuid.UUID) (*model.Instructor, error) {
	var instructor model.Instructor
	query := `SELECT * FROM instructors WHERE id = $1`
	err := r.db.GetContext(ctx, &instructor, query, instructorID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &instructor, nil
}

func (r *postgresInstructorRepository) Update(ctx context.Context, instructor *model.Instructor) error {
	query := `UPDATE instructors SET name = $1, bio = $2, avatar_url = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, instructor.Name, instructor.Bio, instructor.AvatarURL, instructor.ID)
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

func (r *postgresInstructorRepository) Delete(ctx context.Context, instructorID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM instructors WHERE id = $1`, instructorID)
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

func (r *postgresInstructorRepository) List(ctx context.Context) ([]model.Instructor, error) {
	var instructors []model.Instructor
	query := `SELECT * FROM instructors ORDER BY name ASC`
	err := r.db.SelectContext(ctx, &instructors, query)

	if err != nil {
		return nil, err
	}

	if instructors == nil {
		instructors = []model.Instructor{}
	}

	return instructors, nil
}
