package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
)

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) (*model.Course, error)
	FindByID(ctx context.Context, courseID uuid.UUID) (*model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, courseID uuid.UUID) error
	List(ctx context.Context) ([]model.Course, error)
}

type postgresCourseRepository struct {
	db *sqlx.DB
}

func NewPostgresCourseRepository(db *sqlx.DB) CourseRepository {
	return &postgresCourseRepository{db: db}
}

func (r *postgresCourseRepository) Create(ctx context.Context, course *model.Course) (*model.Course, error) {
	query := `
		INSERT INTO courses (title, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, course.Title, course.Description)
	err := row.Scan(&course.ID, &course.CreatedAt)

	if err != nil {
		return nil, err
	}

	return course, nil
}

func (r *postgresCourseRepository) FindByID(ctx context.Context, courseID uuid.UUID) (*model.Course, error) {
	var course model.Course
	query := `SELECT * FROM courses WHERE id = $1`
	err := r.db.GetContext(ctx, &course, query, courseID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &course, nil
}

func (r *postgresCourseRepository) Update(ctx context.Context, course *model.Course) error {
	query := `UPDATE courses SET title = $1, description = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, course.Title, course.Description, course.ID)
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

func (r *postgresCourseRepository) Delete(ctx context.Context, courseID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, courseID)
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

func (r *postgresCourseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	query := `SELECT * FROM courses ORDER BY title ASC`
	err := r.db.SelectContext(ctx, &courses, query)

	if err != nil {
		return nil, err
	}

	if courses == nil {
		courses = []model.Course{}
	}

	return courses, nil
}
