package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
	repo "github.com/ananas-wonders/da-academy-schedule-sub000/internal/repository"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPostgresSessionRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSessionRepository(sqlxDB)

	id := uuid.New()
	trackID := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sessions (day_id, track_id, title, instructor, type, time, custom_start_time, custom_end_time, count, total)`)).
		WithArgs("2024-09-07", trackID, "Intro to Go", "Jane Doe", "offline", "9am-12pm", nil, nil, 0, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id, createdAt))

	created, err := r.Create(context.Background(), &model.Session{
		DayID:      "2024-09-07",
		TrackID:    trackID,
		Title:      "Intro to Go",
		Instructor: "Jane Doe",
		Type:       model.SessionTypeOffline,
		Time:       "9am-12pm",
	})
	require.NoError(t, err)
	require.Equal(t, id, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSessionRepository_FindByID_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSessionRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM sessions WHERE id = $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	found, err := r.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSessionRepository_Update_Missing(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSessionRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE sessions`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.Update(context.Background(), &model.Session{ID: uuid.New(), TrackID: uuid.New()})
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSessionRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSessionRepository(sqlxDB)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sessions WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Delete(context.Background(), id))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSessionRepository_ListByDay_Empty(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSessionRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM sessions WHERE day_id = $1 ORDER BY created_at ASC`)).
		WithArgs("2024-09-07").
		WillReturnRows(sqlmock.NewRows([]string{"id", "day_id"}))

	sessions, err := r.ListByDay(context.Background(), "2024-09-07")
	require.NoError(t, err)
	require.NotNil(t, sessions)
	require.Empty(t, sessions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSessionRepository_ListByRange(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresSessionRepository(sqlxDB)

	id := uuid.New()
	trackID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "day_id", "track_id", "title", "instructor", "type", "time", "count", "total", "created_at"}).
		AddRow(id, "2024-09-08", trackID, "Intro to Go", "Jane Doe", "offline", "9am-12pm", 0, 0, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM sessions WHERE day_id >= $1 AND day_id <= $2 ORDER BY day_id ASC, created_at ASC`)).
		WithArgs("2024-09-07", "2024-09-13").
		WillReturnRows(rows)

	sessions, err := r.ListByRange(context.Background(), "2024-09-07", "2024-09-13")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, "2024-09-08", sessions[0].DayID)
	require.NoError(t, mock.ExpectationsWereMet())
}
