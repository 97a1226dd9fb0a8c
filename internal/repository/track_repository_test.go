package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
	repo "github.com/ananas-wonders/da-academy-schedule-sub000/internal/repository"
)

func TestPostgresTrackRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresTrackRepository(sqlxDB)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO tracks (name, group_id, position, visible)`)).
		WithArgs("Data Engineering", nil, 0, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id, time.Now()))

	created, err := r.Create(context.Background(), &model.Track{Name: "Data Engineering", Visible: true})
	require.NoError(t, err)
	require.Equal(t, id, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTrackRepository_Update_Missing(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresTrackRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tracks SET name = $1, group_id = $2, position = $3, visible = $4`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.Update(context.Background(), &model.Track{ID: uuid.New(), Name: "Renamed"})
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTrackRepository_Reorder(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresTrackRepository(sqlxDB)

	first := uuid.New()
	second := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tracks SET position = $1 WHERE id = $2`)).
		WithArgs(0, first).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tracks SET position = $1 WHERE id = $2`)).
		WithArgs(1, second).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := r.Reorder(context.Background(), []uuid.UUID{first, second})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTrackRepository_List_Empty(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	r := repo.NewPostgresTrackRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM tracks ORDER BY position ASC, created_at ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	tracks, err := r.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tracks)
	require.Empty(t, tracks)
	require.NoError(t, mock.ExpectationsWereMet())
}
