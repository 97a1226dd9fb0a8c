package repository

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
	_ "github.com/ananas-wonders/da-academy-schedule-sub000/migrations"
)

type SessionRepositoryIntegrationTestSuite struct {
	suite.Suite
	db        *sqlx.DB
	repo      SessionRepository
	trackRepo TrackRepository
	pgc       *postgres.PostgresContainer
	ctx       context.Context
	trackID   uuid.UUID
}

func (s *SessionRepositoryIntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgc, err := postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test-db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("could not start postgres container: %s", err)
	}
	s.pgc = pgc

	connStr, err := pgc.ConnectionString(s.ctx, "sslmode=disable")
	assert.NoError(s.T(), err)

	db, err := sqlx.Connect("pgx", connStr)
	assert.NoError(s.T(), err)
	s.db = db

	err = goose.Up(db.DB, "../../migrations")
	assert.NoError(s.T(), err)

	s.repo = NewPostgresSessionRepository(s.db)
	s.trackRepo = NewPostgresTrackRepository(s.db)

	track, err := s.trackRepo.Create(s.ctx, &model.Track{Name: "Integration Track", Visible: true})
	assert.NoError(s.T(), err)
	s.trackID = track.ID
}

func (s *SessionRepositoryIntegrationTestSuite) TearDownSuite() {
	s.db.Close()
	if err := s.pgc.Terminate(s.ctx); err != nil {
		log.Fatalf("failed to terminate pg container: %s", err)
	}
}

func (s *SessionRepositoryIntegrationTestSuite) TestSessionRepository_CreateAndListByDay() {
	// Arrange
	session := &model.Session{
		DayID:      "2024-09-07",
		TrackID:    s.trackID,
		Title:      "Intro to Go",
		Instructor: "Jane Doe",
		Type:       model.SessionTypeOffline,
		Time:       "9am-12pm",
	}

	// Act: create the session
	created, err := s.repo.Create(s.ctx, session)

	// Assert
	assert.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, created.ID)

	// Act: list the day it landed on
	sessions, err := s.repo.ListByDay(s.ctx, "2024-09-07")

	// Assert
	assert.NoError(s.T(), err)
	assert.Len(s.T(), sessions, 1)
	assert.Equal(s.T(), created.ID, sessions[0].ID)
}

func (s *SessionRepositoryIntegrationTestSuite) TestSessionRepository_UpdateAndDelete() {
	created, err := s.repo.Create(s.ctx, &model.Session{
		DayID:      "2024-09-08",
		TrackID:    s.trackID,
		Title:      "Workshop",
		Instructor: "John Roe",
		Type:       model.SessionTypeOnline,
		Time:       "1pm-3:45pm",
	})
	assert.NoError(s.T(), err)

	created.Title = "Workshop (rescheduled)"
	created.Time = "4pm-6:45pm"
	assert.NoError(s.T(), s.repo.Update(s.ctx, created))

	found, err := s.repo.FindByID(s.ctx, created.ID)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), found)
	assert.Equal(s.T(), "Workshop (rescheduled)", found.Title)
	assert.Equal(s.T(), "4pm-6:45pm", found.Time)

	assert.NoError(s.T(), s.repo.Delete(s.ctx, created.ID))

	gone, err := s.repo.FindByID(s.ctx, created.ID)
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), gone)
}

func TestSessionRepositoryIntegration(t *testing.T) {
	if os.Getenv("DOCKER_HOST") == "" {
		t.Skip("Docker is not available, skipping integration test.")
	}
	suite.Run(t, new(SessionRepositoryIntegrationTestSuite))
}
