package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/events"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/repository"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/schedule"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionOverlap   = errors.New("instructor is already booked at an overlapping time on this day")
	ErrInvalidTimeRange = errors.New("custom session times are missing or invalid")
)

type ScheduleService interface {
	CreateSession(ctx context.Context, session *model.Session) (*model.Session, error)
	UpdateSession(ctx context.Context, session *model.Session) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
	GetSession(ctx context.Context, sessionID uuid.UUID) (*model.Session, error)
	ListSessions(ctx context.Context, fromDayID, toDayID string) ([]model.Session, error)
	OccupiedSlots(ctx context.Context, dayID string, trackID uuid.UUID) ([]schedule.TimeSlot, error)
}

type scheduleService struct {
	sessionRepo repository.SessionRepository
	publisher   events.EventPublisher
}

func NewScheduleService(repo repository.SessionRepository, pub events.EventPublisher) ScheduleService {
	return &scheduleService{sessionRepo: repo, publisher: pub}
}

// CreateSession gates the insert on the overlap check: the candidate is
// compared against the freshest copy of its day's sessions immediately
// before the write.
func (s *scheduleService) CreateSession(ctx context.Context, session *model.Session) (*model.Session, error) {
	if err := schedule.ValidateCustomTimes(*session); err != nil {
		return nil, ErrInvalidTimeRange
	}

	daySessions, err := s.sessionRepo.ListByDay(ctx, session.DayID)
	if err != nil {
		return nil, err
	}

	if schedule.CheckSessionOverlap(daySessions, *session, uuid.Nil) {
		return nil, ErrSessionOverlap
	}

	createdSession, err := s.sessionRepo.Create(ctx, session)

	if err != nil {
		return nil, err
	}

	go s.publisher.PublishChange(events.TableSessions, events.ActionCreated, createdSession.ID)

	return createdSession, nil
}

// UpdateSession re-runs the overlap gate with the session's own row
// excluded, so an in-place edit does not conflict with its prior state.
func (s *scheduleService) UpdateSession(ctx context.Context, session *model.Session) (*model.Session, error) {
	if err := schedule.ValidateCustomTimes(*session); err != nil {
		return nil, ErrInvalidTimeRange
	}

	existing, err := s.sessionRepo.FindByID(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSessionNotFound
	}

	daySessions, err := s.sessionRepo.ListByDay(ctx, session.DayID)
	if err != nil {
		return nil, err
	}

	if schedule.CheckSessionOverlap(daySessions, *session, session.ID) {
		return nil, ErrSessionOverlap
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	go s.publisher.PublishChange(events.TableSessions, events.ActionUpdated, session.ID)

	return session, nil
}

func (s *scheduleService) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	err := s.sessionRepo.Delete(ctx, sessionID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}

	go s.publisher.PublishChange(events.TableSessions, events.ActionDeleted, sessionID)

	return nil
}

func (s *scheduleService) GetSession(ctx context.Context, sessionID uuid.UUID) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *scheduleService) ListSessions(ctx context.Context, fromDayID, toDayID string) ([]model.Session, error) {
	return s.sessionRepo.ListByRange(ctx, fromDayID, toDayID)
}

func (s *scheduleService) OccupiedSlots(ctx context.Context, dayID string, trackID uuid.UUID) ([]schedule.TimeSlot, error) {
	daySessions, err := s.sessionRepo.ListByDay(ctx, dayID)
	if err != nil {
		return nil, err
	}

	return schedule.OccupiedTimeSlots(daySessions, dayID, trackID), nil
}
