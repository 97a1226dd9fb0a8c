package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/events"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/repository"
)

var (
	ErrTrackNotFound = errors.New("track not found")
	ErrGroupNotFound = errors.New("track group not found")
)

type TrackService interface {
	CreateTrack(ctx context.Context, track *model.Track) (*model.Track, error)
	UpdateTrack(ctx context.Context, track *model.Track) error
	DeleteTrack(ctx context.Context, trackID uuid.UUID) error
	ListTracks(ctx context.Context) ([]model.Track, error)
	ReorderTracks(ctx context.Context, orderedIDs []uuid.UUID) error
	CreateGroup(ctx context.Context, group *model.TrackGroup) (*model.TrackGroup, error)
	UpdateGroup(ctx context.Context, group *model.TrackGroup) error
	DeleteGroup(ctx context.Context, groupID uuid.UUID) error
	ListGroups(ctx context.Context) ([]model.TrackGroup, error)
}

type trackService struct {
	trackRepo repository.TrackRepository
	groupRepo repository.TrackGroupRepository
	publisher events.EventPublisher
}

func NewTrackService(trackRepo repository.TrackRepository, groupRepo repository.TrackGroupRepository, pub events.EventPublisher) TrackService {
	return &trackService{trackRepo: trackRepo, groupRepo: groupRepo, publisher: pub}
}

func (s *trackService) CreateTrack(ctx context.Context, track *model.Track) (*model.Track, error) {
	created, err := s.trackRepo.Create(ctx, track)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishChange(events.TableTracks, events.ActionCreated, created.ID)

	return created, nil
}

func (s *trackService) UpdateTrack(ctx context.Context, track *model.Track) error {
	err := s.trackRepo.Update(ctx, track)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTrackNotFound
		}
		return err
	}

	go s.publisher.PublishChange(events.TableTracks, events.ActionUpdated, track.ID)

	return nil
}

func (s *trackService) DeleteTrack(ctx context.Context, trackID uuid.UUID) error {
	err := s.trackRepo.Delete(ctx, trackID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTrackNotFound
		}
		return err
	}

	go s.publisher.PublishChange(events.TableTracks, events.ActionDeleted, trackID)

	return nil
}

func (s *trackService) ListTracks(ctx context.Context) ([]model.Track, error) {
	return s.trackRepo.List(ctx)
}

// ReorderTracks persists a drag-and-drop ordering; positions follow the
// slice order.
func (s *trackService) ReorderTracks(ctx context.Context, orderedIDs []uuid.UUID) error {
	if err := s.trackRepo.Reorder(ctx, orderedIDs); err != nil {
		return err
	}

	// one collection-level event; subscribers refetch the whole list anyway
	go s.publisher.PublishChange(events.TableTracks, events.ActionUpdated, uuid.Nil)

	return nil
}

func (s *trackService) CreateGroup(ctx context.Context, group *model.TrackGroup) (*model.TrackGroup, error) {
	created, err := s.groupRepo.Create(ctx, group)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishChange(events.TableTrackGroups, events.ActionCreated, created.ID)

	return created, nil
}

func (s *trackService) UpdateGroup(ctx context.Context, group *model.TrackGroup) error {
	err := s.groupRepo.Update(ctx, group)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGroupNotFound
		}
		return err
	}

	go s.publisher.PublishChange(events.TableTrackGroups, events.ActionUpdated, group.ID)

	return nil
}

func (s *trackService) DeleteGroup(ctx context.Context, groupID uuid.UUID) error {
	err := s.groupRepo.Delete(ctx, groupID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGroupNotFound
		}
		return err
	}

	go s.publisher.PublishChange(events.TableTrackGroups, events.ActionDeleted, groupID)

	return nil
}

func (s *trackService) ListGroups(ctx context.Context) ([]model.TrackGroup, error) {
	return s.groupRepo.List(ctx)
}
