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
	ErrCourseNotFound     = errors.New("course not found")
	ErrInstructorNotFound = errors.New("instructor not found")
)

// CatalogService owns the two descriptive collections the scheduler draws
// from: courses and instructors.
type CatalogService interface {
	CreateCourse(ctx context.Context, course *model.Course) (*model.Course, error)
	UpdateCourse(ctx context.Context, course *model.Course) error
	DeleteCourse(ctx context.Context, courseID uuid.UUID) error
	ListCourses(ctx context.Context) ([]model.Course, error)
	CreateInstructor(ctx context.Context, instructor *model.Instructor) (*model.Instructor, error)
	GetInstructor(ctx context.Context, instructorID uuid.UUID) (*model.Instructor, error)
	UpdateInstructor(ctx context.Context, instructor *model.Instructor) error
	DeleteInstructor(ctx context.Context, instructorID uuid.UUID) error
	ListInstructors(ctx context.Context) ([]model.Instructor, error)
}

type catalogService struct {
	courseRepo     repository.CourseRepository
	instructorRepo repository.InstructorRepository
	publisher      events.EventPublisher
}

func NewCatalogService(courseRepo repository.CourseRepository, instructorRepo repository.InstructorRepository, pub events.EventPublisher) CatalogService {
	return &catalogService{courseRepo: courseRepo, instructorRepo: instructorRepo, publisher: pub}
}

func (s *catalogService) CreateCourse(ctx context.Context, course *model.Course) (*model.Course, error) {
	created, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishChange(events.TableCourses, events.ActionCreated, created.ID)

	return created, nil
}

func (s *catalogService) UpdateCourse(ctx context.Context, course *model.Course) error {
	err := s.courseRepo.Update(ctx, course)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCourseNotFound
		}
		return err
	}

	go s.publisher.PublishChange(events.TableCourses, events.ActionUpdated, course.ID)

	return nil
}

func (s *catalogService) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
	err := s.courseRepo.Delete(ctx, courseID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCourseNotFound
		}
		return err
	}

	go s.publisher.PublishChange(events.TableCourses, events.ActionDeleted, courseID)

	return nil
}

func (s *catalogService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.List(ctx)
}

func (s *catalogService) CreateInstructor(ctx context.Context, instructor *model.Instructor) (*model.Instructor, error) {
	created, err := s.instructorRepo.Create(ctx, instructor)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishChange(events.TableInstructors, events.ActionCreated, created.ID)

	return created, nil
}

func (s *catalogService) GetInstructor(ctx context.Context, instructorID uuid.UUID) (*model.Instructor, error) {
	instructor, err := s.instructorRepo.FindByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, ErrInstructorNotFound
	}
	return instructor, nil
}

func (s *catalogService) UpdateInstructor(ctx context.Context, instructor *model.Instructor) error {
	err := s.instructorRepo.Update(ctx, instructor)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInstructorNotFound
		}
		return err
	}

	go s.publisher.PublishChange(events.TableInstructors, events.ActionUpdated, instructor.ID)

	return nil
}

func (s *catalogService) DeleteInstructor(ctx context.Context, instructorID uuid.UUID) error {
	err := s.instructorRepo.Delete(ctx, instructorID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInstructorNotFound
		}
		return err
	}

	go s.publisher.PublishChange(events.TableInstructors, events.ActionDeleted, instructorID)

	return nil
}

func (s *catalogService) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	return s.instructorRepo.List(ctx)
}
