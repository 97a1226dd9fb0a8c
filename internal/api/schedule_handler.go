package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/schedule"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/service"
)

type ScheduleHandler struct {
	scheduleService service.ScheduleService
	validate        *validator.Validate
}

func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		validate:        validator.New(),
	}
}

type SessionRequest struct {
	DayID           string    `json:"day_id" validate:"required,datetime=2006-01-02"`
	TrackID         uuid.UUID `json:"track_id" validate:"required"`
	Title           string    `json:"title" validate:"required,max=200"`
	Instructor      string    `json:"instructor" validate:"required,max=100"`
	Type            string    `json:"type" validate:"required,oneof=online offline"`
	Time            string    `json:"time" validate:"required,oneof=9am-12pm 1pm-3:45pm 4pm-6:45pm custom"`
	CustomStartTime *string   `json:"custom_start_time,omitempty"`
	CustomEndTime   *string   `json:"custom_end_time,omitempty"`
	Count           int       `json:"count" validate:"min=0"`
	Total           int       `json:"total" validate:"min=0"`
}

func (r SessionRequest) toModel() *model.Session {
	return &model.Session{
		DayID:           r.DayID,
		TrackID:         r.TrackID,
		Title:           r.Title,
		Instructor:      r.Instructor,
		Type:            r.Type,
		Time:            r.Time,
		CustomStartTime: r.CustomStartTime,
		CustomEndTime:   r.CustomEndTime,
		Count:           r.Count,
		Total:           r.Total,
	}
}

// GetDays builds the calendar grid skeleton for an anchor date and view
// density. Unknown densities fall back to the week view.
func (h *ScheduleHandler) GetDays(c *fiber.Ctx) error {
	anchor := time.Now()
	if a := c.Query("anchor"); a != "" {
		parsed, err := time.Parse(schedule.DayKeyFormat, a)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid anchor date, expected yyyy-MM-dd"})
		}
		anchor = parsed
	}

	density := schedule.ParseDensity(c.Query("density"))
	days := schedule.GenerateDays(anchor, density, time.Now())

	return c.Status(fiber.StatusOK).JSON(days)
}

func (h *ScheduleHandler) ListSessions(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")

	if from == "" || to == "" {
		// default to the week around today
		start, end := schedule.DensityBounds(time.Now(), schedule.DensityWeek)
		from = start.Format(schedule.DayKeyFormat)
		to = end.Format(schedule.DayKeyFormat)
	}

	sessions, err := h.scheduleService.ListSessions(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch sessions"})
	}

	return c.Status(fiber.StatusOK).JSON(sessions)
}

func (h *ScheduleHandler) CreateSession(c *fiber.Ctx) error {
	var request SessionRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	createdSession, err := h.scheduleService.CreateSession(c.Context(), request.toModel())

	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionOverlap):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error(), "conflict": true})
		case errors.Is(err, service.ErrInvalidTimeRange):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			slog.ErrorContext(c.UserContext(), "Error creating session", slog.String("error", err.Error()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create session"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(createdSession)
}

func (h *ScheduleHandler) UpdateSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session ID format"})
	}

	var request SessionRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	session := request.toModel()
	session.ID = sessionID

	updatedSession, err := h.scheduleService.UpdateSession(c.Context(), session)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrSessionOverlap):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error(), "conflict": true})
		case errors.Is(err, service.ErrInvalidTimeRange):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			slog.ErrorContext(c.UserContext(), "Error updating session", slog.String("error", err.Error()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update session"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(updatedSession)
}

func (h *ScheduleHandler) DeleteSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session ID format"})
	}

	err = h.scheduleService.DeleteSession(c.Context(), sessionID)

	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete session"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Session deleted"})
}

func (h *ScheduleHandler) GetSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session ID format"})
	}

	session, err := h.scheduleService.GetSession(c.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch session"})
	}

	return c.Status(fiber.StatusOK).JSON(session)
}

// GetOccupiedSlots lists the taken slots for one day+track cell so the
// add-session form can disable them.
func (h *ScheduleHandler) GetOccupiedSlots(c *fiber.Ctx) error {
	dayID := c.Query("day_id")
	if _, err := time.Parse(schedule.DayKeyFormat, dayID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid day_id, expected yyyy-MM-dd"})
	}

	trackID, err := uuid.Parse(c.Query("track_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid track_id format"})
	}

	slots, err := h.scheduleService.OccupiedSlots(c.Context(), dayID, trackID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch occupied slots"})
	}

	return c.Status(fiber.StatusOK).JSON(slots)
}
