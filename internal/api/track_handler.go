package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/service"
)

type TrackHandler struct {
	trackService service.TrackService
	validate     *validator.Validate
}

func NewTrackHandler(trackService service.TrackService) *TrackHandler {
	return &TrackHandler{
		trackService: trackService,
		validate:     validator.New(),
	}
}

type TrackRequest struct {
	Name    string     `json:"name" validate:"required,max=100"`
	GroupID *uuid.UUID `json:"group_id,omitempty"`
	Visible *bool      `json:"visible,omitempty"`
}

type TrackGroupRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Color   string `json:"color" validate:"omitempty,hexcolor"`
	Visible *bool  `json:"visible,omitempty"`
}

type ReorderRequest struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids" validate:"required,min=1"`
}

func (h *TrackHandler) ListTracks(c *fiber.Ctx) error {
	tracks, err := h.trackService.ListTracks(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch tracks"})
	}

	return c.Status(fiber.StatusOK).JSON(tracks)
}

func (h *TrackHandler) CreateTrack(c *fiber.Ctx) error {
	var request TrackRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	track := &model.Track{
		Name:    request.Name,
		GroupID: request.GroupID,
		Visible: true,
	}
	if request.Visible != nil {
		track.Visible = *request.Visible
	}

	created, err := h.trackService.CreateTrack(c.Context(), track)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create track"})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *TrackHandler) UpdateTrack(c *fiber.Ctx) error {
	trackID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid track ID format"})
	}

	var request TrackRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	track := &model.Track{
		ID:      trackID,
		Name:    request.Name,
		GroupID: request.GroupID,
		Visible: true,
	}
	if request.Visible != nil {
		track.Visible = *request.Visible
	}

	err = h.trackService.UpdateTrack(c.Context(), track)

	if err != nil {
		if errors.Is(err, service.ErrTrackNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update track"})
	}

	return c.Status(fiber.StatusOK).JSON(track)
}

func (h *TrackHandler) DeleteTrack(c *fiber.Ctx) error {
	trackID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid track ID format"})
	}

	err = h.trackService.DeleteTrack(c.Context(), trackID)

	if err != nil {
		if errors.Is(err, service.ErrTrackNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete track"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Track deleted"})
}

// ReorderTracks applies a drag-and-drop ordering from the column header UI.
func (h *TrackHandler) ReorderTracks(c *fiber.Ctx) error {
	var request ReorderRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	if err := h.trackService.ReorderTracks(c.Context(), request.OrderedIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not reorder tracks"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Tracks reordered"})
}

func (h *TrackHandler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.trackService.ListGroups(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch track groups"})
	}

	return c.Status(fiber.StatusOK).JSON(groups)
}

func (h *TrackHandler) CreateGroup(c *fiber.Ctx) error {
	var request TrackGroupRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	group := &model.TrackGroup{
		Name:    request.Name,
		Color:   request.Color,
		Visible: true,
	}
	if request.Visible != nil {
		group.Visible = *request.Visible
	}

	created, err := h.trackService.CreateGroup(c.Context(), group)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create track group"})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *TrackHandler) UpdateGroup(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group ID format"})
	}

	var request TrackGroupRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	group := &model.TrackGroup{
		ID:      groupID,
		Name:    request.Name,
		Color:   request.Color,
		Visible: true,
	}
	if request.Visible != nil {
		group.Visible = *request.Visible
	}

	err = h.trackService.UpdateGroup(c.Context(), group)

	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update track group"})
	}

	return c.Status(fiber.StatusOK).JSON(group)
}

func (h *TrackHandler) DeleteGroup(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group ID format"})
	}

	err = h.trackService.DeleteGroup(c.Context(), groupID)

	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete track group"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Track group deleted"})
}
