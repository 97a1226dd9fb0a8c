package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/s3"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	presigner      *s3.AvatarPresigner
	validate       *validator.Validate
}

// NewCatalogHandler takes a nil presigner when S3 is not configured; the
// avatar endpoint then responds 503.
func NewCatalogHandler(catalogService service.CatalogService, presigner *s3.AvatarPresigner) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		presigner:      presigner,
		validate:       validator.New(),
	}
}

type CourseRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

type InstructorRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Bio       string  `json:"bio" validate:"max=2000"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

func (h *CatalogHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.catalogService.ListCourses(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch courses"})
	}

	return c.Status(fiber.StatusOK).JSON(courses)
}

func (h *CatalogHandler) CreateCourse(c *fiber.Ctx) error {
	var request CourseRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	created, err := h.catalogService.CreateCourse(c.Context(), &model.Course{
		Title:       request.Title,
		Description: request.Description,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create course"})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CatalogHandler) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID format"})
	}

	var request CourseRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	course := &model.Course{
		ID:          courseID,
		Title:       request.Title,
		Description: request.Description,
	}

	err = h.catalogService.UpdateCourse(c.Context(), course)

	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update course"})
	}

	return c.Status(fiber.StatusOK).JSON(course)
}

func (h *CatalogHandler) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID format"})
	}

	err = h.catalogService.DeleteCourse(c.Context(), courseID)

	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete course"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Course deleted"})
}

func (h *CatalogHandler) ListInstructors(c *fiber.Ctx) error {
	instructors, err := h.catalogService.ListInstructors(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch instructors"})
	}

	return c.Status(fiber.StatusOK).JSON(instructors)
}

func (h *CatalogHandler) CreateInstructor(c *fiber.Ctx) error {
	var request InstructorRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	created, err := h.catalogService.CreateInstructor(c.Context(), &model.Instructor{
		Name:      request.Name,
		Bio:       request.Bio,
		AvatarURL: request.AvatarURL,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create instructor"})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CatalogHandler) UpdateInstructor(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor ID format"})
	}

	var request InstructorRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	instructor := &model.Instructor{
		ID:        instructorID,
		Name:      request.Name,
		Bio:       request.Bio,
		AvatarURL: request.AvatarURL,
	}

	err = h.catalogService.UpdateInstructor(c.Context(), instructor)

	if err != nil {
		if errors.Is(err, service.ErrInstructorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update instructor"})
	}

	return c.Status(fiber.StatusOK).JSON(instructor)
}

func (h *CatalogHandler) DeleteInstructor(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor ID format"})
	}

	err = h.catalogService.DeleteInstructor(c.Context(), instructorID)

	if err != nil {
		if errors.Is(err, service.ErrInstructorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete instructor"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Instructor deleted"})
}

// GetAvatarUploadURL presigns a direct S3 upload for an instructor avatar.
func (h *CatalogHandler) GetAvatarUploadURL(c *fiber.Ctx) error {
	if h.presigner == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Avatar storage is not configured"})
	}

	instructorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor ID format"})
	}

	if _, err := h.catalogService.GetInstructor(c.Context(), instructorID); err != nil {
		if errors.Is(err, service.ErrInstructorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch instructor"})
	}

	uploadURL, objectKey, err := h.presigner.PresignAvatarUpload(c.Context(), instructorID)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Error presigning avatar upload", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate upload URL"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"upload_url": uploadURL,
		"object_key": objectKey,
	})
}
