package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillbridge/job-portal/internal/middleware"
	"skillbridge/job-portal/internal/models"
	"skillbridge/job-portal/internal/services"
)

type ApplyHandler struct {
	applicationService services.ApplicationService
	validate           *validator.Validate
}

func NewApplyHandler(applicationService services.ApplicationService, validate *validator.Validate) *ApplyHandler {
	return &ApplyHandler{
		applicationService: applicationService,
		validate:           validate,
	}
}

// HandleApply handles POST /applications
func (h *ApplyHandler) HandleApply(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, services.ErrUnauthorized)
	}

	var req models.ApplyRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	cvID, err := uuid.Parse(req.CVID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid cv_id format",
		})
	}

	resp, err := h.applicationService.SubmitApplication(c.Context(), userID, cvID, req.CompanyID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}
