package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skillbridge/job-portal/internal/middleware"
	"skillbridge/job-portal/internal/models"
	"skillbridge/job-portal/internal/repositories"
	"skillbridge/job-portal/internal/services"
)

type CVHandler struct {
	cvRepo repositories.CVRepository
}

func NewCVHandler(cvRepo repositories.CVRepository) *CVHandler {
	return &CVHandler{cvRepo: cvRepo}
}

// HandleListCVs handles GET /cvs
func (h *CVHandler) HandleListCVs(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, services.ErrUnauthorized)
	}

	cvs, err := h.cvRepo.ListByUser(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.CVListResponse{CVs: cvs})
}
