package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"skillbridge/job-portal/internal/models"
	"skillbridge/job-portal/internal/services"
)

// respondError maps service error kinds to HTTP responses. The named kinds
// carry no sensitive detail and are shown verbatim; anything else is logged
// server-side and reported as a generic internal error.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, services.ErrNoFile):
		return errorJSON(c, fiber.StatusBadRequest, "no_file", err)
	case errors.Is(err, services.ErrDocumentUnreadable):
		return errorJSON(c, fiber.StatusUnprocessableEntity, "document_unreadable", err)
	case errors.Is(err, services.ErrCVNotFound):
		return errorJSON(c, fiber.StatusNotFound, "cv_not_found", err)
	case errors.Is(err, services.ErrCompanyNotFound):
		return errorJSON(c, fiber.StatusNotFound, "company_not_found", err)
	case errors.Is(err, services.ErrDuplicateApplication):
		return errorJSON(c, fiber.StatusBadRequest, "duplicate_application", err)
	default:
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Internal server error",
			Kind:  "internal",
		})
	}
}

func errorJSON(c *fiber.Ctx, status int, kind string, err error) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: err.Error(),
		Kind:  kind,
	})
}
