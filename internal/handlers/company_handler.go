package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skillbridge/job-portal/internal/models"
	"skillbridge/job-portal/internal/repositories"
	"skillbridge/job-portal/internal/services"
)

type CompanyHandler struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyHandler(companyRepo repositories.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companyRepo: companyRepo}
}

// HandleListCompanies handles GET /companies
func (h *CompanyHandler) HandleListCompanies(c *fiber.Ctx) error {
	companies, err := h.companyRepo.FindAll()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.CompanyListResponse{Companies: companies})
}

// HandleGetCompany handles GET /companies/:id
func (h *CompanyHandler) HandleGetCompany(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid company ID format",
		})
	}

	company, err := h.companyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, services.ErrCompanyNotFound)
		}
		return respondError(c, err)
	}

	return c.JSON(models.CompanyResponse{Company: company})
}
