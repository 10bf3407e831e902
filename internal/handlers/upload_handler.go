package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"skillbridge/job-portal/internal/middleware"
	"skillbridge/job-portal/internal/models"
	"skillbridge/job-portal/internal/services"
)

type UploadHandler struct {
	cvBuilder   services.CVBuilderService
	maxFileSize int64
}

func NewUploadHandler(cvBuilder services.CVBuilderService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		cvBuilder:   cvBuilder,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /cvs. The file field is checked before any
// storage collaborator is touched, so a missing file has no side effects.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, services.ErrUnauthorized)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, services.ErrNoFile)
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	specialization := c.FormValue("specialization")
	if specialization == "" {
		specialization = "General"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return respondError(c, fmt.Errorf("failed to read uploaded file: %w", err))
	}

	cv, err := h.cvBuilder.BuildCV(c.Context(), services.CVUploadInput{
		UserID:         userID,
		FileName:       fileHeader.Filename,
		Specialization: specialization,
		Data:           data,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadCVResponse{
		CVID:     cv.ID.String(),
		FileURL:  cv.FileURL,
		FileName: cv.FileName,
		Skills:   cv.Skills,
	})
}
