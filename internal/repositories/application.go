package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillbridge/job-portal/internal/models"
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	ListByUser(userID uuid.UUID) ([]models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository. The insert relies on the composite
// unique index for duplicate detection rather than a pre-check, so concurrent
// duplicate submissions cannot race; with TranslateError enabled the conflict
// surfaces as gorm.ErrDuplicatedKey.
func (r *applicationRepository) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// ListByUser implements ApplicationRepository.
func (r *applicationRepository) ListByUser(userID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}
