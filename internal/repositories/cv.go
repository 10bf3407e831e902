package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillbridge/job-portal/internal/models"
)

type CVRepository interface {
	Create(cv *models.CV) error
	FindByIDAndUser(id, userID uuid.UUID) (*models.CV, error)
	ListByUser(userID uuid.UUID) ([]models.CV, error)
}

type cvRepository struct {
	db *gorm.DB
}

func NewCVRepository(db *gorm.DB) CVRepository {
	return &cvRepository{db: db}
}

// Create implements CVRepository.
func (r *cvRepository) Create(cv *models.CV) error {
	if err := r.db.Create(cv).Error; err != nil {
		return fmt.Errorf("failed to create cv: %w", err)
	}
	return nil
}

// FindByIDAndUser implements CVRepository. Scoping the lookup to the owner
// means a CV belonging to another user is indistinguishable from a missing one.
func (r *cvRepository) FindByIDAndUser(id, userID uuid.UUID) (*models.CV, error) {
	var cv models.CV
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&cv).Error; err != nil {
		return nil, fmt.Errorf("failed to find cv: %w", err)
	}
	return &cv, nil
}

// ListByUser implements CVRepository.
func (r *cvRepository) ListByUser(userID uuid.UUID) ([]models.CV, error) {
	var cvs []models.CV
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cvs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}
	return cvs, nil
}
