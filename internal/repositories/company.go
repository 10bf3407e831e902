package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"skillbridge/job-portal/internal/models"
)

type CompanyRepository interface {
	FindAll() ([]models.Company, error)
	FindByID(id int64) (*models.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// FindAll implements CompanyRepository.
func (r *companyRepository) FindAll() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.
		Order("created_at DESC").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// FindByID implements CompanyRepository.
func (r *companyRepository) FindByID(id int64) (*models.Company, error) {
	var company models.Company
	if err := r.db.Where("id = ?", id).First(&company).Error; err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return &company, nil
}
