package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillbridge/job-portal/internal/models"
	"skillbridge/job-portal/internal/repositories"
)

// ApplicationService assembles and submits applications: it resolves the
// caller's CV and the target company, computes the skill match, and inserts
// the application atomically. Duplicate submissions are detected by the
// storage layer's unique constraint, never by a pre-check.
type ApplicationService interface {
	SubmitApplication(ctx context.Context, userID, cvID uuid.UUID, companyID int64) (*models.ApplyResponse, error)
}

type applicationService struct {
	cvRepo      repositories.CVRepository
	companyRepo repositories.CompanyRepository
	appRepo     repositories.ApplicationRepository
}

func NewApplicationService(
	cvRepo repositories.CVRepository,
	companyRepo repositories.CompanyRepository,
	appRepo repositories.ApplicationRepository,
) ApplicationService {
	return &applicationService{
		cvRepo:      cvRepo,
		companyRepo: companyRepo,
		appRepo:     appRepo,
	}
}

// SubmitApplication implements ApplicationService.
func (s *applicationService) SubmitApplication(ctx context.Context, userID, cvID uuid.UUID, companyID int64) (*models.ApplyResponse, error) {
	cv, err := s.cvRepo.FindByIDAndUser(cvID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCVNotFound
		}
		return nil, fmt.Errorf("failed to resolve cv: %w", err)
	}

	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}

	match := ComputeMatch(cv.Skills, company.RequiredSkills)

	application := &models.Application{
		ID:                   uuid.New(),
		UserID:               userID,
		CVID:                 cvID,
		CompanyID:            companyID,
		SkillMatchPercentage: match.MatchPercentage,
		MatchedSkills:        match.MatchedSkills,
		MissingSkills:        match.MissingSkills,
		CreatedAt:            time.Now(),
	}

	if err := s.appRepo.Create(application); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	return &models.ApplyResponse{
		Application:          application,
		SkillMatchPercentage: match.MatchPercentage,
		MatchedSkills:        match.MatchedSkills,
		MissingSkills:        match.MissingSkills,
		CompanyName:          company.Name,
	}, nil
}
