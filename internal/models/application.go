package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Application is one submission of a CV to a company. The composite unique
// index makes creation a compare-and-insert: a second submission for the same
// (user, cv, company) tuple fails at the database rather than being pre-checked.
type Application struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID               uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_cv_company" json:"user_id"`
	CVID                 uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_cv_company" json:"cv_id"`
	CompanyID            int64          `gorm:"not null;uniqueIndex:idx_applications_user_cv_company" json:"company_id"`
	SkillMatchPercentage int            `json:"skill_match_percentage"`
	MatchedSkills        pq.StringArray `gorm:"type:text[]" json:"matched_skills"`
	MissingSkills        pq.StringArray `gorm:"type:text[]" json:"missing_skills"`
	CreatedAt            time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (a *Application) TableName() string {
	return "applications"
}
