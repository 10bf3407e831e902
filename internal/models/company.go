package models

import (
	"time"

	"github.com/lib/pq"
)

type Company struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"type:text;not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	LogoURL         string         `gorm:"type:text" json:"logo_url"`
	Locations       pq.StringArray `gorm:"type:text[]" json:"locations"`
	RecruitingAreas pq.StringArray `gorm:"type:text[]" json:"recruiting_areas"`
	MinPackage      int64          `json:"min_package"`
	MaxPackage      int64          `json:"max_package"`
	Openings        int            `json:"openings"`
	RequiredSkills  pq.StringArray `gorm:"type:text[]" json:"required_skills"`
	Benefits        pq.StringArray `gorm:"type:text[]" json:"benefits"`
	WorkType        string         `gorm:"type:text" json:"work_type"`
	CompanySize     string         `gorm:"type:text" json:"company_size"`
	FoundedYear     int            `json:"founded_year"`
	Website         string         `gorm:"type:text" json:"website"`
	CreatedAt       time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (c *Company) TableName() string {
	return "companies"
}
