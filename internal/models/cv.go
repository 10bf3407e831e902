package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ExperienceEntry is one work-history item extracted from a CV.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ProjectEntry is one project item extracted from a CV.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// EducationEntry is one education item extracted from a CV.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type ExperienceEntries []ExperienceEntry

type ProjectEntries []ProjectEntry

type EducationEntries []EducationEntry

func (e ExperienceEntries) Value() (driver.Value, error) { return jsonbValue(e) }

func (e *ExperienceEntries) Scan(src interface{}) error { return jsonbScan(src, e) }

func (p ProjectEntries) Value() (driver.Value, error) { return jsonbValue(p) }

func (p *ProjectEntries) Scan(src interface{}) error { return jsonbScan(src, p) }

func (e EducationEntries) Value() (driver.Value, error) { return jsonbValue(e) }

func (e *EducationEntries) Scan(src interface{}) error { return jsonbScan(src, e) }

func jsonbValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jsonb column: %w", err)
	}
	return data, nil
}

func jsonbScan(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	var data []byte
	switch s := src.(type) {
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
	return json.Unmarshal(data, dst)
}

// CV is one uploaded CV record. Records are immutable after creation;
// re-uploading a file always creates a new record.
type CV struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	FileName       string            `gorm:"type:text" json:"file_name"`
	FileURL        string            `gorm:"type:text" json:"file_url"`
	Specialization string            `gorm:"type:text" json:"specialization"`
	Content        string            `gorm:"type:text" json:"content"`
	Skills         pq.StringArray    `gorm:"type:text[]" json:"skills"`
	Experience     ExperienceEntries `gorm:"type:jsonb" json:"experience"`
	Projects       ProjectEntries    `gorm:"type:jsonb" json:"projects"`
	Education      EducationEntries  `gorm:"type:jsonb" json:"education"`
	CreatedAt      time.Time         `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (c *CV) TableName() string {
	return "cvs"
}
