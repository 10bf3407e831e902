package services

import (
	"context"

	"skillbridge/job-portal/internal/models"
)

// ProfileData holds the structured fields derived from a CV document.
type ProfileData struct {
	Experience models.ExperienceEntries
	Projects   models.ProjectEntries
	Education  models.EducationEntries
}

// ProfileExtractor derives structured experience/project/education records
// from raw CV text. Implementations must not fail the upload: extraction is
// best effort and a placeholder result is always acceptable.
type ProfileExtractor interface {
	Extract(ctx context.Context, text string, skills []string) *ProfileData
}

type placeholderProfileExtractor struct{}

// NewPlaceholderProfileExtractor returns the extractor used when no language
// model is configured. It emits fixed records; the only field derived from the
// document is the project technologies list, which takes the first three
// extracted skills in vocabulary order (fewer if fewer were extracted).
func NewPlaceholderProfileExtractor() ProfileExtractor {
	return &placeholderProfileExtractor{}
}

func (p *placeholderProfileExtractor) Extract(_ context.Context, _ string, skills []string) *ProfileData {
	return &ProfileData{
		Experience: models.ExperienceEntries{
			{
				Company:     "Extracted Company",
				Position:    "Extracted Position",
				Duration:    "2020 - Present",
				Description: "Experience extracted from CV content",
			},
		},
		Projects: models.ProjectEntries{
			{
				Name:         "Extracted Project",
				Description:  "Project details extracted from CV",
				Technologies: topSkills(skills, 3),
			},
		},
		Education: models.EducationEntries{
			{
				Degree:      "Extracted Degree",
				Institution: "Extracted Institution",
				Year:        "2020",
			},
		},
	}
}

func topSkills(skills []string, n int) []string {
	if len(skills) < n {
		n = len(skills)
	}
	top := make([]string, n)
	copy(top, skills[:n])
	return top
}
