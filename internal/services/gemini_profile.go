package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"skillbridge/job-portal/internal/models"
)

const profilePrompt = `Extract structured data from the CV text below.
Respond with a single JSON object, no markdown fences, in this exact shape:
{
  "experience": [{"company": "", "position": "", "duration": "", "description": ""}],
  "projects": [{"name": "", "description": "", "technologies": [""]}],
  "education": [{"degree": "", "institution": "", "year": ""}]
}
Use empty arrays for sections the CV does not contain.

CV text:
%s`

type geminiProfileExtractor struct {
	gemini     GeminiService
	fallback   ProfileExtractor
	maxRetries int
}

// NewGeminiProfileExtractor wraps a Gemini client as a ProfileExtractor.
// Extraction is best effort: on any model or parse failure the placeholder
// extractor's output is returned so an upload never fails on this path.
func NewGeminiProfileExtractor(gemini GeminiService, maxRetries int) ProfileExtractor {
	return &geminiProfileExtractor{
		gemini:     gemini,
		fallback:   NewPlaceholderProfileExtractor(),
		maxRetries: maxRetries,
	}
}

func (g *geminiProfileExtractor) Extract(ctx context.Context, text string, skills []string) *ProfileData {
	if strings.TrimSpace(text) == "" {
		return g.fallback.Extract(ctx, text, skills)
	}

	raw, err := g.gemini.GenerateTextWithRetry(ctx, fmt.Sprintf(profilePrompt, text), 0.1, g.maxRetries)
	if err != nil {
		log.Printf("profile extraction via gemini failed, using placeholder: %v", err)
		return g.fallback.Extract(ctx, text, skills)
	}

	var parsed struct {
		Experience models.ExperienceEntries `json:"experience"`
		Projects   models.ProjectEntries    `json:"projects"`
		Education  models.EducationEntries  `json:"education"`
	}
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &parsed); err != nil {
		log.Printf("profile extraction returned unparseable JSON, using placeholder: %v", err)
		return g.fallback.Extract(ctx, text, skills)
	}

	data := &ProfileData{
		Experience: parsed.Experience,
		Projects:   parsed.Projects,
		Education:  parsed.Education,
	}

	// Project technologies stay grounded in the extracted skill set even when
	// the model proposes its own.
	for i := range data.Projects {
		if len(data.Projects[i].Technologies) == 0 {
			data.Projects[i].Technologies = topSkills(skills, 3)
		}
	}

	return data
}

// cleanJSON strips markdown code fences that models sometimes wrap around
// JSON output.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
