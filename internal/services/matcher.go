package services

import (
	"math"
	"strings"
)

// MatchResult is the outcome of matching a candidate's skills against a
// company's required skills. It is derived on demand and attached to an
// application, never persisted on its own.
type MatchResult struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage int      `json:"match_percentage"`
}

// ComputeMatch compares candidate skills against required skills using a
// bidirectional substring test after case folding: "AWS" matches a requirement
// of "Amazon AWS" and vice versa. Matched skills preserve candidate order,
// missing skills preserve required order, and neither list is de-duplicated
// beyond what the inputs carry.
func ComputeMatch(candidateSkills, requiredSkills []string) MatchResult {
	matched := make([]string, 0, len(candidateSkills))
	for _, skill := range candidateSkills {
		for _, required := range requiredSkills {
			if skillsOverlap(skill, required) {
				matched = append(matched, skill)
				break
			}
		}
	}

	missing := make([]string, 0, len(requiredSkills))
	for _, required := range requiredSkills {
		found := false
		for _, skill := range candidateSkills {
			if skillsOverlap(skill, required) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, required)
		}
	}

	percentage := 0
	if len(requiredSkills) > 0 {
		percentage = int(math.Round(float64(len(matched)) * 100 / float64(len(requiredSkills))))
		if percentage > 100 {
			// Duplicate candidate entries can each match the same requirement.
			percentage = 100
		}
	}

	return MatchResult{
		MatchedSkills:   matched,
		MissingSkills:   missing,
		MatchPercentage: percentage,
	}
}

func skillsOverlap(a, b string) bool {
	fa, fb := Normalize(a), Normalize(b)
	return strings.Contains(fa, fb) || strings.Contains(fb, fa)
}
