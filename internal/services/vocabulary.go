package services

import (
	"fmt"
	"strings"
)

// SkillVocabulary is the ordered list of canonical skill names the extractor
// scans for. Order matters: extracted skills are reported in vocabulary order.
type SkillVocabulary []string

// DefaultSkillVocabulary is used when SKILL_VOCABULARY is not configured.
var DefaultSkillVocabulary = []string{
	"JavaScript",
	"Python",
	"React",
	"Node.js",
	"SQL",
	"AWS",
	"Docker",
	"TypeScript",
	"HTML",
	"CSS",
}

// NewSkillVocabulary validates the configured skill list. Entries must be
// non-empty and unique under case folding; both are configuration errors,
// rejected here rather than at extraction time.
func NewSkillVocabulary(skills []string) (SkillVocabulary, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("skill vocabulary must not be empty")
	}

	seen := make(map[string]struct{}, len(skills))
	vocab := make(SkillVocabulary, 0, len(skills))

	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			return nil, fmt.Errorf("skill vocabulary entries must not be empty")
		}

		folded := Normalize(skill)
		if _, dup := seen[folded]; dup {
			return nil, fmt.Errorf("duplicate skill vocabulary entry: %q", skill)
		}
		seen[folded] = struct{}{}

		vocab = append(vocab, skill)
	}

	return vocab, nil
}
