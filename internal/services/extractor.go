package services

import "strings"

type SkillExtractor interface {
	ExtractSkills(text string) []string
}

type skillExtractor struct {
	vocabulary SkillVocabulary
}

func NewSkillExtractor(vocabulary SkillVocabulary) SkillExtractor {
	return &skillExtractor{vocabulary: vocabulary}
}

// ExtractSkills returns the subsequence of the vocabulary whose entries appear
// as case-insensitive substrings of the text. The result preserves vocabulary
// order and contains no duplicates. Matching is exact substring only, so a
// vocabulary entry that is a substring of another skill name ("Java" inside
// "JavaScript") matches documents mentioning the longer name.
func (e *skillExtractor) ExtractSkills(text string) []string {
	folded := Normalize(text)

	skills := make([]string, 0, len(e.vocabulary))
	for _, skill := range e.vocabulary {
		if strings.Contains(folded, Normalize(skill)) {
			skills = append(skills, skill)
		}
	}

	return skills
}
