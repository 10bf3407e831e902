package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_CaseInsensitiveVocabularyOrder(t *testing.T) {
	vocab, err := NewSkillVocabulary([]string{"JavaScript", "Python", "Go"})
	require.NoError(t, err)

	extractor := NewSkillExtractor(vocab)

	skills := extractor.ExtractSkills("I know javascript and PYTHON")
	assert.Equal(t, []string{"JavaScript", "Python"}, skills)
}

func TestExtractSkills_EmptyText(t *testing.T) {
	vocab, err := NewSkillVocabulary(DefaultSkillVocabulary)
	require.NoError(t, err)

	extractor := NewSkillExtractor(vocab)

	skills := extractor.ExtractSkills("")
	assert.Empty(t, skills)
}

func TestExtractSkills_OrderMatchesVocabularyNotDocument(t *testing.T) {
	vocab, err := NewSkillVocabulary([]string{"Python", "Docker", "AWS"})
	require.NoError(t, err)

	extractor := NewSkillExtractor(vocab)

	skills := extractor.ExtractSkills("AWS first, then Docker, then Python")
	assert.Equal(t, []string{"Python", "Docker", "AWS"}, skills)
}

func TestExtractSkills_SubstringCollision(t *testing.T) {
	// "Java" is a substring of "JavaScript"; exact substring matching means a
	// document mentioning only JavaScript also matches the Java entry.
	vocab, err := NewSkillVocabulary([]string{"Java", "JavaScript"})
	require.NoError(t, err)

	extractor := NewSkillExtractor(vocab)

	skills := extractor.ExtractSkills("five years of JavaScript")
	assert.Equal(t, []string{"Java", "JavaScript"}, skills)
}

func TestExtractSkills_NoDuplicates(t *testing.T) {
	vocab, err := NewSkillVocabulary([]string{"Python"})
	require.NoError(t, err)

	extractor := NewSkillExtractor(vocab)

	skills := extractor.ExtractSkills("Python, python and more PYTHON")
	assert.Equal(t, []string{"Python"}, skills)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "node.js", Normalize("Node.JS"))
}
