package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkillVocabulary_Valid(t *testing.T) {
	vocab, err := NewSkillVocabulary([]string{"Go", "Python"})
	require.NoError(t, err)
	assert.Equal(t, SkillVocabulary{"Go", "Python"}, vocab)
}

func TestNewSkillVocabulary_Default(t *testing.T) {
	vocab, err := NewSkillVocabulary(DefaultSkillVocabulary)
	require.NoError(t, err)
	assert.Len(t, vocab, 10)
}

func TestNewSkillVocabulary_RejectsEmpty(t *testing.T) {
	_, err := NewSkillVocabulary(nil)
	assert.Error(t, err)
}

func TestNewSkillVocabulary_RejectsEmptyEntry(t *testing.T) {
	_, err := NewSkillVocabulary([]string{"Go", "  ", "Python"})
	assert.Error(t, err)
}

func TestNewSkillVocabulary_RejectsCaseInsensitiveDuplicate(t *testing.T) {
	_, err := NewSkillVocabulary([]string{"Go", "Python", "PYTHON"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewSkillVocabulary_TrimsWhitespace(t *testing.T) {
	vocab, err := NewSkillVocabulary([]string{" Go ", "Python"})
	require.NoError(t, err)
	assert.Equal(t, SkillVocabulary{"Go", "Python"}, vocab)
}
