package transcript_test

import (
	"testing"

	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/internal/services/transcript"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveText(t *testing.T) {
	assert.Equal(t, "hi", transcript.EffectiveText(models.Word{Text: "hi"}))
	assert.Equal(t, "hello", transcript.EffectiveText(models.Word{Text: "hi", Overwrite: "hello"}))
}

func TestSectionText(t *testing.T) {
	tests := []struct {
		name     string
		words    []models.Word
		expected string
	}{
		{
			name:     "empty section",
			words:    nil,
			expected: "",
		},
		{
			name: "ordered by start time",
			words: []models.Word{
				{Text: "there", StartsAt: 2},
				{Text: "hi", StartsAt: 0},
			},
			expected: "hi there",
		},
		{
			name: "hidden words are skipped",
			words: []models.Word{
				{Text: "hi", StartsAt: 0},
				{Text: "um", StartsAt: 1, Hidden: true},
				{Text: "there", StartsAt: 2},
			},
			expected: "hi there",
		},
		{
			name: "overwrite wins over raw text",
			words: []models.Word{
				{Text: "hi", StartsAt: 0},
				{Text: "ther", Overwrite: "there", StartsAt: 2},
			},
			expected: "hi there",
		},
		{
			name: "all words hidden",
			words: []models.Word{
				{Text: "hi", StartsAt: 0, Hidden: true},
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, transcript.SectionText(tt.words))
		})
	}
}

func TestPartText(t *testing.T) {
	sections := []models.Section{
		{Text: "how are you", StartsAt: 5},
		{Text: "hi there", StartsAt: 0},
	}
	assert.Equal(t, "hi there how are you", transcript.PartText(sections))
	assert.Equal(t, "", transcript.PartText(nil))
}

func TestSectionSpan(t *testing.T) {
	words := []models.Word{
		{Text: "there", StartsAt: 2, EndsAt: 5},
		{Text: "hi", StartsAt: 0, EndsAt: 2},
	}
	startsAt, endsAt := transcript.SectionSpan(words)
	assert.Equal(t, 0.0, startsAt)
	assert.Equal(t, 5.0, endsAt)

	startsAt, endsAt = transcript.SectionSpan(nil)
	assert.Equal(t, 0.0, startsAt)
	assert.Equal(t, 0.0, endsAt)
}

func TestWordsPerSecond(t *testing.T) {
	words := []models.Word{
		{Text: "hi", StartsAt: 0, EndsAt: 2},
		{Text: "there", StartsAt: 2, EndsAt: 4},
	}
	assert.Equal(t, 0.5, transcript.WordsPerSecond(words))

	// Degenerate spans must not divide by zero
	assert.Equal(t, 0.0, transcript.WordsPerSecond(nil))
	assert.Equal(t, 0.0, transcript.WordsPerSecond([]models.Word{
		{Text: "hi", StartsAt: 3, EndsAt: 3},
	}))
}
