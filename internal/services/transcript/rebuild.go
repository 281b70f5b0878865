// Package transcript holds the pure text and timing reconstruction rules
// shared by word edits, import and reflow. Everything here operates on
// snapshots of child rows so it can be exercised without a database.
package transcript

import (
	"sort"
	"strings"

	"github.com/killallgit/podscribe-api/internal/models"
)

// EffectiveText returns the word text an editor sees: the manual overwrite
// when present, the raw ASR text otherwise.
func EffectiveText(word models.Word) string {
	if word.Overwrite != "" {
		return word.Overwrite
	}
	return word.Text
}

// SectionText rebuilds a section's denormalized text from its words:
// space-joined effective text of non-hidden words in ascending starts_at
// order.
func SectionText(words []models.Word) string {
	ordered := make([]models.Word, len(words))
	copy(ordered, words)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartsAt < ordered[j].StartsAt
	})

	parts := make([]string, 0, len(ordered))
	for _, word := range ordered {
		if word.Hidden {
			continue
		}
		parts = append(parts, EffectiveText(word))
	}
	return strings.Join(parts, " ")
}

// PartText rebuilds a part's denormalized text from its sections:
// space-joined section text in ascending starts_at order.
func PartText(sections []models.Section) string {
	ordered := make([]models.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartsAt < ordered[j].StartsAt
	})

	parts := make([]string, 0, len(ordered))
	for _, section := range ordered {
		parts = append(parts, section.Text)
	}
	return strings.Join(parts, " ")
}

// SectionSpan returns the time span covered by a word list, in starts_at
// order. Zero span for an empty list.
func SectionSpan(words []models.Word) (startsAt, endsAt float64) {
	if len(words) == 0 {
		return 0, 0
	}

	ordered := make([]models.Word, len(words))
	copy(ordered, words)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartsAt < ordered[j].StartsAt
	})
	return ordered[0].StartsAt, ordered[len(ordered)-1].EndsAt
}

// WordsPerSecond computes the section pace: word count over the span from
// the first word's start to the last word's end. Returns 0 for empty
// sections or degenerate spans rather than dividing by zero.
func WordsPerSecond(words []models.Word) float64 {
	if len(words) == 0 {
		return 0
	}

	startsAt, endsAt := SectionSpan(words)
	duration := endsAt - startsAt
	if duration <= 0 {
		return 0
	}
	return float64(len(words)) / duration
}
