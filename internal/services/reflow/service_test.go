package reflow_test

import (
	"context"
	"testing"

	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/internal/services/reflow"
	apperrors "github.com/killallgit/podscribe-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeIndex struct {
	docs    map[uint]string
	deleted []uint
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: make(map[uint]string)}
}

func (f *fakeIndex) UpsertPart(partID uint, text string) error {
	f.docs[partID] = text
	return nil
}

func (f *fakeIndex) DeletePart(partID uint) error {
	delete(f.docs, partID)
	f.deleted = append(f.deleted, partID)
	return nil
}

// fixture holds one episode with a single part of two sections, two words
// each. Section one is "hi there" at 0..2, section two "how are" at 2..4.
type fixture struct {
	db       *gorm.DB
	index    *fakeIndex
	service  *reflow.Service
	episode  models.Episode
	speaker  models.EpisodeSpeaker
	part     models.Part
	sections []models.Section
	words    []models.Word
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	f := &fixture{db: db, index: newFakeIndex()}
	f.service = reflow.NewService(db, f.index)

	f.episode = models.Episode{Title: "Episode 1"}
	require.NoError(t, db.Create(&f.episode).Error)

	speaker := models.Speaker{Name: "Alice"}
	require.NoError(t, db.Create(&speaker).Error)
	f.speaker = models.EpisodeSpeaker{EpisodeID: f.episode.ID, SpeakerID: speaker.ID}
	require.NoError(t, db.Create(&f.speaker).Error)

	f.part = models.Part{
		EpisodeID:        f.episode.ID,
		EpisodeSpeakerID: f.speaker.ID,
		Text:             "hi there how are",
		StartsAt:         0,
		EndsAt:           4,
	}
	require.NoError(t, db.Create(&f.part).Error)

	f.sections = []models.Section{
		{PartID: f.part.ID, Text: "hi there", StartsAt: 0, EndsAt: 2},
		{PartID: f.part.ID, Text: "how are", StartsAt: 2, EndsAt: 4},
	}
	for i := range f.sections {
		require.NoError(t, db.Create(&f.sections[i]).Error)
	}

	f.words = []models.Word{
		{SectionID: f.sections[0].ID, Text: "hi", StartsAt: 0, EndsAt: 1},
		{SectionID: f.sections[0].ID, Text: "there", StartsAt: 1, EndsAt: 2},
		{SectionID: f.sections[1].ID, Text: "how", StartsAt: 2, EndsAt: 3},
		{SectionID: f.sections[1].ID, Text: "are", StartsAt: 3, EndsAt: 4},
	}
	for i := range f.words {
		require.NoError(t, db.Create(&f.words[i]).Error)
	}
	return f
}

func (f *fixture) wordInput(i int) reflow.WordInput {
	w := f.words[i]
	return reflow.WordInput{
		ID:       w.ID,
		Text:     w.Text,
		StartsAt: w.StartsAt,
		EndsAt:   w.EndsAt,
	}
}

func (f *fixture) fullSubmission() reflow.Submission {
	return reflow.Submission{
		Sections: []reflow.SectionInput{
			{ID: int64(f.sections[0].ID), Words: []reflow.WordInput{f.wordInput(0), f.wordInput(1)}},
			{ID: int64(f.sections[1].ID), Words: []reflow.WordInput{f.wordInput(2), f.wordInput(3)}},
		},
	}
}

func TestApplyUnknownPart(t *testing.T) {
	f := newFixture(t)
	err := f.service.Apply(context.Background(), f.episode.ID, 999, f.fullSubmission())
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}

func TestApplyRejectsInvalidSubmissions(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(s *reflow.Submission)
	}{
		{
			name:   "empty section",
			mutate: func(s *reflow.Submission) { s.Sections[0].Words = nil },
		},
		{
			name:   "unknown move directive",
			mutate: func(s *reflow.Submission) { s.Sections[0].Move = "sideways" },
		},
		{
			name: "duplicate section id",
			mutate: func(s *reflow.Submission) {
				s.Sections[1].ID = s.Sections[0].ID
			},
		},
		{
			name:   "foreign section id",
			mutate: func(s *reflow.Submission) { s.Sections[0].ID = 999 },
		},
		{
			name: "duplicate word id",
			mutate: func(s *reflow.Submission) {
				s.Sections[1].Words[0] = s.Sections[0].Words[0]
			},
		},
		{
			name:   "foreign word id",
			mutate: func(s *reflow.Submission) { s.Sections[0].Words[0].ID = 999 },
		},
		{
			name: "missing word",
			mutate: func(s *reflow.Submission) {
				s.Sections[1].Words = s.Sections[1].Words[:1]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submission := f.fullSubmission()
			tt.mutate(&submission)

			err := f.service.Apply(context.Background(), f.episode.ID, f.part.ID, submission)
			assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetCode(err))

			// No write may survive a rejected submission
			var part models.Part
			require.NoError(t, f.db.First(&part, f.part.ID).Error)
			assert.Equal(t, "hi there how are", part.Text)

			var sectionCount int64
			require.NoError(t, f.db.Model(&models.Section{}).Count(&sectionCount).Error)
			assert.Equal(t, int64(2), sectionCount)
			assert.Empty(t, f.index.docs)
		})
	}
}

func TestApplyRecomputesDenormalizedText(t *testing.T) {
	f := newFixture(t)

	submission := f.fullSubmission()
	submission.Sections[0].Words[1].Hidden = true
	submission.Sections[1].Words[0].Overwrite = "HOW"

	require.NoError(t, f.service.Apply(context.Background(), f.episode.ID, f.part.ID, submission))

	var part models.Part
	require.NoError(t, f.db.First(&part, f.part.ID).Error)
	assert.Equal(t, "hi HOW are", part.Text)
	assert.Equal(t, "hi HOW are", f.index.docs[part.ID])

	var first models.Section
	require.NoError(t, f.db.First(&first, f.sections[0].ID).Error)
	assert.Equal(t, "hi", first.Text)
}

func TestApplyRepartitionsWords(t *testing.T) {
	f := newFixture(t)

	// Pull "how" into the first section, leave "are" alone in the second
	submission := reflow.Submission{
		Sections: []reflow.SectionInput{
			{ID: int64(f.sections[0].ID), Words: []reflow.WordInput{f.wordInput(0), f.wordInput(1), f.wordInput(2)}},
			{ID: int64(f.sections[1].ID), Words: []reflow.WordInput{f.wordInput(3)}},
		},
	}
	require.NoError(t, f.service.Apply(context.Background(), f.episode.ID, f.part.ID, submission))

	var first models.Section
	require.NoError(t, f.db.First(&first, f.sections[0].ID).Error)
	assert.Equal(t, "hi there how", first.Text)
	assert.Equal(t, 0.0, first.StartsAt)
	assert.Equal(t, 3.0, first.EndsAt)
	assert.Equal(t, 1.0, first.WordsPerSecond)

	var moved models.Word
	require.NoError(t, f.db.First(&moved, f.words[2].ID).Error)
	assert.Equal(t, f.sections[0].ID, moved.SectionID)
}

func TestApplyCreatesNewSection(t *testing.T) {
	f := newFixture(t)

	submission := reflow.Submission{
		Sections: []reflow.SectionInput{
			{ID: int64(f.sections[0].ID), Words: []reflow.WordInput{f.wordInput(0), f.wordInput(1)}},
			{ID: 0, Words: []reflow.WordInput{f.wordInput(2)}},
			{ID: -1, Words: []reflow.WordInput{f.wordInput(3)}},
		},
	}
	require.NoError(t, f.service.Apply(context.Background(), f.episode.ID, f.part.ID, submission))

	var sections []models.Section
	require.NoError(t, f.db.Where("part_id = ?", f.part.ID).Order("starts_at").Find(&sections).Error)
	require.Len(t, sections, 3)
	assert.Equal(t, "hi there", sections[0].Text)
	assert.Equal(t, "how", sections[1].Text)
	assert.Equal(t, "are", sections[2].Text)

	// The unreferenced second section was deleted
	var gone models.Section
	err := f.db.First(&gone, f.sections[1].ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestApplyMoveUpCreatesPartWhenFirst(t *testing.T) {
	f := newFixture(t)

	submission := f.fullSubmission()
	submission.Sections[0].Move = reflow.MoveUp

	require.NoError(t, f.service.Apply(context.Background(), f.episode.ID, f.part.ID, submission))

	var parts []models.Part
	require.NoError(t, f.db.Where("episode_id = ?", f.episode.ID).Find(&parts).Error)
	require.Len(t, parts, 2)

	var created models.Part
	for _, part := range parts {
		if part.ID != f.part.ID {
			created = part
		}
	}
	assert.Equal(t, "hi there", created.Text)
	assert.Equal(t, 0.0, created.StartsAt)
	assert.Equal(t, 2.0, created.EndsAt)
	assert.Equal(t, f.speaker.ID, created.EpisodeSpeakerID)

	var original models.Part
	require.NoError(t, f.db.First(&original, f.part.ID).Error)
	assert.Equal(t, "how are", original.Text)
	assert.Equal(t, 2.0, original.StartsAt)
	assert.Equal(t, 4.0, original.EndsAt)

	assert.Equal(t, "hi there", f.index.docs[created.ID])
	assert.Equal(t, "how are", f.index.docs[original.ID])

	var movedSection models.Section
	require.NoError(t, f.db.First(&movedSection, f.sections[0].ID).Error)
	assert.Equal(t, created.ID, movedSection.PartID)
}

func TestApplyMoveUpExtendsNeighbor(t *testing.T) {
	f := newFixture(t)

	earlier := models.Part{
		EpisodeID:        f.episode.ID,
		EpisodeSpeakerID: f.speaker.ID,
		Text:             "welcome back",
		StartsAt:         -5,
		EndsAt:           -1,
	}
	require.NoError(t, f.db.Create(&earlier).Error)

	submission := f.fullSubmission()
	submission.Sections[0].Move = reflow.MoveUp

	require.NoError(t, f.service.Apply(context.Background(), f.episode.ID, f.part.ID, submission))

	var neighbor models.Part
	require.NoError(t, f.db.First(&neighbor, earlier.ID).Error)
	assert.Equal(t, "welcome back hi there", neighbor.Text)
	assert.Equal(t, -5.0, neighbor.StartsAt)
	assert.Equal(t, 2.0, neighbor.EndsAt)
	assert.Equal(t, "welcome back hi there", f.index.docs[neighbor.ID])
}

func TestApplyMoveDownNewIgnoresNeighbor(t *testing.T) {
	f := newFixture(t)

	later := models.Part{
		EpisodeID:        f.episode.ID,
		EpisodeSpeakerID: f.speaker.ID,
		Text:             "see you next week",
		StartsAt:         10,
		EndsAt:           12,
	}
	require.NoError(t, f.db.Create(&later).Error)

	submission := f.fullSubmission()
	submission.Sections[1].Move = reflow.MoveDownNew

	require.NoError(t, f.service.Apply(context.Background(), f.episode.ID, f.part.ID, submission))

	var untouched models.Part
	require.NoError(t, f.db.First(&untouched, later.ID).Error)
	assert.Equal(t, "see you next week", untouched.Text)

	var parts []models.Part
	require.NoError(t, f.db.Where("episode_id = ?", f.episode.ID).Find(&parts).Error)
	assert.Len(t, parts, 3)
}

func TestApplyAllSectionsMovedDeletesPart(t *testing.T) {
	f := newFixture(t)

	submission := f.fullSubmission()
	submission.Sections[0].Move = reflow.MoveUpNew
	submission.Sections[1].Move = reflow.MoveUpNew

	require.NoError(t, f.service.Apply(context.Background(), f.episode.ID, f.part.ID, submission))

	var gone models.Part
	err := f.db.First(&gone, f.part.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Contains(t, f.index.deleted, f.part.ID)

	var parts []models.Part
	require.NoError(t, f.db.Where("episode_id = ?", f.episode.ID).Find(&parts).Error)
	require.Len(t, parts, 1)
	assert.Equal(t, "hi there how are", parts[0].Text)
	assert.Equal(t, "hi there how are", f.index.docs[parts[0].ID])
}

func TestApplyMoveUpNewKeepsNegativeBounds(t *testing.T) {
	f := newFixture(t)

	// A part entirely before time zero; the created part must carry the
	// section's real end, not fall back to zero
	part := models.Part{
		EpisodeID:        f.episode.ID,
		EpisodeSpeakerID: f.speaker.ID,
		Text:             "good morning",
		StartsAt:         -4,
		EndsAt:           -2,
	}
	require.NoError(t, f.db.Create(&part).Error)
	section := models.Section{PartID: part.ID, Text: "good morning", StartsAt: -4, EndsAt: -2}
	require.NoError(t, f.db.Create(&section).Error)
	words := []models.Word{
		{SectionID: section.ID, Text: "good", StartsAt: -4, EndsAt: -3},
		{SectionID: section.ID, Text: "morning", StartsAt: -3, EndsAt: -2},
	}
	for i := range words {
		require.NoError(t, f.db.Create(&words[i]).Error)
	}

	submission := reflow.Submission{
		Sections: []reflow.SectionInput{
			{
				ID:   int64(section.ID),
				Move: reflow.MoveUpNew,
				Words: []reflow.WordInput{
					{ID: words[0].ID, Text: "good", StartsAt: -4, EndsAt: -3},
					{ID: words[1].ID, Text: "morning", StartsAt: -3, EndsAt: -2},
				},
			},
		},
	}
	require.NoError(t, f.service.Apply(context.Background(), f.episode.ID, part.ID, submission))

	var created models.Part
	require.NoError(t, f.db.Where("episode_id = ? AND text = ?", f.episode.ID, "good morning").
		First(&created).Error)
	require.NotEqual(t, part.ID, created.ID)
	assert.Equal(t, -4.0, created.StartsAt)
	assert.Equal(t, -2.0, created.EndsAt)
}

func TestApplyUpdatesSpeakerAndType(t *testing.T) {
	f := newFixture(t)

	other := models.Speaker{Name: "Bob"}
	require.NoError(t, f.db.Create(&other).Error)
	binding := models.EpisodeSpeaker{EpisodeID: f.episode.ID, SpeakerID: other.ID}
	require.NoError(t, f.db.Create(&binding).Error)

	submission := f.fullSubmission()
	submission.PartType = 2
	submission.EpisodeSpeakerID = binding.ID

	require.NoError(t, f.service.Apply(context.Background(), f.episode.ID, f.part.ID, submission))

	var part models.Part
	require.NoError(t, f.db.First(&part, f.part.ID).Error)
	assert.Equal(t, 2, part.PartType)
	assert.Equal(t, binding.ID, part.EpisodeSpeakerID)
}
