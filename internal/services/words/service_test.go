package words_test

import (
	"context"
	"testing"

	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/internal/services/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeIndex struct {
	docs map[uint]string
}

func (f *fakeIndex) UpsertPart(partID uint, text string) error {
	f.docs[partID] = text
	return nil
}

type fixture struct {
	db      *gorm.DB
	index   *fakeIndex
	service words.Service
	part    models.Part
	section models.Section
	words   []models.Word
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	f := &fixture{db: db, index: &fakeIndex{docs: make(map[uint]string)}}
	f.service = words.NewService(words.NewRepository(db), f.index)

	episode := models.Episode{Title: "Episode 1"}
	require.NoError(t, db.Create(&episode).Error)

	f.part = models.Part{EpisodeID: episode.ID, EpisodeSpeakerID: 1, Text: "hi there"}
	require.NoError(t, db.Create(&f.part).Error)

	f.section = models.Section{PartID: f.part.ID, Text: "hi there", StartsAt: 0, EndsAt: 2}
	require.NoError(t, db.Create(&f.section).Error)

	f.words = []models.Word{
		{SectionID: f.section.ID, Text: "hi", StartsAt: 0, EndsAt: 1},
		{SectionID: f.section.ID, Text: "there", StartsAt: 1, EndsAt: 2},
	}
	for i := range f.words {
		require.NoError(t, db.Create(&f.words[i]).Error)
	}
	return f
}

func (f *fixture) reload(t *testing.T) (models.Section, models.Part) {
	t.Helper()
	var section models.Section
	require.NoError(t, f.db.First(&section, f.section.ID).Error)
	var part models.Part
	require.NoError(t, f.db.First(&part, f.part.ID).Error)
	return section, part
}

func TestHideWordRebuildsText(t *testing.T) {
	f := newFixture(t)

	word := f.words[1]
	word.Hidden = true
	require.NoError(t, f.service.UpdateWord(context.Background(), &word))

	section, part := f.reload(t)
	assert.Equal(t, "hi", section.Text)
	assert.Equal(t, "hi", part.Text)
	assert.Equal(t, "hi", f.index.docs[part.ID])
}

func TestOverwriteWordRebuildsText(t *testing.T) {
	f := newFixture(t)

	word := f.words[0]
	word.Overwrite = "hello"
	require.NoError(t, f.service.UpdateWord(context.Background(), &word))

	section, part := f.reload(t)
	assert.Equal(t, "hello there", section.Text)
	assert.Equal(t, "hello there", part.Text)
}

func TestCreateWordRebuildsText(t *testing.T) {
	f := newFixture(t)

	word := models.Word{SectionID: f.section.ID, Text: "friend", StartsAt: 2, EndsAt: 3}
	require.NoError(t, f.service.CreateWord(context.Background(), &word))

	section, part := f.reload(t)
	assert.Equal(t, "hi there friend", section.Text)
	assert.Equal(t, "hi there friend", part.Text)
}

func TestCreateWordRequiresSection(t *testing.T) {
	f := newFixture(t)

	word := models.Word{Text: "orphan", StartsAt: 0, EndsAt: 1}
	assert.Error(t, f.service.CreateWord(context.Background(), &word))
}

func TestCreateWordRejectsInvertedSpan(t *testing.T) {
	f := newFixture(t)

	word := models.Word{SectionID: f.section.ID, Text: "bad", StartsAt: 3, EndsAt: 2}
	assert.Error(t, f.service.CreateWord(context.Background(), &word))
}

func TestDeleteWordRebuildsText(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.DeleteWord(context.Background(), f.section.ID, f.words[0].ID))

	section, part := f.reload(t)
	assert.Equal(t, "there", section.Text)
	assert.Equal(t, "there", part.Text)
	assert.Equal(t, "there", f.index.docs[part.ID])
}

func TestRebuildTargetsOwningPart(t *testing.T) {
	f := newFixture(t)

	// A second part in the same episode must stay untouched by edits to
	// the first part's words
	other := models.Part{EpisodeID: f.part.EpisodeID, EpisodeSpeakerID: 1, Text: "how are"}
	require.NoError(t, f.db.Create(&other).Error)

	word := f.words[0]
	word.Hidden = true
	require.NoError(t, f.service.UpdateWord(context.Background(), &word))

	_, part := f.reload(t)
	assert.Equal(t, "there", part.Text)
	assert.Equal(t, "there", f.index.docs[part.ID])

	var untouched models.Part
	require.NoError(t, f.db.First(&untouched, other.ID).Error)
	assert.Equal(t, "how are", untouched.Text)
	_, indexed := f.index.docs[other.ID]
	assert.False(t, indexed)
}
