package words

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/internal/services/parts"
	"github.com/killallgit/podscribe-api/internal/services/searchindex"
	sectionsvc "github.com/killallgit/podscribe-api/internal/services/sections"
	wordsvc "github.com/killallgit/podscribe-api/internal/services/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func passthrough(c *gin.Context) {}

// testSuite seeds two parts in one episode so ownership mismatches have a
// real foreign target to aim at.
type testSuite struct {
	t       *testing.T
	db      *gorm.DB
	index   *searchindex.Index
	router  *gin.Engine
	episode models.Episode
	part    models.Part
	other   models.Part
	section models.Section
	words   []models.Word
}

func newTestSuite(t *testing.T) *testSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	index, err := searchindex.OpenMemOnly()
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	s := &testSuite{t: t, db: db, index: index}

	s.episode = models.Episode{Title: "Episode 1"}
	require.NoError(t, db.Create(&s.episode).Error)

	s.part = models.Part{EpisodeID: s.episode.ID, EpisodeSpeakerID: 1, Text: "hi there"}
	require.NoError(t, db.Create(&s.part).Error)
	s.other = models.Part{EpisodeID: s.episode.ID, EpisodeSpeakerID: 1, Text: "how are"}
	require.NoError(t, db.Create(&s.other).Error)

	s.section = models.Section{PartID: s.part.ID, Text: "hi there", StartsAt: 0, EndsAt: 2}
	require.NoError(t, db.Create(&s.section).Error)

	s.words = []models.Word{
		{SectionID: s.section.ID, Text: "hi", StartsAt: 0, EndsAt: 1},
		{SectionID: s.section.ID, Text: "there", StartsAt: 1, EndsAt: 2},
	}
	for i := range s.words {
		require.NoError(t, db.Create(&s.words[i]).Error)
	}

	require.NoError(t, index.UpsertPart(s.part.ID, s.part.Text))
	require.NoError(t, index.UpsertPart(s.other.ID, s.other.Text))

	deps := &types.Dependencies{
		PartService:    parts.NewService(parts.NewRepository(db), index),
		SectionService: sectionsvc.NewService(sectionsvc.NewRepository(db)),
		WordService:    wordsvc.NewService(wordsvc.NewRepository(db), index),
	}

	router := gin.New()
	group := router.Group("/api/episodes")
	RegisterRoutes(group, deps, passthrough, passthrough, passthrough)
	s.router = router
	return s
}

func (s *testSuite) request(method, path string, payload any) *httptest.ResponseRecorder {
	s.t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(s.t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testSuite) path(episodeID, partID, sectionID uint) string {
	return fmt.Sprintf("/api/episodes/%d/parts/%d/sections/%d/words",
		episodeID, partID, sectionID)
}

func (s *testSuite) hidePayload(word models.Word) WordRequest {
	return WordRequest{
		Text:     word.Text,
		Hidden:   true,
		StartsAt: word.StartsAt,
		EndsAt:   word.EndsAt,
	}
}

func TestPutThroughForeignPartIsRejected(t *testing.T) {
	s := newTestSuite(t)

	// The path names the neighboring part but the word lives under s.part;
	// the write must not go through and must not rebuild anything.
	path := s.path(s.episode.ID, s.other.ID, s.section.ID) + fmt.Sprintf("/%d", s.words[0].ID)
	w := s.request("PUT", path, s.hidePayload(s.words[0]))
	require.Equal(t, http.StatusNotFound, w.Code)

	var word models.Word
	require.NoError(t, s.db.First(&word, s.words[0].ID).Error)
	assert.False(t, word.Hidden)

	var part models.Part
	require.NoError(t, s.db.First(&part, s.part.ID).Error)
	assert.Equal(t, "hi there", part.Text)

	hits, err := s.index.Search("hi", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, s.part.ID, hits[0].PartID)
}

func TestPutRebuildsOwningPart(t *testing.T) {
	s := newTestSuite(t)

	path := s.path(s.episode.ID, s.part.ID, s.section.ID) + fmt.Sprintf("/%d", s.words[0].ID)
	w := s.request("PUT", path, s.hidePayload(s.words[0]))
	require.Equal(t, http.StatusOK, w.Code)

	var part models.Part
	require.NoError(t, s.db.First(&part, s.part.ID).Error)
	assert.Equal(t, "there", part.Text)

	var neighbor models.Part
	require.NoError(t, s.db.First(&neighbor, s.other.ID).Error)
	assert.Equal(t, "how are", neighbor.Text)

	// The index entry follows the rebuilt text, so the hidden word no
	// longer matches
	hits, err := s.index.Search("hi", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestRoutesEnforceEpisodeOwnership(t *testing.T) {
	s := newTestSuite(t)

	foreign := models.Episode{Title: "Episode 2"}
	require.NoError(t, s.db.Create(&foreign).Error)

	path := s.path(foreign.ID, s.part.ID, s.section.ID)
	assert.Equal(t, http.StatusNotFound, s.request("GET", path, nil).Code)
	assert.Equal(t, http.StatusNotFound,
		s.request("GET", path+fmt.Sprintf("/%d", s.words[0].ID), nil).Code)
}

func TestPostThroughForeignPartIsRejected(t *testing.T) {
	s := newTestSuite(t)

	path := s.path(s.episode.ID, s.other.ID, s.section.ID)
	w := s.request("POST", path, WordRequest{Text: "friend", StartsAt: 2, EndsAt: 3})
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, s.db.Model(&models.Word{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGetAllListsSectionWords(t *testing.T) {
	s := newTestSuite(t)

	w := s.request("GET", s.path(s.episode.ID, s.part.ID, s.section.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Word
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "hi", listed[0].Text)
}
