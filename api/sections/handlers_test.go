package sections

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func passthrough(c *gin.Context) {}

type testSuite struct {
	t       *testing.T
	db      *gorm.DB
	router  *gin.Engine
	episode models.Episode
	part    models.Part
	other   models.Part
	section models.Section
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

	s := &testSuite{t: t, db: db}

	s.episode = models.Episode{Title: "Episode 1"}
	require.NoError(t, db.Create(&s.episode).Error)

	s.part = models.Part{EpisodeID: s.episode.ID, EpisodeSpeakerID: 1, Text: "hi there"}
	require.NoError(t, db.Create(&s.part).Error)
	s.other = models.Part{EpisodeID: s.episode.ID, EpisodeSpeakerID: 1, Text: "how are"}
	require.NoError(t, db.Create(&s.other).Error)

	s.section = models.Section{PartID: s.part.ID, Text: "hi there", StartsAt: 0, EndsAt: 2}
	require.NoError(t, db.Create(&s.section).Error)

	deps := &types.Dependencies{
		PartService:    parts.NewService(parts.NewRepository(db), index),
		SectionService: sectionsvc.NewService(sectionsvc.NewRepository(db)),
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

func (s *testSuite) path(episodeID, partID uint) string {
	return fmt.Sprintf("/api/episodes/%d/parts/%d/sections", episodeID, partID)
}

func TestSectionCRUD(t *testing.T) {
	s := newTestSuite(t)

	w := s.request("POST", s.path(s.episode.ID, s.part.ID),
		SectionRequest{Text: "how are", StartsAt: 2, EndsAt: 4})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.request("GET", s.path(s.episode.ID, s.part.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Section
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)

	path := s.path(s.episode.ID, s.part.ID) + fmt.Sprintf("/%d", s.section.ID)
	w = s.request("PUT", path, SectionRequest{Text: "hi there friend", StartsAt: 0, EndsAt: 3})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request("GET", path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Section
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "hi there friend", fetched.Text)

	assert.Equal(t, http.StatusNoContent, s.request("DELETE", path, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.request("GET", path, nil).Code)
}

func TestRoutesEnforceEpisodeOwnership(t *testing.T) {
	s := newTestSuite(t)

	foreign := models.Episode{Title: "Episode 2"}
	require.NoError(t, s.db.Create(&foreign).Error)

	// The part exists but belongs to another episode, so every route under
	// the foreign episode path reads as not found
	path := s.path(foreign.ID, s.part.ID)
	assert.Equal(t, http.StatusNotFound, s.request("GET", path, nil).Code)
	assert.Equal(t, http.StatusNotFound,
		s.request("POST", path, SectionRequest{Text: "stray"}).Code)
	assert.Equal(t, http.StatusNotFound,
		s.request("GET", path+fmt.Sprintf("/%d", s.section.ID), nil).Code)
}

func TestPutThroughForeignPartIsRejected(t *testing.T) {
	s := newTestSuite(t)

	path := s.path(s.episode.ID, s.other.ID) + fmt.Sprintf("/%d", s.section.ID)
	w := s.request("PUT", path, SectionRequest{Text: "hijacked", StartsAt: 0, EndsAt: 2})
	require.Equal(t, http.StatusNotFound, w.Code)

	var section models.Section
	require.NoError(t, s.db.First(&section, s.section.ID).Error)
	assert.Equal(t, "hi there", section.Text)
}

func TestGetAllUnknownPart(t *testing.T) {
	s := newTestSuite(t)
	assert.Equal(t, http.StatusNotFound, s.request("GET", s.path(s.episode.ID, 999), nil).Code)
	assert.Equal(t, http.StatusBadRequest,
		s.request("GET", "/api/episodes/abc/parts/1/sections", nil).Code)
}
