package words

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/models"
	partsvc "github.com/killallgit/podscribe-api/internal/services/parts"
	sectionsvc "github.com/killallgit/podscribe-api/internal/services/sections"
	wordsvc "github.com/killallgit/podscribe-api/internal/services/words"
)

// WordRequest is the create/update payload. Hiding a word or setting an
// overwrite changes the reconstructed section and part text.
type WordRequest struct {
	Text        string  `json:"text"`
	Overwrite   string  `json:"overwrite"`
	Hidden      bool    `json:"hidden"`
	StartsAt    float64 `json:"starts_at"`
	EndsAt      float64 `json:"ends_at"`
	Probability float64 `json:"probability"`
}

// ownedSection resolves the section in the path and enforces the full
// episode → part → section ownership chain. Any broken link reads as not
// found, so a write can never reach a section through a foreign part or
// episode.
func ownedSection(c *gin.Context, deps *types.Dependencies) (*models.Section, bool) {
	episodeID, ok := types.ParseUintParam(c, "episode_id")
	if !ok {
		return nil, false
	}
	partID, ok := types.ParseUintParam(c, "part_id")
	if !ok {
		return nil, false
	}
	sectionID, ok := types.ParseUintParam(c, "section_id")
	if !ok {
		return nil, false
	}

	part, err := deps.PartService.GetPartByID(c.Request.Context(), partID)
	if err != nil {
		if errors.Is(err, partsvc.ErrPartNotFound) {
			types.SendNotFound(c, "Part not found")
			return nil, false
		}
		types.SendInternalError(c, "Failed to fetch part")
		return nil, false
	}
	if part.EpisodeID != episodeID {
		types.SendNotFound(c, "Part not found")
		return nil, false
	}

	section, err := deps.SectionService.GetSectionByID(c.Request.Context(), sectionID)
	if err != nil {
		if errors.Is(err, sectionsvc.ErrSectionNotFound) {
			types.SendNotFound(c, "Section not found")
			return nil, false
		}
		types.SendInternalError(c, "Failed to fetch section")
		return nil, false
	}
	if section.PartID != part.ID {
		types.SendNotFound(c, "Section not found")
		return nil, false
	}
	return section, true
}

// loadOwned fetches the word after validating the section's ownership
// chain. A foreign word reads as not found.
func loadOwned(c *gin.Context, deps *types.Dependencies) (*models.Word, bool) {
	section, ok := ownedSection(c, deps)
	if !ok {
		return nil, false
	}
	wordID, ok := types.ParseUintParam(c, "word_id")
	if !ok {
		return nil, false
	}

	word, err := deps.WordService.GetWordByID(c.Request.Context(), wordID)
	if err != nil {
		if errors.Is(err, wordsvc.ErrWordNotFound) {
			types.SendNotFound(c, "Word not found")
			return nil, false
		}
		types.SendInternalError(c, "Failed to fetch word")
		return nil, false
	}
	if word.SectionID != section.ID {
		types.SendNotFound(c, "Word not found")
		return nil, false
	}
	return word, true
}

// GetAll lists the words of one section
// @Summary      List words
// @Tags         words
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        section_id path int true "Section ID"
// @Success      200 {array} models.Word
// @Failure      404 {object} types.ErrorResponse "Section not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/sections/{section_id}/words [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		section, ok := ownedSection(c, deps)
		if !ok {
			return
		}

		words, err := deps.WordService.ListBySection(c.Request.Context(), section.ID)
		if err != nil {
			types.SendInternalError(c, "Failed to list words")
			return
		}
		types.SendSuccess(c, words)
	}
}

// Post creates a word and rebuilds the owning section and part text
// @Summary      Create a word
// @Tags         words
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        section_id path int true "Section ID"
// @Param        request body WordRequest true "Word details"
// @Success      201 {object} models.Word
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Failure      404 {object} types.ErrorResponse "Section not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/sections/{section_id}/words [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		section, ok := ownedSection(c, deps)
		if !ok {
			return
		}

		var req WordRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		word := models.Word{
			SectionID:   section.ID,
			Text:        req.Text,
			Overwrite:   req.Overwrite,
			Hidden:      req.Hidden,
			StartsAt:    req.StartsAt,
			EndsAt:      req.EndsAt,
			Probability: req.Probability,
		}
		if err := deps.WordService.CreateWord(c.Request.Context(), &word); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, word)
	}
}

// GetByID returns one word
// @Summary      Get a word
// @Tags         words
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        section_id path int true "Section ID"
// @Param        word_id path int true "Word ID"
// @Success      200 {object} models.Word
// @Failure      404 {object} types.ErrorResponse "Word not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/sections/{section_id}/words/{word_id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		word, ok := loadOwned(c, deps)
		if !ok {
			return
		}
		types.SendSuccess(c, word)
	}
}

// Put updates a word and rebuilds the owning section and part text
// @Summary      Update a word
// @Tags         words
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        section_id path int true "Section ID"
// @Param        word_id path int true "Word ID"
// @Param        request body WordRequest true "Word details"
// @Success      200 {object} models.Word
// @Failure      404 {object} types.ErrorResponse "Word not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/sections/{section_id}/words/{word_id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		word, ok := loadOwned(c, deps)
		if !ok {
			return
		}

		var req WordRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		word.Text = req.Text
		word.Overwrite = req.Overwrite
		word.Hidden = req.Hidden
		word.StartsAt = req.StartsAt
		word.EndsAt = req.EndsAt
		word.Probability = req.Probability

		if err := deps.WordService.UpdateWord(c.Request.Context(), word); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, word)
	}
}

// Delete removes a word and rebuilds the owning section and part text
// @Summary      Delete a word
// @Tags         words
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        section_id path int true "Section ID"
// @Param        word_id path int true "Word ID"
// @Success      204 "Word deleted"
// @Failure      404 {object} types.ErrorResponse "Word not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/sections/{section_id}/words/{word_id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		word, ok := loadOwned(c, deps)
		if !ok {
			return
		}

		if err := deps.WordService.DeleteWord(c.Request.Context(), word.SectionID, word.ID); err != nil {
			types.SendInternalError(c, "Failed to delete word")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
