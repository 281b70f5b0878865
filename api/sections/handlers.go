package sections

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/models"
	partsvc "github.com/killallgit/podscribe-api/internal/services/parts"
	sectionsvc "github.com/killallgit/podscribe-api/internal/services/sections"
)

// SectionRequest is the create/update payload
type SectionRequest struct {
	Text           string  `json:"text"`
	StartsAt       float64 `json:"starts_at"`
	EndsAt         float64 `json:"ends_at"`
	WordsPerSecond float64 `json:"words_per_second"`
}

// ownedPart resolves the part in the path and enforces that it belongs to
// the episode in the path. A foreign part reads as not found.
func ownedPart(c *gin.Context, deps *types.Dependencies) (*models.Part, bool) {
	episodeID, ok := types.ParseUintParam(c, "episode_id")
	if !ok {
		return nil, false
	}
	partID, ok := types.ParseUintParam(c, "part_id")
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
	return part, true
}

// loadOwned fetches the section and enforces that it belongs to the part in
// the path, which in turn must belong to the episode. A foreign section
// reads as not found.
func loadOwned(c *gin.Context, deps *types.Dependencies) (*models.Section, bool) {
	part, ok := ownedPart(c, deps)
	if !ok {
		return nil, false
	}
	sectionID, ok := types.ParseUintParam(c, "section_id")
	if !ok {
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

// GetAll lists the sections of one part
// @Summary      List sections
// @Tags         sections
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Success      200 {array} models.Section
// @Failure      404 {object} types.ErrorResponse "Part not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/sections [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		part, ok := ownedPart(c, deps)
		if !ok {
			return
		}

		sections, err := deps.SectionService.ListByPart(c.Request.Context(), part.ID)
		if err != nil {
			types.SendInternalError(c, "Failed to list sections")
			return
		}
		types.SendSuccess(c, sections)
	}
}

// Post creates a section under a part
// @Summary      Create a section
// @Tags         sections
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        request body SectionRequest true "Section details"
// @Success      201 {object} models.Section
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Failure      404 {object} types.ErrorResponse "Part not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/sections [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		part, ok := ownedPart(c, deps)
		if !ok {
			return
		}

		var req SectionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		section := models.Section{
			PartID:         part.ID,
			Text:           req.Text,
			StartsAt:       req.StartsAt,
			EndsAt:         req.EndsAt,
			WordsPerSecond: req.WordsPerSecond,
		}
		if err := deps.SectionService.CreateSection(c.Request.Context(), &section); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, section)
	}
}

// GetByID returns one section
// @Summary      Get a section
// @Tags         sections
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        section_id path int true "Section ID"
// @Success      200 {object} models.Section
// @Failure      404 {object} types.ErrorResponse "Section not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/sections/{section_id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		section, ok := loadOwned(c, deps)
		if !ok {
			return
		}
		types.SendSuccess(c, section)
	}
}

// Put updates a section
// @Summary      Update a section
// @Tags         sections
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        section_id path int true "Section ID"
// @Param        request body SectionRequest true "Section details"
// @Success      200 {object} models.Section
// @Failure      404 {object} types.ErrorResponse "Section not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/sections/{section_id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		section, ok := loadOwned(c, deps)
		if !ok {
			return
		}

		var req SectionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		section.Text = req.Text
		section.StartsAt = req.StartsAt
		section.EndsAt = req.EndsAt
		section.WordsPerSecond = req.WordsPerSecond

		if err := deps.SectionService.UpdateSection(c.Request.Context(), section); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, section)
	}
}

// Delete removes a section and its words
// @Summary      Delete a section
// @Tags         sections
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        section_id path int true "Section ID"
// @Success      204 "Section deleted"
// @Failure      404 {object} types.ErrorResponse "Section not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/sections/{section_id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		section, ok := loadOwned(c, deps)
		if !ok {
			return
		}

		if err := deps.SectionService.DeleteSection(c.Request.Context(), section.ID); err != nil {
			types.SendInternalError(c, "Failed to delete section")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
