package parts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/models"
	partsvc "github.com/killallgit/podscribe-api/internal/services/parts"
)

// PartRequest is the create/update payload
type PartRequest struct {
	EpisodeSpeakerID uint    `json:"episode_speaker_id"`
	Text             string  `json:"text"`
	PartType         int     `json:"part_type"`
	StartsAt         float64 `json:"starts_at"`
	EndsAt           float64 `json:"ends_at"`
}

// loadOwned fetches the part and enforces that it belongs to the episode in
// the path. A foreign part reads as not found.
func loadOwned(c *gin.Context, deps *types.Dependencies) (*models.Part, bool) {
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

// GetAll lists the parts of one episode
// @Summary      List parts
// @Tags         parts
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Success      200 {array} models.Part
// @Router       /api/episodes/{episode_id}/parts [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episode_id")
		if !ok {
			return
		}

		parts, err := deps.PartService.ListByEpisode(c.Request.Context(), episodeID)
		if err != nil {
			types.SendInternalError(c, "Failed to list parts")
			return
		}
		types.SendSuccess(c, parts)
	}
}

// Post creates a part
// @Summary      Create a part
// @Tags         parts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        request body PartRequest true "Part details"
// @Success      201 {object} models.Part
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Router       /api/episodes/{episode_id}/parts [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episode_id")
		if !ok {
			return
		}

		var req PartRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		part := models.Part{
			EpisodeID:        episodeID,
			EpisodeSpeakerID: req.EpisodeSpeakerID,
			Text:             req.Text,
			PartType:         req.PartType,
			StartsAt:         req.StartsAt,
			EndsAt:           req.EndsAt,
		}
		if err := deps.PartService.CreatePart(c.Request.Context(), &part); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, part)
	}
}

// GetByID returns one part
// @Summary      Get a part
// @Tags         parts
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Success      200 {object} models.Part
// @Failure      404 {object} types.ErrorResponse "Part not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		part, ok := loadOwned(c, deps)
		if !ok {
			return
		}
		types.SendSuccess(c, part)
	}
}

// Put updates a part's own fields. Text edits normally flow through word
// updates or reflow; a direct text set here still refreshes the index.
// @Summary      Update a part
// @Tags         parts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        request body PartRequest true "Part details"
// @Success      200 {object} models.Part
// @Failure      404 {object} types.ErrorResponse "Part not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		part, ok := loadOwned(c, deps)
		if !ok {
			return
		}

		var req PartRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		part.EpisodeSpeakerID = req.EpisodeSpeakerID
		part.Text = req.Text
		part.PartType = req.PartType
		part.StartsAt = req.StartsAt
		part.EndsAt = req.EndsAt

		if err := deps.PartService.UpdatePart(c.Request.Context(), part); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, part)
	}
}

// Delete removes a part and its search index entry
// @Summary      Delete a part
// @Tags         parts
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Success      204 "Part deleted"
// @Failure      404 {object} types.ErrorResponse "Part not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		part, ok := loadOwned(c, deps)
		if !ok {
			return
		}

		if err := deps.PartService.DeletePart(c.Request.Context(), part.ID); err != nil {
			types.SendInternalError(c, "Failed to delete part")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
