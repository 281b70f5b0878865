package speakers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/models"
	speakersvc "github.com/killallgit/podscribe-api/internal/services/speakers"
)

// SpeakerRequest is the create/update payload
type SpeakerRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// GetAll lists all known speakers
// @Summary      List speakers
// @Tags         speakers
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Success      200 {array} models.Speaker
// @Router       /api/episodes/{episode_id}/speakers [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		speakers, err := deps.SpeakerService.ListSpeakers(c.Request.Context())
		if err != nil {
			types.SendInternalError(c, "Failed to list speakers")
			return
		}
		types.SendSuccess(c, speakers)
	}
}

// Post creates a speaker
// @Summary      Create a speaker
// @Tags         speakers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        request body SpeakerRequest true "Speaker details"
// @Success      201 {object} models.Speaker
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Router       /api/episodes/{episode_id}/speakers [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SpeakerRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		speaker := models.Speaker{Name: req.Name, Description: req.Description}
		if err := deps.SpeakerService.CreateSpeaker(c.Request.Context(), &speaker); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, speaker)
	}
}

// GetByID returns one speaker
// @Summary      Get a speaker
// @Tags         speakers
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        speaker_id path int true "Speaker ID"
// @Success      200 {object} models.Speaker
// @Failure      404 {object} types.ErrorResponse "Speaker not found"
// @Router       /api/episodes/{episode_id}/speakers/{speaker_id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		speakerID, ok := types.ParseUintParam(c, "speaker_id")
		if !ok {
			return
		}

		speaker, err := deps.SpeakerService.GetSpeakerByID(c.Request.Context(), speakerID)
		if err != nil {
			if errors.Is(err, speakersvc.ErrSpeakerNotFound) {
				types.SendNotFound(c, "Speaker not found")
				return
			}
			types.SendInternalError(c, "Failed to fetch speaker")
			return
		}
		types.SendSuccess(c, speaker)
	}
}

// Put updates a speaker
// @Summary      Update a speaker
// @Tags         speakers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        speaker_id path int true "Speaker ID"
// @Param        request body SpeakerRequest true "Speaker details"
// @Success      200 {object} models.Speaker
// @Failure      404 {object} types.ErrorResponse "Speaker not found"
// @Router       /api/episodes/{episode_id}/speakers/{speaker_id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		speakerID, ok := types.ParseUintParam(c, "speaker_id")
		if !ok {
			return
		}

		var req SpeakerRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		speaker, err := deps.SpeakerService.GetSpeakerByID(c.Request.Context(), speakerID)
		if err != nil {
			if errors.Is(err, speakersvc.ErrSpeakerNotFound) {
				types.SendNotFound(c, "Speaker not found")
				return
			}
			types.SendInternalError(c, "Failed to fetch speaker")
			return
		}

		speaker.Name = req.Name
		speaker.Description = req.Description
		if err := deps.SpeakerService.UpdateSpeaker(c.Request.Context(), speaker); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, speaker)
	}
}

// Delete removes a speaker
// @Summary      Delete a speaker
// @Tags         speakers
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        speaker_id path int true "Speaker ID"
// @Success      204 "Speaker deleted"
// @Failure      404 {object} types.ErrorResponse "Speaker not found"
// @Router       /api/episodes/{episode_id}/speakers/{speaker_id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		speakerID, ok := types.ParseUintParam(c, "speaker_id")
		if !ok {
			return
		}

		if err := deps.SpeakerService.DeleteSpeaker(c.Request.Context(), speakerID); err != nil {
			if errors.Is(err, speakersvc.ErrSpeakerNotFound) {
				types.SendNotFound(c, "Speaker not found")
				return
			}
			types.SendInternalError(c, "Failed to delete speaker")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
