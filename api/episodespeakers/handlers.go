package episodespeakers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/models"
	episodespeakersvc "github.com/killallgit/podscribe-api/internal/services/episodespeakers"
)

// EpisodeSpeakerRequest is the create/update payload
type EpisodeSpeakerRequest struct {
	SpeakerID uint `json:"speaker_id" binding:"required"`
}

// loadOwned fetches the binding and enforces that it belongs to the episode
// in the path. A foreign binding reads as not found.
func loadOwned(c *gin.Context, deps *types.Dependencies) (*models.EpisodeSpeaker, bool) {
	episodeID, ok := types.ParseUintParam(c, "episode_id")
	if !ok {
		return nil, false
	}
	bindingID, ok := types.ParseUintParam(c, "episode_speaker_id")
	if !ok {
		return nil, false
	}

	binding, err := deps.EpisodeSpeakerService.GetEpisodeSpeakerByID(c.Request.Context(), bindingID)
	if err != nil {
		if errors.Is(err, episodespeakersvc.ErrEpisodeSpeakerNotFound) {
			types.SendNotFound(c, "Episode speaker not found")
			return nil, false
		}
		types.SendInternalError(c, "Failed to fetch episode speaker")
		return nil, false
	}
	if binding.EpisodeID != episodeID {
		types.SendNotFound(c, "Episode speaker not found")
		return nil, false
	}
	return binding, true
}

// GetAll lists the speaker bindings of one episode
// @Summary      List episode speakers
// @Tags         episode-speakers
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Success      200 {array} models.EpisodeSpeaker
// @Router       /api/episodes/{episode_id}/episode_speakers [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episode_id")
		if !ok {
			return
		}

		bindings, err := deps.EpisodeSpeakerService.ListByEpisode(c.Request.Context(), episodeID)
		if err != nil {
			types.SendInternalError(c, "Failed to list episode speakers")
			return
		}
		types.SendSuccess(c, bindings)
	}
}

// Post binds a speaker to an episode
// @Summary      Create an episode speaker
// @Tags         episode-speakers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        request body EpisodeSpeakerRequest true "Binding details"
// @Success      201 {object} models.EpisodeSpeaker
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Router       /api/episodes/{episode_id}/episode_speakers [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episode_id")
		if !ok {
			return
		}

		var req EpisodeSpeakerRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		binding := models.EpisodeSpeaker{EpisodeID: episodeID, SpeakerID: req.SpeakerID}
		if err := deps.EpisodeSpeakerService.CreateEpisodeSpeaker(c.Request.Context(), &binding); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, binding)
	}
}

// GetByID returns one speaker binding
// @Summary      Get an episode speaker
// @Tags         episode-speakers
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        episode_speaker_id path int true "Episode speaker ID"
// @Success      200 {object} models.EpisodeSpeaker
// @Failure      404 {object} types.ErrorResponse "Episode speaker not found"
// @Router       /api/episodes/{episode_id}/episode_speakers/{episode_speaker_id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		binding, ok := loadOwned(c, deps)
		if !ok {
			return
		}
		types.SendSuccess(c, binding)
	}
}

// Put re-points a binding at another speaker
// @Summary      Update an episode speaker
// @Tags         episode-speakers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        episode_speaker_id path int true "Episode speaker ID"
// @Param        request body EpisodeSpeakerRequest true "Binding details"
// @Success      200 {object} models.EpisodeSpeaker
// @Failure      404 {object} types.ErrorResponse "Episode speaker not found"
// @Router       /api/episodes/{episode_id}/episode_speakers/{episode_speaker_id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		binding, ok := loadOwned(c, deps)
		if !ok {
			return
		}

		var req EpisodeSpeakerRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		binding.SpeakerID = req.SpeakerID
		if err := deps.EpisodeSpeakerService.UpdateEpisodeSpeaker(c.Request.Context(), binding); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, binding)
	}
}

// Delete removes a speaker binding
// @Summary      Delete an episode speaker
// @Tags         episode-speakers
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        episode_speaker_id path int true "Episode speaker ID"
// @Success      204 "Episode speaker deleted"
// @Failure      404 {object} types.ErrorResponse "Episode speaker not found"
// @Router       /api/episodes/{episode_id}/episode_speakers/{episode_speaker_id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		binding, ok := loadOwned(c, deps)
		if !ok {
			return
		}

		if err := deps.EpisodeSpeakerService.DeleteEpisodeSpeaker(c.Request.Context(), binding.ID); err != nil {
			types.SendInternalError(c, "Failed to delete episode speaker")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
