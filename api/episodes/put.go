package episodes

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	episodesvc "github.com/killallgit/podscribe-api/internal/services/episodes"
)

// Put updates an episode
// @Summary      Update an episode
// @Tags         episodes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        request body EpisodeRequest true "Episode details"
// @Success      200 {object} models.Episode
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/episodes/{episode_id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episode_id")
		if !ok {
			return
		}

		var req EpisodeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		episode, err := deps.EpisodeService.GetEpisodeByID(c.Request.Context(), episodeID)
		if err != nil {
			if errors.Is(err, episodesvc.ErrEpisodeNotFound) {
				types.SendNotFound(c, "Episode not found")
				return
			}
			types.SendInternalError(c, "Failed to fetch episode")
			return
		}

		episode.Title = req.Title
		episode.Link = req.Link
		episode.Description = req.Description
		episode.Filename = req.Filename
		episode.ExternalID = req.ExternalID
		episode.PublishedAt = req.PublishedAt
		episode.HasAudioFile = req.HasAudioFile

		if err := deps.EpisodeService.UpdateEpisode(c.Request.Context(), episode); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, episode)
	}
}
