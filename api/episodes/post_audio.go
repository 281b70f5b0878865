package episodes

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	episodesvc "github.com/killallgit/podscribe-api/internal/services/episodes"
)

// PostAudio attaches an audio file to an episode
// @Summary      Attach episode audio
// @Description  Stores the raw request body as the episode's audio file and marks the episode accordingly
// @Tags         episodes
// @Security     BearerAuth
// @Accept       octet-stream
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Success      200 {object} models.Episode
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/episodes/{episode_id}/audio [post]
func PostAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episode_id")
		if !ok {
			return
		}

		if _, err := deps.EpisodeService.GetEpisodeByID(c.Request.Context(), episodeID); err != nil {
			if errors.Is(err, episodesvc.ErrEpisodeNotFound) {
				types.SendNotFound(c, "Episode not found")
				return
			}
			types.SendInternalError(c, "Failed to fetch episode")
			return
		}

		if err := deps.AudioStore.Save(c.Request.Context(), episodeID, c.Request.Body); err != nil {
			types.SendInternalError(c, "Failed to store audio")
			return
		}

		episode, err := deps.EpisodeService.MarkAudioAttached(c.Request.Context(), episodeID)
		if err != nil {
			types.SendInternalError(c, "Failed to update episode")
			return
		}
		types.SendSuccess(c, episode)
	}
}
