package episodes

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	episodesvc "github.com/killallgit/podscribe-api/internal/services/episodes"
)

// GetByID returns a single episode
// @Summary      Get an episode
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Success      200 {object} models.Episode
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/episodes/{episode_id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episode_id")
		if !ok {
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
		types.SendSuccess(c, episode)
	}
}
