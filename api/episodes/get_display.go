package episodes

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	episodesvc "github.com/killallgit/podscribe-api/internal/services/episodes"
)

// GetDisplay returns the full editor view of an episode
// @Summary      Get the episode display aggregate
// @Description  Returns the episode with its parts, speaker bindings and all known speakers
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Success      200 {object} episodesvc.Display
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/episodes/{episode_id}/display [get]
func GetDisplay(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episode_id")
		if !ok {
			return
		}

		display, err := deps.EpisodeService.GetDisplay(c.Request.Context(), episodeID)
		if err != nil {
			if errors.Is(err, episodesvc.ErrEpisodeNotFound) {
				types.SendNotFound(c, "Episode not found")
				return
			}
			types.SendInternalError(c, "Failed to build episode display")
			return
		}
		types.SendSuccess(c, display)
	}
}
