package episodes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	episodesvc "github.com/killallgit/podscribe-api/internal/services/episodes"
)

// Delete removes an episode and its transcript rows
// @Summary      Delete an episode
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Success      204 "Episode deleted"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/episodes/{episode_id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episode_id")
		if !ok {
			return
		}

		if err := deps.EpisodeService.DeleteEpisode(c.Request.Context(), episodeID); err != nil {
			if errors.Is(err, episodesvc.ErrEpisodeNotFound) {
				types.SendNotFound(c, "Episode not found")
				return
			}
			types.SendInternalError(c, "Failed to delete episode")
			return
		}

		if err := deps.AudioStore.Delete(c.Request.Context(), episodeID); err != nil {
			types.SendInternalError(c, "Failed to delete episode audio")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
