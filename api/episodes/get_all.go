package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// GetAll lists all episodes
// @Summary      List episodes
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} models.Episode
// @Failure      401 {object} types.ErrorResponse "Missing token or insufficient role"
// @Router       /api/episodes [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodes, err := deps.EpisodeService.ListEpisodes(c.Request.Context())
		if err != nil {
			types.SendInternalError(c, "Failed to list episodes")
			return
		}
		types.SendSuccess(c, episodes)
	}
}
