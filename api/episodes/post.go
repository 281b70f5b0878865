package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/models"
)

// Post creates an episode
// @Summary      Create an episode
// @Tags         episodes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body EpisodeRequest true "Episode details"
// @Success      201 {object} models.Episode
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Failure      401 {object} types.ErrorResponse "Missing token or insufficient role"
// @Router       /api/episodes [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EpisodeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		episode := models.Episode{
			Title:        req.Title,
			Link:         req.Link,
			Description:  req.Description,
			Filename:     req.Filename,
			ExternalID:   req.ExternalID,
			PublishedAt:  req.PublishedAt,
			HasAudioFile: req.HasAudioFile,
		}
		if err := deps.EpisodeService.CreateEpisode(c.Request.Context(), &episode); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, episode)
	}
}
