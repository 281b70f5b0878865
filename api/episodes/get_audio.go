package episodes

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/services/audiostore"
	episodesvc "github.com/killallgit/podscribe-api/internal/services/episodes"
)

// GetAudio streams the stored audio of an episode
// @Summary      Fetch episode audio
// @Tags         episodes
// @Security     BearerAuth
// @Produce      octet-stream
// @Param        episode_id path int true "Episode ID"
// @Success      200 {file} binary "Audio bytes"
// @Failure      400 {object} types.ErrorResponse "Episode has no audio file"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/episodes/{episode_id}/audio [get]
func GetAudio(deps *types.Dependencies) gin.HandlerFunc {
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

		if !episode.HasAudioFile {
			types.SendBadRequest(c, "Episode has no audio file")
			return
		}

		body, size, err := deps.AudioStore.Open(c.Request.Context(), episodeID)
		if err != nil {
			if errors.Is(err, audiostore.ErrAudioNotFound) {
				types.SendBadRequest(c, "Episode has no audio file")
				return
			}
			types.SendInternalError(c, "Failed to open audio")
			return
		}
		defer body.Close()

		c.Header("Content-Length", strconv.FormatInt(size, 10))
		c.Header("Content-Type", "audio/mpeg")
		c.Status(http.StatusOK)
		io.Copy(c.Writer, body)
	}
}
