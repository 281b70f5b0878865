package episodes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	episodesvc "github.com/killallgit/podscribe-api/internal/services/episodes"
	"github.com/killallgit/podscribe-api/internal/services/importer"
)

// PostImport bulk-loads a transcription into a blank episode
// @Summary      Import a transcription
// @Description  Loads speakers, parts, sections and words from a transcription document. The episode must have no parts or speaker bindings yet.
// @Tags         episodes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        request body importer.Transcription true "Transcription document"
// @Success      201 {object} types.BaseResponse "Transcription imported"
// @Failure      400 {object} types.ErrorResponse "Episode is not blank or payload invalid"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/episodes/{episode_id}/import [post]
func PostImport(deps *types.Dependencies) gin.HandlerFunc {
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

		var transcription importer.Transcription
		if !types.BindJSONOrError(c, &transcription) {
			return
		}

		createdParts, err := deps.ImportService.Import(c.Request.Context(), episodeID, transcription)
		if err != nil {
			if errors.Is(err, importer.ErrEpisodeNotBlank) {
				types.SendBadRequest(c, "Import only works for blank episodes")
				return
			}
			log.Printf("[ERROR] Import failed for episode %d: %v", episodeID, err)
			types.SendInternalError(c, "Import failed")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  types.StatusOK,
			"message": "Transcription imported",
			"parts":   len(createdParts),
		})
	}
}
