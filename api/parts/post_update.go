package parts

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/services/reflow"
	apperrors "github.com/killallgit/podscribe-api/pkg/errors"
)

// PostUpdate applies an editor's repartition of the part's words
// @Summary      Reflow a part
// @Description  Applies a new partition of the part's words into sections, optionally moving sections to a neighboring or new part. The submission must account for every word of the part exactly once.
// @Tags         parts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Param        request body reflow.Submission true "Submitted partition"
// @Success      200 {object} types.BaseResponse "Reflow applied"
// @Failure      400 {object} types.ErrorResponse "Submission violates a reflow invariant"
// @Failure      404 {object} types.ErrorResponse "Part not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/update [post]
func PostUpdate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episode_id")
		if !ok {
			return
		}
		partID, ok := types.ParseUintParam(c, "part_id")
		if !ok {
			return
		}

		var submission reflow.Submission
		if !types.BindJSONOrError(c, &submission) {
			return
		}

		if err := deps.ReflowService.Apply(c.Request.Context(), episodeID, partID, submission); err != nil {
			if apperrors.GetHTTPCode(err) >= http.StatusInternalServerError {
				log.Printf("[ERROR] Reflow failed for part %d: %v", partID, err)
			}
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Reflow applied",
		})
	}
}
