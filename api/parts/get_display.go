package parts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// GetDisplay returns the full editor view of a part
// @Summary      Get the part display aggregate
// @Description  Returns the part with its sections, each paired with its words
// @Tags         parts
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Success      200 {object} partsvc.Display
// @Failure      404 {object} types.ErrorResponse "Part not found"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/display [get]
func GetDisplay(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		part, ok := loadOwned(c, deps)
		if !ok {
			return
		}

		display, err := deps.PartService.GetDisplay(c.Request.Context(), part.ID)
		if err != nil {
			types.SendInternalError(c, "Failed to build part display")
			return
		}
		types.SendSuccess(c, display)
	}
}
