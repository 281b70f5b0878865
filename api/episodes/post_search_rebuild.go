package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// PostSearchRebuild re-indexes every part from the database, the
// reconciliation path for when the index and the relational store diverge
// @Summary      Rebuild the search index
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.BaseResponse "Index rebuilt"
// @Failure      401 {object} types.ErrorResponse "Missing token or insufficient role"
// @Router       /api/episodes/search/rebuild [post]
func PostSearchRebuild(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := deps.PartService.RebuildIndex(c.Request.Context())
		if err != nil {
			types.SendInternalError(c, "Failed to rebuild search index")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  types.StatusOK,
			"message": "Search index rebuilt",
			"parts":   count,
		})
	}
}
