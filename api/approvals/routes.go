package approvals

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// RegisterRoutes registers approval routes under an episode group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, reader, contributor, admin gin.HandlerFunc) {
	router.GET("/:episode_id/parts/:part_id/approvals", reader, GetAll(deps))
	router.POST("/:episode_id/parts/:part_id/approvals", reader, Post(deps))
	router.DELETE("/:episode_id/parts/:part_id/approvals", reader, Delete(deps))
}
