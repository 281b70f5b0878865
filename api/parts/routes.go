package parts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// RegisterRoutes registers part routes under an episode group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, reader, contributor, admin gin.HandlerFunc) {
	router.GET("/:episode_id/parts", reader, GetAll(deps))
	router.POST("/:episode_id/parts", contributor, Post(deps))
	router.GET("/:episode_id/parts/:part_id", reader, GetByID(deps))
	router.PUT("/:episode_id/parts/:part_id", contributor, Put(deps))
	router.PATCH("/:episode_id/parts/:part_id", contributor, Put(deps))
	router.DELETE("/:episode_id/parts/:part_id", admin, Delete(deps))

	router.GET("/:episode_id/parts/:part_id/display", reader, GetDisplay(deps))
	router.POST("/:episode_id/parts/:part_id/update", contributor, PostUpdate(deps))
}
