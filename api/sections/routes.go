package sections

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// RegisterRoutes registers section routes under an episode group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, reader, contributor, admin gin.HandlerFunc) {
	router.GET("/:episode_id/parts/:part_id/sections", reader, GetAll(deps))
	router.POST("/:episode_id/parts/:part_id/sections", contributor, Post(deps))
	router.GET("/:episode_id/parts/:part_id/sections/:section_id", reader, GetByID(deps))
	router.PUT("/:episode_id/parts/:part_id/sections/:section_id", contributor, Put(deps))
	router.PATCH("/:episode_id/parts/:part_id/sections/:section_id", contributor, Put(deps))
	router.DELETE("/:episode_id/parts/:part_id/sections/:section_id", admin, Delete(deps))
}
