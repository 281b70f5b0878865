package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// RegisterRoutes registers episode routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, reader, contributor, admin gin.HandlerFunc) {
	router.GET("/", reader, GetAll(deps))
	router.POST("/", contributor, Post(deps))
	router.GET("/search", reader, GetSearch(deps))
	router.POST("/search/rebuild", admin, PostSearchRebuild(deps))

	router.GET("/:episode_id", reader, GetByID(deps))
	router.PUT("/:episode_id", contributor, Put(deps))
	router.PATCH("/:episode_id", contributor, Put(deps))
	router.DELETE("/:episode_id", admin, Delete(deps))

	router.GET("/:episode_id/display", reader, GetDisplay(deps))
	router.POST("/:episode_id/import", contributor, PostImport(deps))
	router.POST("/:episode_id/audio", contributor, PostAudio(deps))
	router.GET("/:episode_id/audio", reader, GetAudio(deps))
}
