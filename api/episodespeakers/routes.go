package episodespeakers

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// RegisterRoutes registers episode-speaker routes under an episode group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, reader, contributor, admin gin.HandlerFunc) {
	router.GET("/:episode_id/episode_speakers", reader, GetAll(deps))
	router.POST("/:episode_id/episode_speakers", contributor, Post(deps))
	router.GET("/:episode_id/episode_speakers/:episode_speaker_id", reader, GetByID(deps))
	router.PUT("/:episode_id/episode_speakers/:episode_speaker_id", contributor, Put(deps))
	router.PATCH("/:episode_id/episode_speakers/:episode_speaker_id", contributor, Put(deps))
	router.DELETE("/:episode_id/episode_speakers/:episode_speaker_id", admin, Delete(deps))
}
