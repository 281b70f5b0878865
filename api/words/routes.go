package words

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// RegisterRoutes registers word routes under an episode group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, reader, contributor, admin gin.HandlerFunc) {
	base := "/:episode_id/parts/:part_id/sections/:section_id/words"
	router.GET(base, reader, GetAll(deps))
	router.POST(base, contributor, Post(deps))
	router.GET(base+"/:word_id", reader, GetByID(deps))
	router.PUT(base+"/:word_id", contributor, Put(deps))
	router.PATCH(base+"/:word_id", contributor, Put(deps))
	router.DELETE(base+"/:word_id", admin, Delete(deps))
}
