package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// RegisterRoutes registers auth routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireAuth gin.HandlerFunc) {
	router.POST("/register", PostRegister(deps))
	router.POST("/login", PostLogin(deps))
	router.GET("/current", requireAuth, GetCurrent(deps))
}
