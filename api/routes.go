package api

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podscribe-api/api/approvals"
	authapi "github.com/killallgit/podscribe-api/api/auth"
	"github.com/killallgit/podscribe-api/api/episodes"
	"github.com/killallgit/podscribe-api/api/episodespeakers"
	"github.com/killallgit/podscribe-api/api/frontend"
	"github.com/killallgit/podscribe-api/api/health"
	"github.com/killallgit/podscribe-api/api/parts"
	"github.com/killallgit/podscribe-api/api/sections"
	"github.com/killallgit/podscribe-api/api/speakers"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/api/version"
	"github.com/killallgit/podscribe-api/api/words"
	_ "github.com/killallgit/podscribe-api/docs/swagger"
	"github.com/killallgit/podscribe-api/internal/services/auth"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("handler dependencies are required")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Anything outside /api and /docs falls through to the embedded frontend
	engine.NoRoute(NotFoundHandler())

	// Register auth routes with dedicated rate limiting (5 req/s, burst of 10)
	authGroup := engine.Group("/api/auth")
	authGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	authapi.RegisterRoutes(authGroup, deps, RequireAuth(deps))

	// Everything under /api/episodes requires a valid token; minimum-role
	// gates are applied per route inside the handler packages
	episodeGroup := engine.Group("/api/episodes")
	episodeGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	episodeGroup.Use(RequireAuth(deps))

	reader := RequireRole(auth.CheckReader)
	contributor := RequireRole(auth.CheckContributor)
	admin := RequireRole(auth.CheckAdmin)

	episodes.RegisterRoutes(episodeGroup, deps, reader, contributor, admin)
	speakers.RegisterRoutes(episodeGroup, deps, reader, contributor, admin)
	episodespeakers.RegisterRoutes(episodeGroup, deps, reader, contributor, admin)
	parts.RegisterRoutes(episodeGroup, deps, reader, contributor, admin)
	sections.RegisterRoutes(episodeGroup, deps, reader, contributor, admin)
	words.RegisterRoutes(episodeGroup, deps, reader, contributor, admin)
	approvals.RegisterRoutes(episodeGroup, deps, reader, contributor, admin)

	return nil
}

// NotFoundHandler serves the embedded frontend for non-API paths and a JSON
// 404 for unknown API endpoints
func NotFoundHandler() gin.HandlerFunc {
	serveFrontend := frontend.Handler()

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/docs") {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "The requested endpoint was not found",
				"path":    path,
			})
			return
		}
		serveFrontend(c)
	}
}
