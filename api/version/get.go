package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
func Get(appVersion string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Podscribe API",
			"version":     appVersion,
			"description": "API for editing podcast transcriptions",
			"status":      "running",
		})
	}
}
