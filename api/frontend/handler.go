// Package frontend serves the embedded editor UI: real files when they
// exist, the index shell for extensionless SPA routes, 404 otherwise.
package frontend

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/frontend"
)

// Handler serves the embedded frontend assets
func Handler() gin.HandlerFunc {
	dist := frontend.Dist()
	fileServer := http.FileServer(http.FS(dist))

	return func(c *gin.Context) {
		requestPath := strings.TrimPrefix(c.Request.URL.Path, "/")
		if requestPath == "" {
			serveIndex(c, dist)
			return
		}

		if _, err := fs.Stat(dist, requestPath); err == nil {
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}

		// Client-side routes have no extension and resolve to the shell
		if path.Ext(requestPath) == "" {
			serveIndex(c, dist)
			return
		}

		c.Status(http.StatusNotFound)
	}
}

func serveIndex(c *gin.Context, dist fs.FS) {
	data, err := fs.ReadFile(dist, "index.html")
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
