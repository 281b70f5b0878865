// Package frontend embeds the built single-page editor UI so the binary
// ships self-contained.
package frontend

import (
	"embed"
	"io/fs"
)

//go:embed all:dist
var dist embed.FS

// Dist returns the built frontend assets rooted at the dist directory
func Dist() fs.FS {
	sub, err := fs.Sub(dist, "dist")
	if err != nil {
		// The dist directory is compiled into the binary, a failure here
		// means a broken build
		panic(err)
	}
	return sub
}
