package web

import (
	"embed"
	"io/fs"
)

// staticFS holds the single page front end.
//
//go:embed static
var staticFS embed.FS

// Assets returns the front end rooted at the static directory.
func Assets() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
