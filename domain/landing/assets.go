package landing

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Assets is the stylesheet and enhancement script, rooted so that it can be
// mounted directly under /static.
func Assets() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
