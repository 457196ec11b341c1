// Package static embeds the site's stylesheet, beacon script and images.
package static

import (
	"embed"
	"net/http"

	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
)

// FS exposes site static assets for HTTP serving.
//
//go:embed *.css *.js img/*.svg
var FS embed.FS

// Handler serves FS below routepath.StaticPrefix.
func Handler() http.Handler {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(FS)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}
