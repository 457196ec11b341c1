package tracking

import (
	"net/http"

	"github.com/optionsbroker/vergleich/internal/services/site/platform/httpx"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.Track, h.handleTrack)
	mux.HandleFunc(routepath.Track, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodGet+" "+routepath.ClickSummary, h.handleSummary)
	mux.HandleFunc(routepath.ClickSummary, httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))

	mux.HandleFunc(routepath.APIPrefix+"{rest...}", h.handleNotFound)
}
