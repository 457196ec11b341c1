package pages

import (
	"net/http"

	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Comparison, h.handleComparison)
	mux.HandleFunc(http.MethodGet+" "+routepath.Guide, h.handleGuide)
	mux.HandleFunc(http.MethodGet+" "+routepath.BrokerPattern, h.handleBroker)
	mux.HandleFunc("/{rest...}", h.handleNotFound)
}
