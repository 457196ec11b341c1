// Package redirect serves tracked redirects to broker websites for links
// placed outside the site, such as newsletters and campaigns.
package redirect

import (
	"errors"
	"net/http"

	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
)

// Module provides the /go/ redirect routes.
type Module struct{}

// New returns a redirect module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "redirect" }

// Mount wires redirect handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Brokers == nil {
		return module.Mount{}, errors.New("broker catalog is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{deps: deps})
	return module.Mount{Prefix: routepath.GoPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.GoPattern, h.handleGo)
	mux.HandleFunc(routepath.GoPrefix+"{rest...}", h.handleNotFound)
}
