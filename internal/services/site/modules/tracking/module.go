// Package tracking serves the click beacon and click summary API.
package tracking

import (
	"errors"
	"net/http"

	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
)

// Module provides the tracking API routes.
type Module struct{}

// New returns a tracking module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "tracking" }

// Mount wires tracking API handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Brokers == nil {
		return module.Mount{}, errors.New("broker catalog is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps), deps))
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
