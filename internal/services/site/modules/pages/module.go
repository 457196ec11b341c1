package pages

import (
	"errors"
	"net/http"

	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
)

// Module provides the public content pages.
type Module struct{}

// New returns a pages module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "pages" }

// Mount wires content page handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Brokers == nil {
		return module.Mount{}, errors.New("broker catalog is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
