// Package seo serves robots.txt and the hreflang-aware sitemap.
package seo

import (
	"errors"
	"net/http"

	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/httpx"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
)

// Module provides crawler-facing documents.
type Module struct{}

// New returns a seo module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "seo" }

// Mount wires the robots and sitemap handlers on exact paths.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Brokers == nil {
		return module.Mount{}, errors.New("broker catalog is required")
	}
	h := handlers{deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Robots, h.handleRobots)
	mux.HandleFunc(http.MethodGet+" "+routepath.Sitemap, h.handleSitemap)
	mux.HandleFunc("/", httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))
	return module.Mount{
		Paths:   []string{routepath.Robots, routepath.Sitemap},
		Handler: mux,
	}, nil
}
