// Package module defines the feature contract used by site composition.
package module

import (
	"net/http"

	"github.com/optionsbroker/vergleich/internal/services/site/analytics"
	"github.com/optionsbroker/vergleich/internal/services/site/brokers"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/requestmeta"
	"github.com/optionsbroker/vergleich/internal/services/site/storage"
)

// Dependencies carries the collaborators shared by site modules.
type Dependencies struct {
	// BaseURL is the public origin used for canonical and sitemap URLs.
	BaseURL string
	Brokers *brokers.Catalog
	// Tracker receives click events; nil disables tracking.
	Tracker analytics.Tracker
	// Clicks answers click summaries; nil makes the summary unavailable.
	Clicks       storage.ClickStore
	SchemePolicy requestmeta.SchemePolicy
}

// Mount describes a module route mount. Prefix is a subtree pattern; Paths
// lists exact paths the module also owns.
type Mount struct {
	Prefix  string
	Paths   []string
	Handler http.Handler
}

// Module declares the minimum contract required by site composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
