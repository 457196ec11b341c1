package modules

import (
	"github.com/optionsbroker/vergleich/internal/services/site/modules/pages"
	"github.com/optionsbroker/vergleich/internal/services/site/modules/redirect"
	"github.com/optionsbroker/vergleich/internal/services/site/modules/seo"
	"github.com/optionsbroker/vergleich/internal/services/site/modules/tracking"
)

// DefaultModules returns the modules mounted by the site.
func DefaultModules() []Module {
	return []Module{
		pages.New(),
		tracking.New(),
		redirect.New(),
		seo.New(),
	}
}
