// Package pages serves the localized content pages of the site.
package pages

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/services/site/jsonld"
	"github.com/optionsbroker/vergleich/internal/services/site/metadata"
	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/pagerender"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/weberror"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
	"github.com/optionsbroker/vergleich/internal/services/site/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	lang := sitei18n.ResolveLocalizer(w, r)
	h.write(w, r, lang, pagerender.Page{
		Meta: metadata.Generate(metadata.PageHome, lang.Locale),
		Path: routepath.Root,
		Body: templates.HomePage(templates.HomeView{
			Loc:      lang.Localizer,
			Featured: h.deps.Brokers.Featured(),
		}),
	})
}

func (h handlers) handleComparison(w http.ResponseWriter, r *http.Request) {
	lang := sitei18n.ResolveLocalizer(w, r)
	h.write(w, r, lang, pagerender.Page{
		Meta: metadata.Generate(metadata.PageComparison, lang.Locale),
		Path: routepath.Comparison,
		Body: templates.ComparisonPage(templates.ComparisonView{
			Loc:     lang.Localizer,
			Brokers: h.deps.Brokers.All(),
		}),
	})
}

func (h handlers) handleGuide(w http.ResponseWriter, r *http.Request) {
	lang := sitei18n.ResolveLocalizer(w, r)
	howTo := templates.GuideHowTo(lang.Localizer)
	crumbs := templates.GuideBreadcrumbs(lang.Localizer)
	h.write(w, r, lang, pagerender.Page{
		Meta: metadata.Generate(metadata.PageGuide, lang.Locale),
		Path: routepath.Guide,
		Head: []templ.Component{
			jsonld.Script(howTo),
			jsonld.ScriptFor(templates.BreadcrumbJSONLD(h.deps.BaseURL, crumbs)),
		},
		Body: templates.GuidePage(templates.GuideView{Loc: lang.Localizer, HowTo: howTo}),
	})
}

func (h handlers) handleBroker(w http.ResponseWriter, r *http.Request) {
	broker, err := h.deps.Brokers.BySlug(r.PathValue("slug"))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	lang := sitei18n.ResolveLocalizer(w, r)
	crumbs := templates.BrokerBreadcrumbs(lang.Localizer, broker.Name)
	h.write(w, r, lang, pagerender.Page{
		Meta: metadata.GenerateBroker(broker.Name, lang.Locale),
		Path: routepath.Broker(broker.Slug),
		Head: []templ.Component{
			jsonld.ScriptFor(templates.BreadcrumbJSONLD(h.deps.BaseURL, crumbs)),
		},
		Body: templates.BrokerPage(templates.BrokerView{
			Loc:         lang.Localizer,
			Locale:      lang.Locale,
			Broker:      broker,
			Breadcrumbs: crumbs,
		}),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) write(w http.ResponseWriter, r *http.Request, lang sitei18n.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, h.deps, lang, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
