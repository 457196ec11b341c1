package templates

import (
	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/platform/branding"
	sharedi18n "github.com/optionsbroker/vergleich/internal/services/shared/i18nhttp"
	"github.com/optionsbroker/vergleich/internal/services/site/metadata"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
	"github.com/optionsbroker/vergleich/internal/services/site/trackedlink"
	"golang.org/x/text/language"
)

// HTMXScript is the pinned htmx build loaded by every page.
const (
	HTMXScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	// HTMXIntegrity is the published subresource integrity hash of HTMXScript.
	HTMXIntegrity = "sha384-HGfztofotfshcF7+8n44JQL2oJmowVChPTg48S+jvZoztPfvwD79OC/LTtG6dMp+"
)

// LayoutView carries the per-request state shared by every page.
type LayoutView struct {
	Meta metadata.Metadata
	// Lang is the resolved language tag, used to mark the active switcher entry.
	Lang     string
	Path     string
	RawQuery string
	Loc      sitei18n.Localizer
	// Head holds extra head components such as structured data.
	Head []templ.Component
}

// Layout renders a full HTML document around body. When body is nil the
// templ children of the render context are used.
func Layout(view LayoutView, body templ.Component) templ.Component {
	return component(func(m *markup) {
		content := body
		if content == nil {
			content = templ.GetChildren(m.ctx)
		}
		lang := view.Meta.Locale
		if lang == "" {
			lang = metadata.LocaleGerman
		}

		m.raw("<!DOCTYPE html>")
		m.open("html", "lang", lang)
		m.open("head")
		m.component(Head(view.Meta, view.Head...))
		m.close("head")
		m.open("body")
		m.component(iconSprite())
		m.element("a", sitei18n.T(view.Loc, "core.nav.skip"), "class", "skip-link", "href", "#main")
		m.component(header(view))
		m.open("main", "id", "main", "class", "container")
		m.component(content)
		m.close("main")
		m.component(footer(view.Loc))
		m.raw(`<script src="` + templ.EscapeString(HTMXScript) + `" integrity="` + HTMXIntegrity + `" crossorigin="anonymous" defer></script>`)
		m.raw(`<script src="` + templ.EscapeString(routepath.Static("site.js")) + `" defer></script>`)
		m.close("body")
		m.close("html")
	})
}

func header(view LayoutView) templ.Component {
	return component(func(m *markup) {
		m.open("header", "class", "site-header")
		m.open("nav", "class", "container site-nav", "aria-label", "main")
		m.component(trackedlink.Component(trackedlink.Props{
			Href:  routepath.Root,
			Text:  branding.AppName,
			Class: "brand",
		}))
		m.open("ul", "class", "nav-links")
		for _, item := range []struct{ href, key string }{
			{routepath.Comparison, "core.nav.comparison"},
			{routepath.Guide, "core.nav.guide"},
		} {
			class := ""
			if item.href == view.Path {
				class = "active"
			}
			m.open("li")
			m.component(trackedlink.Component(trackedlink.Props{
				Href:  item.href,
				Text:  sitei18n.T(view.Loc, item.key),
				Class: class,
			}))
			m.close("li")
		}
		m.close("ul")
		m.component(languageSwitcher(view))
		m.close("nav")
		m.close("header")
	})
}

func languageSwitcher(view LayoutView) templ.Component {
	return component(func(m *markup) {
		options := sharedi18n.BuildLanguageOptions(view.Path, view.RawQuery, view.Lang, func(tag language.Tag) string {
			return sitei18n.T(view.Loc, sharedi18n.LanguageKeyLabel(tag))
		})
		m.open("ul", "class", "lang-switch", "aria-label", sitei18n.T(view.Loc, "core.lang_switch"))
		for _, option := range options {
			m.open("li")
			if option.Active {
				m.element("span", option.Label, "class", "active", "lang", option.Tag, "aria-current", "true")
			} else {
				m.element("a", option.Label, "href", option.URL, "hreflang", option.Tag, "lang", option.Tag)
			}
			m.close("li")
		}
		m.close("ul")
	})
}

func footer(loc sitei18n.Localizer) templ.Component {
	return component(func(m *markup) {
		m.open("footer", "class", "site-footer")
		m.open("div", "class", "container")
		m.element("p", sitei18n.T(loc, "core.footer.disclaimer"), "class", "disclaimer")
		m.element("p", sitei18n.T(loc, "core.footer.risk"), "class", "risk")
		m.element("p", branding.AppName+". "+sitei18n.T(loc, "core.footer.rights"), "class", "rights")
		m.close("div")
		m.close("footer")
	})
}
