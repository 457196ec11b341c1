package templates

import (
	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/services/site/metadata"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
)

// Head renders the <head> contents for meta followed by extra.
func Head(meta metadata.Metadata, extra ...templ.Component) templ.Component {
	return component(func(m *markup) {
		m.raw(`<meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.element("title", metadata.FullTitle(meta.Title))
		m.open("meta", "name", "description", "content", meta.Description)
		if keywords := meta.KeywordsContent(); keywords != "" {
			m.open("meta", "name", "keywords", "content", keywords)
		}
		m.open("meta", "name", "robots", "content", meta.Robots)
		if meta.Canonical != "" {
			m.open("link", "rel", "canonical", "href", meta.Canonical)
		}
		for _, alternate := range meta.Alternates {
			m.open("link", "rel", "alternate", "hreflang", alternate.HrefLang, "href", alternate.URL)
		}

		og := meta.OpenGraph
		for _, prop := range [][2]string{
			{"og:title", og.Title},
			{"og:description", og.Description},
			{"og:type", og.Type},
			{"og:locale", og.Locale},
			{"og:site_name", og.SiteName},
			{"og:url", og.URL},
		} {
			if prop[1] != "" {
				m.open("meta", "property", prop[0], "content", prop[1])
			}
		}
		for _, prop := range [][2]string{
			{"twitter:card", meta.Twitter.Card},
			{"twitter:title", meta.Twitter.Title},
			{"twitter:description", meta.Twitter.Description},
		} {
			if prop[1] != "" {
				m.open("meta", "name", prop[0], "content", prop[1])
			}
		}

		m.open("link", "rel", "icon", "href", routepath.Static("favicon.svg"), "type", "image/svg+xml")
		m.open("link", "rel", "stylesheet", "href", routepath.Static("site.css"))
		for _, c := range extra {
			m.component(c)
		}
	})
}
