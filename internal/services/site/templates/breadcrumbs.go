package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/services/site/jsonld"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
)

// BreadcrumbItem represents one breadcrumb entry in a page trail.
type BreadcrumbItem struct {
	// Label is the visible breadcrumb text.
	Label string
	// URL is the optional destination; the current page has none.
	URL string
}

// BrokerBreadcrumbs builds the trail home › comparison › broker.
func BrokerBreadcrumbs(loc sitei18n.Localizer, brokerName string) []BreadcrumbItem {
	return []BreadcrumbItem{
		{Label: sitei18n.T(loc, "core.nav.home"), URL: routepath.Root},
		{Label: sitei18n.T(loc, "core.nav.comparison"), URL: routepath.Comparison},
		{Label: strings.TrimSpace(brokerName)},
	}
}

// GuideBreadcrumbs builds the trail home › guide.
func GuideBreadcrumbs(loc sitei18n.Localizer) []BreadcrumbItem {
	return []BreadcrumbItem{
		{Label: sitei18n.T(loc, "core.nav.home"), URL: routepath.Root},
		{Label: sitei18n.T(loc, "core.nav.guide")},
	}
}

// BreadcrumbJSONLD converts a trail to structured data with absolute URLs.
func BreadcrumbJSONLD(baseURL string, items []BreadcrumbItem) jsonld.BreadcrumbList {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	list := jsonld.BreadcrumbList{Items: make([]jsonld.ListItem, 0, len(items))}
	for _, item := range items {
		entry := jsonld.ListItem{Name: item.Label}
		if item.URL != "" {
			entry.URL = base + item.URL
		}
		list.Items = append(list.Items, entry)
	}
	return list
}

// Breadcrumbs renders a breadcrumb navigation trail.
func Breadcrumbs(items []BreadcrumbItem) templ.Component {
	return component(func(m *markup) {
		if len(items) == 0 {
			return
		}
		m.open("nav", "class", "breadcrumbs", "aria-label", "breadcrumb")
		m.open("ol")
		for _, item := range items {
			m.open("li")
			if item.URL != "" {
				m.element("a", item.Label, "href", item.URL, "hx-boost", "true")
			} else {
				m.element("span", item.Label, "aria-current", "page")
			}
			m.close("li")
		}
		m.close("ol")
		m.close("nav")
	})
}
