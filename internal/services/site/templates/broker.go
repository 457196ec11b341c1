package templates

import (
	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/platform/icons"
	"github.com/optionsbroker/vergleich/internal/services/site/brokers"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
	"github.com/optionsbroker/vergleich/internal/services/site/trackedlink"
)

// BrokerView is the broker detail page state.
type BrokerView struct {
	Loc         sitei18n.Localizer
	Locale      string
	Broker      brokers.Broker
	Breadcrumbs []BreadcrumbItem
}

// BrokerPage renders one broker's detail page.
func BrokerPage(view BrokerView) templ.Component {
	return component(func(m *markup) {
		broker := view.Broker
		m.component(Breadcrumbs(view.Breadcrumbs))
		m.open("article", "class", "broker-detail")
		m.element("h1", sitei18n.TName(view.Loc, "broker.heading", broker.Name))

		m.open("dl", "class", "broker-facts")
		for _, fact := range []struct {
			icon  icons.ID
			key   string
			value string
		}{
			{icons.IDRegulator, "broker.regulator", broker.Regulator},
			{"", "broker.country", broker.Country},
			{icons.IDMarkets, "broker.markets", broker.MarketsLabel()},
		} {
			if fact.value == "" {
				continue
			}
			m.open("dt")
			if fact.icon != "" {
				m.component(Icon(fact.icon))
				m.raw(" ")
			}
			m.text(sitei18n.T(view.Loc, fact.key))
			m.close("dt")
			m.element("dd", fact.value)
		}
		m.close("dl")

		if features := broker.FeaturesFor(view.Locale); len(features) > 0 {
			m.element("h2", sitei18n.T(view.Loc, "broker.features"))
			m.open("ul", "class", "features")
			for _, feature := range features {
				m.open("li")
				m.component(Icon(icons.IDCheck))
				m.text(" " + feature)
				m.close("li")
			}
			m.close("ul")
		}

		m.open("p", "class", "broker-actions")
		m.component(visitLink(view.Loc, broker, "broker.visit", "broker-detail"))
		m.close("p")
		m.open("p")
		m.component(trackedlink.Component(trackedlink.Props{
			Href: routepath.Comparison + "#" + broker.Slug,
			Text: sitei18n.T(view.Loc, "broker.back"),
		}))
		m.close("p")
		m.close("article")
	})
}
