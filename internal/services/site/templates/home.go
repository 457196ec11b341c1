package templates

import (
	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/platform/icons"
	"github.com/optionsbroker/vergleich/internal/services/site/brokers"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
	"github.com/optionsbroker/vergleich/internal/services/site/trackedlink"
)

// HomeView is the landing page state.
type HomeView struct {
	Loc      sitei18n.Localizer
	Featured []brokers.Broker
}

// HomePage renders the landing page body.
func HomePage(view HomeView) templ.Component {
	return component(func(m *markup) {
		m.open("section", "class", "hero")
		m.element("h1", sitei18n.T(view.Loc, "home.heading"))
		m.element("p", sitei18n.T(view.Loc, "home.lead"), "class", "lead")
		m.open("p", "class", "hero-actions")
		m.component(trackedlink.Component(trackedlink.Props{
			Href:          routepath.Comparison,
			Children:      labelWithIcon(sitei18n.T(view.Loc, "home.cta"), icons.IDArrowRight),
			TrackingType:  trackedlink.TypeCTA,
			TrackingLabel: "home-hero",
			Class:         "button primary",
		}))
		m.component(trackedlink.Component(trackedlink.Props{
			Href:          routepath.Guide,
			Children:      labelWithIcon(sitei18n.T(view.Loc, "home.guide_cta"), icons.IDGuide),
			TrackingType:  trackedlink.TypeCTA,
			TrackingLabel: "home-guide",
			Class:         "button secondary",
		}))
		m.close("p")
		m.close("section")

		if len(view.Featured) == 0 {
			return
		}
		m.open("section", "class", "featured")
		m.element("h2", sitei18n.T(view.Loc, "home.featured"))
		m.open("ul", "class", "broker-cards")
		for _, broker := range view.Featured {
			m.open("li", "class", "broker-card")
			m.open("h3")
			m.component(trackedlink.Component(trackedlink.Props{
				Href: routepath.Broker(broker.Slug),
				Text: broker.Name,
			}))
			m.close("h3")
			m.open("p", "class", "markets")
			m.component(Icon(icons.IDMarkets))
			m.text(" " + broker.MarketsLabel())
			m.close("p")
			m.component(visitLink(view.Loc, broker, "comparison.visit", "home-featured"))
			m.close("li")
		}
		m.close("ul")
		m.close("section")
	})
}

func labelWithIcon(label string, id icons.ID) templ.Component {
	return component(func(m *markup) {
		m.text(label + " ")
		m.component(Icon(id))
	})
}

// visitLink renders the tracked outbound link to a broker website.
func visitLink(loc sitei18n.Localizer, broker brokers.Broker, key string, label string) templ.Component {
	return component(func(m *markup) {
		m.component(trackedlink.Component(trackedlink.Props{
			Href:          broker.Website,
			Children:      labelWithIcon(sitei18n.TName(loc, key, broker.Name), icons.IDExternalLink),
			TrackingType:  trackedlink.TypeBroker,
			TrackingLabel: label,
			BrokerSlug:    broker.Slug,
			Class:         "button visit",
		}))
		if broker.Partner {
			m.element("small", sitei18n.T(loc, "broker.partner"), "class", "partner-label")
		}
	})
}
