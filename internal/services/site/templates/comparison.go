package templates

import (
	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/services/site/brokers"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
	"github.com/optionsbroker/vergleich/internal/services/site/trackedlink"
)

// ComparisonLinkLabel tags broker clicks coming from the comparison table.
const ComparisonLinkLabel = "comparison-table"

// ComparisonView is the comparison table state.
type ComparisonView struct {
	Loc     sitei18n.Localizer
	Brokers []brokers.Broker
}

// ComparisonPage renders the broker comparison table.
func ComparisonPage(view ComparisonView) templ.Component {
	return component(func(m *markup) {
		m.element("h1", sitei18n.T(view.Loc, "comparison.heading"))
		m.element("p", sitei18n.T(view.Loc, "comparison.lead"), "class", "lead")

		m.open("div", "class", "table-scroll")
		m.open("table", "class", "comparison")
		m.open("thead")
		m.open("tr")
		for _, key := range []string{"comparison.col.broker", "comparison.col.regulator", "comparison.col.markets", "comparison.col.action"} {
			m.element("th", sitei18n.T(view.Loc, key), "scope", "col")
		}
		m.close("tr")
		m.close("thead")
		m.open("tbody")
		for _, broker := range view.Brokers {
			m.open("tr", "id", broker.Slug)
			m.open("th", "scope", "row")
			m.text(broker.Name)
			m.raw(" ")
			m.component(trackedlink.Component(trackedlink.Props{
				Href:  routepath.Broker(broker.Slug),
				Text:  sitei18n.T(view.Loc, "comparison.details"),
				Class: "details",
			}))
			m.close("th")
			m.element("td", broker.Regulator)
			m.element("td", broker.MarketsLabel())
			m.open("td")
			m.component(visitLink(view.Loc, broker, "comparison.visit", ComparisonLinkLabel))
			m.close("td")
			m.close("tr")
		}
		m.close("tbody")
		m.close("table")
		m.close("div")
	})
}
