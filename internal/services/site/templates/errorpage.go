package templates

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
	"github.com/optionsbroker/vergleich/internal/services/site/trackedlink"
)

// ErrorView is the error page state.
type ErrorView struct {
	Loc    sitei18n.Localizer
	Status int
}

// ErrorState renders the localized not-found or server error body.
func ErrorState(view ErrorView) templ.Component {
	return component(func(m *markup) {
		heading, body := "error.server.heading", "error.server.body"
		if view.Status == http.StatusNotFound {
			heading, body = "error.not_found.heading", "error.not_found.body"
		}
		m.open("section", "class", "error-state", "data-status", strconv.Itoa(view.Status))
		m.element("h1", sitei18n.T(view.Loc, heading))
		m.element("p", sitei18n.T(view.Loc, body))
		m.open("p")
		m.component(trackedlink.Component(trackedlink.Props{
			Href:  routepath.Root,
			Text:  sitei18n.T(view.Loc, "error.home_link"),
			Class: "button",
		}))
		m.close("p")
		m.close("section")
	})
}
