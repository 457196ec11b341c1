package templates

import (
	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/platform/icons"
)

// Icon renders a sprite reference for id.
func Icon(id icons.ID) templ.Component {
	return component(func(m *markup) {
		m.open("svg", "class", "icon icon-"+string(id), "aria-hidden", "true", "width", "18", "height", "18")
		m.open("use", "href", "#"+icons.LucideSymbolID(icons.LucideNameOrDefault(id)))
		m.close("use")
		m.close("svg")
	})
}

func iconSprite() templ.Component {
	return component(func(m *markup) {
		m.raw(icons.LucideSprite())
	})
}
