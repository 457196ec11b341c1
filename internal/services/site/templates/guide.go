package templates

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/services/site/jsonld"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
	"github.com/optionsbroker/vergleich/internal/services/site/trackedlink"
)

const (
	guideStepCount = 5
	// GuideTotalTime is the estimated reading and setup time of the guide.
	GuideTotalTime = "PT30M"
)

// GuideHowTo builds the structured HowTo for the guide in the language of loc.
func GuideHowTo(loc sitei18n.Localizer) jsonld.HowTo {
	howTo := jsonld.HowTo{
		Name:        sitei18n.T(loc, "guide.howto.name"),
		Description: sitei18n.T(loc, "guide.howto.description"),
		TotalTime:   GuideTotalTime,
		Steps:       make([]jsonld.Step, 0, guideStepCount),
	}
	for i := 1; i <= guideStepCount; i++ {
		howTo.Steps = append(howTo.Steps, jsonld.Step{
			Name: sitei18n.T(loc, fmt.Sprintf("guide.step%d.name", i)),
			Text: sitei18n.T(loc, fmt.Sprintf("guide.step%d.text", i)),
		})
	}
	return howTo
}

// GuideView is the guide page state.
type GuideView struct {
	Loc   sitei18n.Localizer
	HowTo jsonld.HowTo
}

// GuidePage renders the step-by-step guide. The HowTo markup is emitted by
// the caller into the head.
func GuidePage(view GuideView) templ.Component {
	return component(func(m *markup) {
		m.component(Breadcrumbs(GuideBreadcrumbs(view.Loc)))
		m.open("article", "class", "guide")
		m.element("h1", sitei18n.T(view.Loc, "guide.heading"))
		m.element("p", sitei18n.T(view.Loc, "guide.lead"), "class", "lead")
		m.open("ol", "class", "guide-steps")
		for i, step := range view.HowTo.Steps {
			m.open("li", "id", fmt.Sprintf("step-%d", i+1))
			m.element("h2", step.Name)
			m.element("p", step.Text)
			m.close("li")
		}
		m.close("ol")
		m.open("p")
		m.component(trackedlink.Component(trackedlink.Props{
			Href:          routepath.Comparison,
			Text:          sitei18n.T(view.Loc, "home.cta"),
			TrackingType:  trackedlink.TypeCTA,
			TrackingLabel: "guide-compare",
			Class:         "button primary",
		}))
		m.close("p")
		m.close("article")
	})
}
