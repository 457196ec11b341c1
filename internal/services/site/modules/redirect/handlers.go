package redirect

import (
	"net/http"
	"strings"

	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/httpx"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/weberror"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
	"github.com/optionsbroker/vergleich/internal/services/site/trackedlink"
)

const (
	// SourceParam names the campaign that produced the redirect.
	SourceParam   = "src"
	defaultSource = "redirect"
	maxSourceLen  = 64
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleGo(w http.ResponseWriter, r *http.Request) {
	broker, err := h.deps.Brokers.BySlug(r.PathValue("slug"))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	// HEAD is served by the GET pattern; previews and uptime checks are not clicks.
	if r.Method == http.MethodGet {
		lang := sitei18n.ResolveLocalizer(w, r)
		link := trackedlink.Props{
			Href:          broker.Website,
			TrackingType:  trackedlink.TypeBroker,
			TrackingLabel: source(r),
			BrokerSlug:    broker.Slug,
		}
		// Track only fails for unknown tracking types.
		_ = trackedlink.Track(httpx.RequestContext(r), h.deps.Tracker, link, routepath.Go(broker.Slug), lang.Locale)
	}

	w.Header().Set("X-Robots-Tag", "noindex, nofollow")
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, broker.Website, http.StatusFound)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func source(r *http.Request) string {
	value := strings.TrimSpace(r.URL.Query().Get(SourceParam))
	if value == "" {
		return defaultSource
	}
	if len(value) > maxSourceLen {
		value = value[:maxSourceLen]
	}
	return strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
			return c
		default:
			return '-'
		}
	}, value)
}
