package tracking

import (
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"

	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	apperrors "github.com/optionsbroker/vergleich/internal/services/site/platform/errors"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/httpx"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/requestmeta"
)

const maxBeaconBytes = 4 << 10

type handlers struct {
	svc  service
	deps module.Dependencies
}

func newHandlers(svc service, deps module.Dependencies) handlers {
	return handlers{svc: svc, deps: deps}
}

func (h handlers) handleTrack(w http.ResponseWriter, r *http.Request) {
	lang := sitei18n.ResolveLocalizer(w, r)
	if requestmeta.IsCrossSite(r, h.deps.SchemePolicy) {
		_ = httpx.WriteJSONError(w, http.StatusForbidden, http.StatusText(http.StatusForbidden))
		return
	}
	payload, err := decodeBeacon(w, r)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	click, err := h.svc.record(httpx.RequestContext(r), payload, lang.Locale)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusAccepted, map[string]string{
		"status":   "accepted",
		"category": string(click.Category),
	})
}

func (h handlers) handleSummary(w http.ResponseWriter, r *http.Request) {
	lang := sitei18n.ResolveLocalizer(w, r)
	days := defaultSummaryDays
	if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, lang, invalidPayload("days must be an integer"))
			return
		}
		days = parsed
	}
	summary, err := h.svc.summary(httpx.RequestContext(r), days)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, summary)
}

func (h handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSONError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func (h handlers) writeError(w http.ResponseWriter, lang sitei18n.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("tracking api error status=%d err=%v", status, err)
	}
	_ = httpx.WriteJSONError(w, status, sitei18n.LocalizeError(lang.Localizer, err))
}

// decodeBeacon reads a JSON body or, for any other content type, form values.
func decodeBeacon(w http.ResponseWriter, r *http.Request) (beacon, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBeaconBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" || mediaType == "text/plain" {
		var payload beacon
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return beacon{}, invalidPayload("beacon payload too large")
			}
			return beacon{}, invalidPayload("decode beacon: " + err.Error())
		}
		return payload, nil
	}
	if err := r.ParseForm(); err != nil {
		return beacon{}, invalidPayload("parse beacon form: " + err.Error())
	}
	return beacon{
		Type:   r.PostForm.Get("type"),
		Label:  r.PostForm.Get("label"),
		Broker: r.PostForm.Get("broker"),
		Href:   r.PostForm.Get("href"),
		Page:   r.PostForm.Get("page"),
	}, nil
}
