// Package weberror renders shared error responses for site modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	"github.com/optionsbroker/vergleich/internal/services/site/metadata"
	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	apperrors "github.com/optionsbroker/vergleich/internal/services/site/platform/errors"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/pagerender"
	"github.com/optionsbroker/vergleich/internal/services/site/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc sitei18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// ErrorMetadata returns the head metadata of the error page for statusCode.
func ErrorMetadata(statusCode int, lang sitei18n.Request) metadata.Metadata {
	meta := metadata.Generate(metadata.PageNotFound, lang.Locale)
	if statusCode == http.StatusNotFound {
		return meta
	}
	meta.Title = sitei18n.T(lang.Localizer, "error.title")
	meta.OpenGraph.Title = metadata.FullTitle(meta.Title)
	meta.Twitter.Title = meta.OpenGraph.Title
	return meta
}

// WriteAppError writes the localized error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	lang := sitei18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, deps, lang, pagerender.Page{
		Meta:       ErrorMetadata(statusCode, lang),
		StatusCode: statusCode,
		Body:       templates.ErrorState(templates.ErrorView{Loc: lang.Localizer, Status: statusCode}),
	})
	if err != nil {
		log.Printf("render error page status=%d err=%v", statusCode, err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("module error path=%s status=%d err=%v", requestPath(r), statusCode, err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	lang := sitei18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(lang.Localizer, err), statusCode)
}

// NotFound returns a handler that writes the localized 404 page.
func NotFound(deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteAppError(w, r, http.StatusNotFound, deps)
	})
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
