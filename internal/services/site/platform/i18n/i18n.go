// Package i18n resolves per-request localizers for site handlers and
// templates.
package i18n

import (
	"net/http"
	"strings"

	sharedi18n "github.com/optionsbroker/vergleich/internal/services/shared/i18nhttp"
	"github.com/optionsbroker/vergleich/internal/services/site/metadata"
	apperrors "github.com/optionsbroker/vergleich/internal/services/site/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Request is the language state resolved for one request.
type Request struct {
	Tag       language.Tag
	Locale    string
	Localizer Localizer
}

// ResolveTag resolves the request language.
func ResolveTag(r *http.Request) language.Tag {
	tag, _ := sharedi18n.ResolveTag(r)
	return tag
}

// EnsureLanguageCookie syncs the language cookie to an explicitly chosen tag.
func EnsureLanguageCookie(w http.ResponseWriter, r *http.Request, tag language.Tag) {
	if w == nil {
		return
	}
	expected := strings.TrimSpace(tag.String())
	if expected == "" {
		return
	}
	if r != nil {
		if cookie, err := r.Cookie(sharedi18n.LangCookieName); err == nil {
			if strings.TrimSpace(cookie.Value) == expected {
				return
			}
		}
	}
	sharedi18n.SetLanguageCookie(w, tag)
}

// ResolveLocalizer resolves the language for r, persisting an explicit
// ?lang= choice, and returns the printer and metadata locale for it.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) Request {
	tag, persist := sharedi18n.ResolveTag(r)
	if persist {
		EnsureLanguageCookie(w, r, tag)
	}
	return Request{
		Tag:       tag,
		Locale:    metadata.LocaleForTag(tag),
		Localizer: sharedi18n.Printer(tag),
	}
}

// T translates key, returning the key itself when loc is nil.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}

// TName translates key and substitutes the {name} placeholder.
func TName(loc Localizer, key string, name string) string {
	return strings.ReplaceAll(T(loc, key), "{name}", name)
}

// LocalizeError resolves a translated error string when a mapping is available.
func LocalizeError(loc Localizer, err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if loc == nil {
		return msg
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
			return localized
		}
	}
	return msg
}
