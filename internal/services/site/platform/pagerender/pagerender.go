// Package pagerender centralizes site page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/services/site/metadata"
	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	sitei18n "github.com/optionsbroker/vergleich/internal/services/site/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/services/site/templates"
)

// Page describes one full-page response.
type Page struct {
	// Meta is the page metadata, already generated for the request locale.
	Meta metadata.Metadata
	// Path is the canonical path; empty omits canonical and hreflang links.
	Path       string
	StatusCode int
	Head       []templ.Component
	Body       templ.Component
}

// WritePage renders page inside the site layout. The document is rendered
// into a buffer first so a template failure never leaves a partial response.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, lang sitei18n.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	meta := page.Meta
	if page.Path != "" {
		meta = meta.WithURLs(deps.BaseURL, page.Path)
	}

	view := templates.LayoutView{
		Meta: meta,
		Lang: lang.Tag.String(),
		Loc:  lang.Localizer,
		Head: page.Head,
	}
	if r != nil && r.URL != nil {
		view.Path = r.URL.Path
		view.RawQuery = r.URL.RawQuery
	}

	var buf bytes.Buffer
	if err := templates.Layout(view, page.Body).Render(requestContext(r), &buf); err != nil {
		return err
	}
	header := w.Header()
	header.Set("Content-Type", "text/html; charset=utf-8")
	header.Add("Vary", "Accept-Language")
	header.Add("Vary", "Cookie")
	w.WriteHeader(statusCode)
	_, err := buf.WriteTo(w)
	return err
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
