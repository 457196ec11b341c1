package seo

import (
	"io"
	"log"
	"net/http"

	module "github.com/optionsbroker/vergleich/internal/services/site/module"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = io.WriteString(w, robots(h.deps.BaseURL))
}

func (h handlers) handleSitemap(w http.ResponseWriter, _ *http.Request) {
	body, err := marshalSitemap(buildSitemap(h.deps.BaseURL, h.deps.Brokers))
	if err != nil {
		log.Printf("render sitemap err=%v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(body)
}
