// Package routepath stores canonical HTTP paths for site modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root          = "/"
	Health        = "/up"
	StaticPrefix  = "/static/"
	Comparison    = "/optionen-broker-vergleich"
	Guide         = "/ratgeber/optionshandel-lernen"
	BrokerPrefix  = "/broker/"
	BrokerPattern = BrokerPrefix + "{slug}"
	APIPrefix     = "/api/"
	Track         = "/api/track"
	ClickSummary  = "/api/clicks/summary"
	GoPrefix      = "/go/"
	GoPattern     = GoPrefix + "{slug}"
	Robots        = "/robots.txt"
	Sitemap       = "/sitemap.xml"
)

// Broker returns the detail page path for a broker slug.
func Broker(slug string) string {
	return BrokerPrefix + escapeSegment(slug)
}

// Go returns the tracked redirect path for a broker slug.
func Go(slug string) string {
	return GoPrefix + escapeSegment(slug)
}

// Static returns the URL of an embedded static asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
