// Package requestmeta derives request origin facts used to guard the
// tracking endpoints.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved. X-Forwarded-Proto
// is only honoured when TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) valid() bool {
	return o.scheme != "" && o.host != "" && o.port != ""
}

// IsHTTPS reports whether r arrived over HTTPS under policy.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return scheme(r, policy) == "https"
}

// IsSameOrigin reports whether the Origin, or failing that the Referer,
// header names the host r was sent to.
func IsSameOrigin(r *http.Request, policy SchemePolicy) bool {
	claimed, ok := claimedOrigin(r)
	if !ok {
		return false
	}
	return claimed == requestOrigin(r, policy)
}

// IsCrossSite reports whether r carries an Origin or Referer pointing at a
// different site. Requests with neither header are not cross-site.
func IsCrossSite(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	if _, ok := claimedHeader(r); !ok {
		return false
	}
	return !IsSameOrigin(r, policy)
}

func claimedHeader(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, name := range []string{"Origin", "Referer"} {
		if value := strings.TrimSpace(r.Header.Get(name)); value != "" && value != "null" {
			return value, true
		}
	}
	return "", false
}

func claimedOrigin(r *http.Request) (origin, bool) {
	raw, ok := claimedHeader(r)
	if !ok {
		return origin{}, false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	o := origin{
		scheme: strings.ToLower(parsed.Scheme),
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o, o.valid()
}

func requestOrigin(r *http.Request, policy SchemePolicy) origin {
	o := origin{scheme: scheme(r, policy)}
	o.host, o.port = splitHost(r.Host)
	if o.host == "" && r.URL != nil {
		o.host, o.port = splitHost(r.URL.Host)
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o
}

func scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			return forwarded
		}
	}
	if r.URL != nil {
		switch s := strings.ToLower(r.URL.Scheme); s {
		case "http", "https":
			return s
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func splitHost(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}
