package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsSameOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    bool
	}{
		{
			name:    "origin same host",
			target:  "http://site.example.test/api/track",
			headers: map[string]string{"Origin": "http://site.example.test"},
			want:    true,
		},
		{
			name:    "referer same host",
			target:  "http://site.example.test/api/track",
			headers: map[string]string{"Referer": "http://site.example.test/optionen-broker-vergleich"},
			want:    true,
		},
		{
			name:    "explicit default port",
			target:  "http://site.example.test/api/track",
			headers: map[string]string{"Origin": "http://site.example.test:80"},
			want:    true,
		},
		{
			name:    "scheme mismatch",
			target:  "http://site.example.test/api/track",
			headers: map[string]string{"Origin": "https://site.example.test"},
			want:    false,
		},
		{
			name:    "other host",
			target:  "http://site.example.test/api/track",
			headers: map[string]string{"Origin": "http://evil.example.test"},
			want:    false,
		},
		{
			name:    "port mismatch",
			target:  "http://site.example.test:8080/api/track",
			headers: map[string]string{"Origin": "http://site.example.test"},
			want:    false,
		},
		{
			name:   "no headers",
			target: "http://site.example.test/api/track",
			want:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, tc.target, nil)
			for name, value := range tc.headers {
				req.Header.Set(name, value)
			}
			if got := IsSameOrigin(req, SchemePolicy{}); got != tc.want {
				t.Fatalf("IsSameOrigin() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsCrossSite(t *testing.T) {
	t.Parallel()

	if IsCrossSite(nil, SchemePolicy{}) {
		t.Fatal("nil request should not be cross-site")
	}

	req := httptest.NewRequest(http.MethodPost, "http://site.example.test/api/track", nil)
	if IsCrossSite(req, SchemePolicy{}) {
		t.Fatal("request without origin headers should not be cross-site")
	}

	req.Header.Set("Origin", "http://evil.example.test")
	if !IsCrossSite(req, SchemePolicy{}) {
		t.Fatal("foreign origin should be cross-site")
	}

	req.Header.Set("Origin", "http://site.example.test")
	if IsCrossSite(req, SchemePolicy{}) {
		t.Fatal("same origin should not be cross-site")
	}
}

func TestForwardedProtoRequiresPolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/track", nil)
	req.Host = "site.example.test"
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("Origin", "https://site.example.test")

	if IsSameOrigin(req, SchemePolicy{}) {
		t.Fatal("forwarded proto must be ignored without policy")
	}
	if !IsSameOrigin(req, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("forwarded proto should be honoured with policy")
	}
}

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	if IsHTTPS(nil, SchemePolicy{}) {
		t.Fatal("expected nil request to be non-https")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTTPS(req, SchemePolicy{}) {
		t.Fatal("expected plain request to be non-https")
	}
	req.TLS = &tls.ConnectionState{}
	if !IsHTTPS(req, SchemePolicy{}) {
		t.Fatal("expected TLS request to be https")
	}
}
