package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/optionsbroker/vergleich/internal/services/site/analytics"
	"github.com/optionsbroker/vergleich/internal/services/site/brokers"
	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
	"github.com/optionsbroker/vergleich/internal/services/site/storage"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	click  analytics.Click
}

type fakeTracker struct {
	mu    sync.Mutex
	calls []call
}

func (f *fakeTracker) add(method string, click analytics.Click) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: method, click: click})
}

func (f *fakeTracker) TrackCTAClick(_ context.Context, click analytics.Click) {
	f.add("cta", click)
}

func (f *fakeTracker) TrackBrokerClick(_ context.Context, click analytics.Click) {
	f.add("broker", click)
}

func (f *fakeTracker) TrackOutboundClick(_ context.Context, click analytics.Click) {
	f.add("outbound", click)
}

type fakeClickStore struct {
	since   time.Time
	summary storage.ClickSummary
	err     error
}

func (f *fakeClickStore) AppendClick(context.Context, analytics.Click) error { return nil }

func (f *fakeClickStore) SummarizeClicks(_ context.Context, since time.Time) (storage.ClickSummary, error) {
	f.since = since
	return f.summary, f.err
}

func mountTracking(t *testing.T, tracker analytics.Tracker, clicks storage.ClickStore) http.Handler {
	t.Helper()
	catalog, err := brokers.LoadEmbedded()
	require.NoError(t, err)
	mount, err := New().Mount(module.Dependencies{Brokers: catalog, Tracker: tracker, Clicks: clicks})
	require.NoError(t, err)
	require.Equal(t, routepath.APIPrefix, mount.Prefix)
	return mount.Handler
}

func postJSON(t *testing.T, h http.Handler, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "http://site.example.test"+routepath.Track, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestTrackDispatchesExactlyOneTrackerCall(t *testing.T) {
	t.Parallel()

	for _, category := range []string{"cta", "broker", "outbound"} {
		t.Run(category, func(t *testing.T) {
			t.Parallel()
			tracker := &fakeTracker{}
			h := mountTracking(t, tracker, nil)

			body := `{"type":"` + category + `","label":"hero","broker":"lynx","href":"https://www.lynxbroker.de/","page":"/"}`
			rr := postJSON(t, h, body, map[string]string{"Origin": "http://site.example.test"})

			require.Equal(t, http.StatusAccepted, rr.Code)
			require.Len(t, tracker.calls, 1)
			require.Equal(t, category, tracker.calls[0].method)
			require.Equal(t, "lynx", tracker.calls[0].click.BrokerSlug)
			require.Equal(t, "de", tracker.calls[0].click.Locale)
		})
	}
}

func TestTrackBuildsClickLikeTheRenderedLink(t *testing.T) {
	t.Parallel()

	tracker := &fakeTracker{}
	body := `{"type":" Outbound ","label":" footer ","href":" https://www.esma.europa.eu/ ","page":"/ratgeber/optionshandel-lernen"}`
	rr := postJSON(t, mountTracking(t, tracker, nil), body, nil)

	require.Equal(t, http.StatusAccepted, rr.Code)
	require.Len(t, tracker.calls, 1)
	click := tracker.calls[0].click
	require.Equal(t, "outbound", tracker.calls[0].method)
	require.Equal(t, analytics.CategoryOutbound, click.Category)
	require.Equal(t, "footer", click.Label)
	require.Equal(t, "https://www.esma.europa.eu/", click.Href)
	require.Equal(t, "/ratgeber/optionshandel-lernen", click.Page)
}

func TestTrackRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	tracker := &fakeTracker{}
	rr := postJSON(t, mountTracking(t, tracker, nil), `{"type":"banner"}`, map[string]string{"Accept-Language": "en"})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Empty(t, tracker.calls)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Equal(t, "Unknown tracking type.", payload["error"])
}

func TestTrackRejectsBrokerClickWithoutKnownBroker(t *testing.T) {
	t.Parallel()

	tracker := &fakeTracker{}
	h := mountTracking(t, tracker, nil)

	rr := postJSON(t, h, `{"type":"broker","broker":"unknown"}`, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postJSON(t, h, `{"type":"broker"}`, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Empty(t, tracker.calls)
}

func TestTrackRejectsCrossSiteBeacon(t *testing.T) {
	t.Parallel()

	tracker := &fakeTracker{}
	rr := postJSON(t, mountTracking(t, tracker, nil), `{"type":"cta"}`, map[string]string{"Origin": "https://evil.example.test"})

	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Empty(t, tracker.calls)
}

func TestTrackAcceptsFormBeacon(t *testing.T) {
	t.Parallel()

	tracker := &fakeTracker{}
	h := mountTracking(t, tracker, nil)
	form := url.Values{"type": {"outbound"}, "label": {"footer"}, "href": {"https://www.bafin.de/"}}
	req := httptest.NewRequest(http.MethodPost, routepath.Track, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)
	require.Len(t, tracker.calls, 1)
	require.Equal(t, "outbound", tracker.calls[0].method)
	require.Equal(t, "footer", tracker.calls[0].click.Label)
}

func TestTrackRejectsMalformedAndOversizedJSON(t *testing.T) {
	t.Parallel()

	h := mountTracking(t, &fakeTracker{}, nil)
	require.Equal(t, http.StatusBadRequest, postJSON(t, h, `{"type":`, nil).Code)

	huge := `{"type":"cta","label":"` + strings.Repeat("x", maxBeaconBytes) + `"}`
	require.Equal(t, http.StatusBadRequest, postJSON(t, h, huge, nil).Code)
}

func TestTrackRequiresPost(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountTracking(t, nil, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Track, nil))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	require.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
}

func TestTrackWithoutTrackerStillAccepts(t *testing.T) {
	t.Parallel()

	rr := postJSON(t, mountTracking(t, nil, nil), `{"type":"cta","label":"hero"}`, nil)
	require.Equal(t, http.StatusAccepted, rr.Code)
}

func TestClipTruncatesOnRuneBoundary(t *testing.T) {
	t.Parallel()

	value := strings.Repeat("a", maxFieldLength-1) + "ä"
	got := clip(value)
	require.LessOrEqual(t, len(got), maxFieldLength)
	require.Equal(t, strings.Repeat("a", maxFieldLength-1), got)
}

func TestSummaryUnavailableWithoutStore(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.ClickSummary, nil)
	req.Header.Set("Accept-Language", "en")
	rr := httptest.NewRecorder()
	mountTracking(t, nil, nil).ServeHTTP(rr, req)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.Contains(t, rr.Body.String(), "Click statistics are currently unavailable.")
}

func TestSummaryReturnsStoreSummary(t *testing.T) {
	t.Parallel()

	store := &fakeClickStore{summary: storage.ClickSummary{
		Total:      3,
		Categories: []storage.CategoryCount{{Category: "broker", Count: 3}},
	}}
	h := mountTracking(t, nil, store)
	req := httptest.NewRequest(http.MethodGet, routepath.ClickSummary+"?days=7", nil)
	rr := httptest.NewRecorder()
	before := time.Now().UTC()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got storage.ClickSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, int64(3), got.Total)
	require.WithinDuration(t, before.AddDate(0, 0, -7), store.since, time.Minute)
}

func TestSummaryValidatesDays(t *testing.T) {
	t.Parallel()

	h := mountTracking(t, nil, &fakeClickStore{})
	for _, days := range []string{"0", "400", "abc"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.ClickSummary+"?days="+days, nil))
		require.Equal(t, http.StatusBadRequest, rr.Code, "days=%s", days)
	}
}

func TestSummaryStoreFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountTracking(t, nil, &fakeClickStore{err: errors.New("disk gone")}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.ClickSummary, nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestUnknownAPIPathIsJSONNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountTracking(t, nil, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Header().Get("Content-Type"), "application/json")
}
