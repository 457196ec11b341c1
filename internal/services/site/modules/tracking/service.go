package tracking

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/optionsbroker/vergleich/internal/services/site/analytics"
	"github.com/optionsbroker/vergleich/internal/services/site/brokers"
	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	apperrors "github.com/optionsbroker/vergleich/internal/services/site/platform/errors"
	"github.com/optionsbroker/vergleich/internal/services/site/storage"
	"github.com/optionsbroker/vergleich/internal/services/site/trackedlink"
)

const (
	maxFieldLength     = 256
	defaultSummaryDays = 30
	maxSummaryDays     = 365
)

// beacon is the payload posted by site.js.
type beacon struct {
	Type   string `json:"type"`
	Label  string `json:"label"`
	Broker string `json:"broker"`
	Href   string `json:"href"`
	Page   string `json:"page"`
}

type service struct {
	brokers *brokers.Catalog
	tracker analytics.Tracker
	clicks  storage.ClickStore
	now     func() time.Time
}

func newService(deps module.Dependencies) service {
	return service{
		brokers: deps.Brokers,
		tracker: deps.Tracker,
		clicks:  deps.Clicks,
		now:     time.Now,
	}
}

// record validates b and hands the click to the tracker.
func (s service) record(ctx context.Context, b beacon, locale string) (analytics.Click, error) {
	click, err := trackedlink.Click(trackedlink.Props{
		Href:          clip(b.Href),
		TrackingType:  b.Type,
		TrackingLabel: clip(b.Label),
		BrokerSlug:    clip(b.Broker),
	}, clip(b.Page), locale)
	if err != nil {
		return analytics.Click{}, err
	}
	if click.BrokerSlug != "" {
		if _, err := s.brokers.BySlug(click.BrokerSlug); err != nil {
			return analytics.Click{}, invalidPayload(fmt.Sprintf("unknown broker %q", click.BrokerSlug))
		}
	}
	if click.Category == analytics.CategoryBroker && click.BrokerSlug == "" {
		return analytics.Click{}, invalidPayload("broker clicks require a broker")
	}
	if err := analytics.Dispatch(ctx, s.tracker, click); err != nil {
		return analytics.Click{}, err
	}
	return click, nil
}

// summary reports clicks recorded in the trailing days.
func (s service) summary(ctx context.Context, days int) (storage.ClickSummary, error) {
	if s.clicks == nil {
		return storage.ClickSummary{}, apperrors.EK(apperrors.KindUnavailable, "errors.tracking.unavailable", "click store is not configured")
	}
	if days <= 0 || days > maxSummaryDays {
		return storage.ClickSummary{}, invalidPayload(fmt.Sprintf("days must be between 1 and %d", maxSummaryDays))
	}
	since := s.now().UTC().AddDate(0, 0, -days)
	summary, err := s.clicks.SummarizeClicks(ctx, since)
	if err != nil {
		return storage.ClickSummary{}, apperrors.EK(apperrors.KindUnavailable, "errors.tracking.unavailable", fmt.Sprintf("summarize clicks: %v", err))
	}
	return summary, nil
}

func invalidPayload(message string) error {
	return apperrors.EK(apperrors.KindInvalidInput, "errors.tracking.invalid_payload", message)
}

func clip(value string) string {
	value = strings.TrimSpace(value)
	if len(value) <= maxFieldLength {
		return value
	}
	value = value[:maxFieldLength]
	for !utf8.ValidString(value) {
		value = value[:len(value)-1]
	}
	return value
}
