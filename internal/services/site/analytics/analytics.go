// Package analytics records visitor clicks on tracked links.
//
// Clicks are fire-and-forget: handlers enqueue them and return immediately,
// and a single dispatcher goroutine hands them to the configured sinks. A
// failed sink write is logged and dropped.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/optionsbroker/vergleich/internal/services/site/platform/errors"
)

// Category selects which tracker call records a click.
type Category string

const (
	CategoryCTA      Category = "cta"
	CategoryBroker   Category = "broker"
	CategoryOutbound Category = "outbound"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryCTA, CategoryBroker, CategoryOutbound}
}

// ParseCategory validates a raw tracking type.
func ParseCategory(value string) (Category, error) {
	switch category := Category(strings.ToLower(strings.TrimSpace(value))); category {
	case CategoryCTA, CategoryBroker, CategoryOutbound:
		return category, nil
	default:
		return "", apperrors.EK(apperrors.KindInvalidInput, "errors.tracking.invalid_category", fmt.Sprintf("unknown tracking type %q", value))
	}
}

// Click is one recorded click on a tracked link.
type Click struct {
	ID         string
	Category   Category
	Label      string
	BrokerSlug string
	Href       string
	Page       string
	Locale     string
	OccurredAt time.Time
}

// Tracker is the analytics collaborator invoked by tracked links.
type Tracker interface {
	TrackCTAClick(ctx context.Context, click Click)
	TrackBrokerClick(ctx context.Context, click Click)
	TrackOutboundClick(ctx context.Context, click Click)
}

// Dispatch invokes exactly one tracker method chosen by click.Category.
func Dispatch(ctx context.Context, tracker Tracker, click Click) error {
	if tracker == nil {
		return nil
	}
	switch click.Category {
	case CategoryCTA:
		tracker.TrackCTAClick(ctx, click)
	case CategoryBroker:
		tracker.TrackBrokerClick(ctx, click)
	case CategoryOutbound:
		tracker.TrackOutboundClick(ctx, click)
	default:
		_, err := ParseCategory(string(click.Category))
		return err
	}
	return nil
}

// NopTracker discards every click.
type NopTracker struct{}

func (NopTracker) TrackCTAClick(context.Context, Click)      {}
func (NopTracker) TrackBrokerClick(context.Context, Click)   {}
func (NopTracker) TrackOutboundClick(context.Context, Click) {}
