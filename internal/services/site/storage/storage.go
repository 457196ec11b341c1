// Package storage defines persistence contracts for recorded clicks.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/optionsbroker/vergleich/internal/services/site/analytics"
)

// ErrAlreadyExists indicates a click with the same id was already stored.
var ErrAlreadyExists = errors.New("record already exists")

// CategoryCount is the number of clicks recorded for one category.
type CategoryCount struct {
	Category analytics.Category `json:"category"`
	Count    int64              `json:"count"`
}

// BrokerCount is the number of broker or outbound clicks for one broker.
type BrokerCount struct {
	BrokerSlug string `json:"broker"`
	Count      int64  `json:"count"`
}

// ClickSummary aggregates clicks recorded since a point in time.
type ClickSummary struct {
	Since      time.Time       `json:"since"`
	Total      int64           `json:"total"`
	Categories []CategoryCount `json:"categories"`
	Brokers    []BrokerCount   `json:"brokers"`
}

// ClickStore persists clicks append-only and reports aggregates.
type ClickStore interface {
	AppendClick(ctx context.Context, click analytics.Click) error
	SummarizeClicks(ctx context.Context, since time.Time) (ClickSummary, error)
}
