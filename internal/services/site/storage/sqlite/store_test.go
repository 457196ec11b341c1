package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/optionsbroker/vergleich/internal/services/site/analytics"
	"github.com/optionsbroker/vergleich/internal/services/site/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), " "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clicks.db")
	first, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	second, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestAppendClickAndSummarize(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	clicks := []analytics.Click{
		{ID: "old", Category: analytics.CategoryCTA, OccurredAt: base.Add(-48 * time.Hour)},
		{ID: "c1", Category: analytics.CategoryCTA, Label: "hero", Page: "/", Locale: "de", OccurredAt: base},
		{ID: "b1", Category: analytics.CategoryBroker, BrokerSlug: "lynx", OccurredAt: base.Add(time.Minute)},
		{ID: "b2", Category: analytics.CategoryBroker, BrokerSlug: "captrader", OccurredAt: base.Add(2 * time.Minute)},
		{ID: "o1", Category: analytics.CategoryOutbound, BrokerSlug: "lynx", Href: "https://www.lynxbroker.de/", OccurredAt: base.Add(3 * time.Minute)},
	}
	for _, click := range clicks {
		if err := store.AppendClick(ctx, click); err != nil {
			t.Fatalf("append %s: %v", click.ID, err)
		}
	}

	got, err := store.SummarizeClicks(ctx, base)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	want := storage.ClickSummary{
		Since: base,
		Total: 4,
		Categories: []storage.CategoryCount{
			{Category: analytics.CategoryCTA, Count: 1},
			{Category: analytics.CategoryBroker, Count: 2},
			{Category: analytics.CategoryOutbound, Count: 1},
		},
		Brokers: []storage.BrokerCount{
			{BrokerSlug: "lynx", Count: 2},
			{BrokerSlug: "captrader", Count: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeEmptyStoreListsAllCategories(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	got, err := store.SummarizeClicks(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(got.Categories) != 3 || got.Total != 0 || len(got.Brokers) != 0 {
		t.Fatalf("summary = %+v", got)
	}
}

func TestAppendClickRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.AppendClick(context.Background(), analytics.Click{Category: analytics.CategoryCTA}); err == nil {
		t.Fatal("expected missing id error")
	}
	if err := store.AppendClick(context.Background(), analytics.Click{ID: "x", Category: "banner"}); err == nil {
		t.Fatal("expected invalid category error")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.AppendClick(ctx, analytics.Click{ID: "x", Category: analytics.CategoryCTA}); !errors.Is(err, context.Canceled) {
		t.Fatalf("AppendClick(cancelled) error = %v", err)
	}
}

func TestAppendClickDuplicateAndRecordIdempotence(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	click := analytics.Click{ID: "dup", Category: analytics.CategoryOutbound, OccurredAt: time.Now()}
	if err := store.AppendClick(context.Background(), click); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.AppendClick(context.Background(), click); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate append error = %v, want ErrAlreadyExists", err)
	}
	if err := store.Record(context.Background(), click); err != nil {
		t.Fatalf("Record(duplicate) error = %v", err)
	}
	if store.Name() != "sqlite" {
		t.Fatalf("Name() = %q", store.Name())
	}
}

func TestNilStore(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := store.AppendClick(context.Background(), analytics.Click{ID: "x", Category: analytics.CategoryCTA}); err == nil {
		t.Fatal("expected unconfigured error")
	}
	if _, err := store.SummarizeClicks(context.Background(), time.Time{}); err == nil {
		t.Fatal("expected unconfigured error")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "clicks.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
