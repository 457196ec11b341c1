// Package sqlite provides a SQLite-backed click store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/optionsbroker/vergleich/internal/platform/storage/sqlitemigrate"
	"github.com/optionsbroker/vergleich/internal/services/site/analytics"
	"github.com/optionsbroker/vergleich/internal/services/site/storage"
	"github.com/optionsbroker/vergleich/internal/services/site/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists clicks in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite click store at path and applies embedded migrations.
// Missing parent directories are not created.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendClick inserts one click.
func (s *Store) AppendClick(ctx context.Context, click analytics.Click) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	clickID := strings.TrimSpace(click.ID)
	if clickID == "" {
		return fmt.Errorf("click id is required")
	}
	if _, err := analytics.ParseCategory(string(click.Category)); err != nil {
		return err
	}
	occurredAt := click.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO clicks (
		   id,
		   category,
		   label,
		   broker_slug,
		   href,
		   page,
		   locale,
		   occurred_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		clickID,
		string(click.Category),
		strings.TrimSpace(click.Label),
		strings.TrimSpace(click.BrokerSlug),
		strings.TrimSpace(click.Href),
		strings.TrimSpace(click.Page),
		strings.TrimSpace(click.Locale),
		toMillis(occurredAt),
	)
	if err != nil {
		if isClickUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("append click: %w", err)
	}
	return nil
}

// SummarizeClicks counts clicks per category and per broker since since.
// Every category is present in the result, zero counts included.
func (s *Store) SummarizeClicks(ctx context.Context, since time.Time) (storage.ClickSummary, error) {
	if err := ctx.Err(); err != nil {
		return storage.ClickSummary{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ClickSummary{}, fmt.Errorf("storage is not configured")
	}
	sinceMillis := toMillis(since)
	summary := storage.ClickSummary{Since: fromMillis(sinceMillis)}

	counts := make(map[analytics.Category]int64, 3)
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM clicks WHERE occurred_at >= ? GROUP BY category`,
		sinceMillis,
	)
	if err != nil {
		return storage.ClickSummary{}, fmt.Errorf("count clicks by category: %w", err)
	}
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			_ = rows.Close()
			return storage.ClickSummary{}, fmt.Errorf("scan category count: %w", err)
		}
		counts[analytics.Category(category)] = count
	}
	if err := closeRows(rows); err != nil {
		return storage.ClickSummary{}, fmt.Errorf("iterate category counts: %w", err)
	}
	for _, category := range analytics.Categories() {
		summary.Categories = append(summary.Categories, storage.CategoryCount{Category: category, Count: counts[category]})
		summary.Total += counts[category]
	}

	rows, err = s.sqlDB.QueryContext(ctx,
		`SELECT broker_slug, COUNT(*) AS total
		   FROM clicks
		  WHERE occurred_at >= ? AND broker_slug <> ''
		  GROUP BY broker_slug
		  ORDER BY total DESC, broker_slug ASC`,
		sinceMillis,
	)
	if err != nil {
		return storage.ClickSummary{}, fmt.Errorf("count clicks by broker: %w", err)
	}
	for rows.Next() {
		var entry storage.BrokerCount
		if err := rows.Scan(&entry.BrokerSlug, &entry.Count); err != nil {
			_ = rows.Close()
			return storage.ClickSummary{}, fmt.Errorf("scan broker count: %w", err)
		}
		summary.Brokers = append(summary.Brokers, entry)
	}
	if err := closeRows(rows); err != nil {
		return storage.ClickSummary{}, fmt.Errorf("iterate broker counts: %w", err)
	}
	return summary, nil
}

// Name identifies the store as an analytics sink.
func (s *Store) Name() string { return "sqlite" }

// Record stores a dispatched click; replays of the same id are ignored.
func (s *Store) Record(ctx context.Context, click analytics.Click) error {
	err := s.AppendClick(ctx, click)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil
	}
	return err
}

func closeRows(rows *sql.Rows) error {
	iterErr := rows.Err()
	closeErr := rows.Close()
	if iterErr != nil {
		return iterErr
	}
	return closeErr
}

func isClickUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "clicks.id")
}

var (
	_ storage.ClickStore = (*Store)(nil)
	_ analytics.Sink     = (*Store)(nil)
)
