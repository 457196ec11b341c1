package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ZapSink writes one structured log entry per click.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps logger; a nil logger yields a no-op sink.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger.Named("clicks")}
}

// NewProductionZapSink builds a JSON logger writing to stderr.
func NewProductionZapSink() (*ZapSink, error) {
	config := zap.NewProductionConfig()
	config.Sampling = nil
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return NewZapSink(logger), nil
}

func (s *ZapSink) Name() string { return "zap" }

func (s *ZapSink) Record(_ context.Context, click Click) error {
	s.logger.Info("click",
		zap.String("id", click.ID),
		zap.String("category", string(click.Category)),
		zap.String("label", click.Label),
		zap.String("broker", click.BrokerSlug),
		zap.String("href", click.Href),
		zap.String("page", click.Page),
		zap.String("locale", click.Locale),
		zap.Time("occurred_at", click.OccurredAt.UTC().Truncate(time.Millisecond)),
	)
	return nil
}

// Sync flushes buffered log entries.
func (s *ZapSink) Sync() error {
	return s.logger.Sync()
}
