// Package site parses site command flags and runs the comparison site.
package site

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/optionsbroker/vergleich/internal/platform/cmd"
	platformgrpc "github.com/optionsbroker/vergleich/internal/platform/grpc"
	sitesvc "github.com/optionsbroker/vergleich/internal/services/site"
)

const defaultProbeTimeout = 2 * time.Second

// Config holds site command configuration.
type Config struct {
	HTTPAddr            string `env:"OPTIONSBROKER_SITE_HTTP_ADDR"             envDefault:"localhost:8080"`
	BaseURL             string `env:"OPTIONSBROKER_SITE_BASE_URL"              envDefault:"http://localhost:8080"`
	DBPath              string `env:"OPTIONSBROKER_SITE_DB_PATH"               envDefault:"data/clicks.db"`
	HealthAddr          string `env:"OPTIONSBROKER_SITE_HEALTH_ADDR"`
	TrackingQueue       int    `env:"OPTIONSBROKER_SITE_TRACKING_QUEUE"        envDefault:"256"`
	EventLog            bool   `env:"OPTIONSBROKER_SITE_EVENT_LOG"`
	TrustForwardedProto bool   `env:"OPTIONSBROKER_SITE_TRUST_FORWARDED_PROTO"`

	// Probe checks a running instance's health endpoint and exits.
	Probe bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "public base URL for canonical links")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite click store path (empty disables storage)")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address")
	fs.IntVar(&cfg.TrackingQueue, "tracking-queue", cfg.TrackingQueue, "buffered tracking events before drops")
	fs.BoolVar(&cfg.EventLog, "event-log", cfg.EventLog, "emit tracking events as structured JSON logs")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "honor X-Forwarded-Proto for origin checks")
	fs.BoolVar(&cfg.Probe, "probe", false, "probe the health endpoint and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.TrackingQueue <= 0 {
		return Config{}, fmt.Errorf("tracking queue must be positive, got %d", cfg.TrackingQueue)
	}
	if cfg.Probe && cfg.HealthAddr == "" {
		return Config{}, fmt.Errorf("probe requires a health address")
	}
	return cfg, nil
}

// Run starts the site server, or probes a running one when cfg.Probe is set.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Probe {
		if err := platformgrpc.Probe(ctx, cfg.HealthAddr, sitesvc.HealthService, defaultProbeTimeout); err != nil {
			return fmt.Errorf("probe site: %w", err)
		}
		return nil
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSite, func(ctx context.Context) error {
		server, err := sitesvc.NewServer(ctx, sitesvc.Config{
			HTTPAddr:            cfg.HTTPAddr,
			BaseURL:             cfg.BaseURL,
			DBPath:              cfg.DBPath,
			HealthAddr:          cfg.HealthAddr,
			TrackingQueue:       cfg.TrackingQueue,
			EventLog:            cfg.EventLog,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init site server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}
