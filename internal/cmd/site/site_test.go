package site

import (
	"context"
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, "http://localhost:8080")
	}
	if cfg.DBPath != "data/clicks.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "data/clicks.db")
	}
	if cfg.TrackingQueue != 256 {
		t.Fatalf("TrackingQueue = %d, want 256", cfg.TrackingQueue)
	}
	if cfg.EventLog || cfg.TrustForwardedProto || cfg.Probe {
		t.Fatalf("boolean defaults = %+v, want all false", cfg)
	}
}

func TestParseConfigEnvironment(t *testing.T) {
	t.Setenv("OPTIONSBROKER_SITE_BASE_URL", "https://optionen.example")
	t.Setenv("OPTIONSBROKER_SITE_TRACKING_QUEUE", "32")
	t.Setenv("OPTIONSBROKER_SITE_EVENT_LOG", "true")

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.BaseURL != "https://optionen.example" {
		t.Fatalf("BaseURL = %q, want env value", cfg.BaseURL)
	}
	if cfg.TrackingQueue != 32 {
		t.Fatalf("TrackingQueue = %d, want 32", cfg.TrackingQueue)
	}
	if !cfg.EventLog {
		t.Fatal("EventLog = false, want true")
	}
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("OPTIONSBROKER_SITE_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9100", "-db-path", "", "-trust-forwarded-proto"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9100" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9100")
	}
	if cfg.DBPath != "" {
		t.Fatalf("DBPath = %q, want empty", cfg.DBPath)
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("TrustForwardedProto = false, want true")
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string][]string{
		"queue": {"-tracking-queue", "0"},
		"probe": {"-probe"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			fs := flag.NewFlagSet("site", flag.ContinueOnError)
			if _, err := ParseConfig(fs, args); err == nil {
				t.Fatalf("ParseConfig(%v) error = nil, want error", args)
			}
		})
	}
}

func TestRunProbeFailsWithoutServer(t *testing.T) {
	err := Run(context.Background(), Config{Probe: true, HealthAddr: "127.0.0.1:1"})
	if err == nil {
		t.Fatal("Run() error = nil, want probe failure")
	}
}
