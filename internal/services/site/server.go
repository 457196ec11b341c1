// Package site hosts the OptionsBroker Vergleich marketing site.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	platformgrpc "github.com/optionsbroker/vergleich/internal/platform/grpc"
	"github.com/optionsbroker/vergleich/internal/platform/timeouts"
	"github.com/optionsbroker/vergleich/internal/services/site/analytics"
	siteapp "github.com/optionsbroker/vergleich/internal/services/site/app"
	"github.com/optionsbroker/vergleich/internal/services/site/brokers"
	module "github.com/optionsbroker/vergleich/internal/services/site/module"
	"github.com/optionsbroker/vergleich/internal/services/site/modules"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/httpx"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/observability"
	"github.com/optionsbroker/vergleich/internal/services/site/platform/requestmeta"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
	sitestatic "github.com/optionsbroker/vergleich/internal/services/site/static"
	"github.com/optionsbroker/vergleich/internal/services/site/storage"
	"github.com/optionsbroker/vergleich/internal/services/site/storage/sqlite"
	"golang.org/x/sync/errgroup"
)

// HealthService is the gRPC health service name reported by the site.
const HealthService = "optionsbroker.site"

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr string
	// BaseURL is the public origin used in canonical links and the sitemap.
	BaseURL string
	// DBPath locates the SQLite click store; empty disables it.
	DBPath string
	// HealthAddr enables the gRPC health endpoint when set.
	HealthAddr          string
	TrackingQueue       int
	EventLog            bool
	TrustForwardedProto bool
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	dispatcher *analytics.Dispatcher
	store      *sqlite.Store
	events     *analytics.ZapSink
	health     *platformgrpc.HealthServer
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(deps module.Dependencies) (http.Handler, error) {
	composed, err := siteapp.Composer{}.Compose(siteapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, sitestatic.Handler())
	rootMux.HandleFunc(routepath.Health, handleHealth)
	rootMux.Handle(routepath.Root, composed)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.SecurityHeaders(),
		observability.RequestLogger(log.Default()),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.WriteString(w, "ok")
}

// NewServer validates config, opens the click sinks and binds the listeners.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	catalog, err := brokers.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load broker catalog: %w", err)
	}

	s := &Server{}
	var sinks []analytics.Sink
	var clicks storage.ClickStore
	if dbPath := strings.TrimSpace(cfg.DBPath); dbPath != "" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create click store dir: %w", err)
			}
		}
		store, err := sqlite.Open(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("open click store: %w", err)
		}
		s.store = store
		sinks = append(sinks, store)
		clicks = store
	}
	if cfg.EventLog {
		events, err := analytics.NewProductionZapSink()
		if err != nil {
			s.closeResources()
			return nil, fmt.Errorf("create click event log: %w", err)
		}
		s.events = events
		sinks = append(sinks, events)
	}
	s.dispatcher = analytics.NewDispatcher(cfg.TrackingQueue, sinks)

	handler, err := NewHandler(module.Dependencies{
		BaseURL:      strings.TrimSpace(cfg.BaseURL),
		Brokers:      catalog,
		Tracker:      analytics.NewRecorder(s.dispatcher),
		Clicks:       clicks,
		SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	})
	if err != nil {
		s.closeResources()
		return nil, fmt.Errorf("compose site handler: %w", err)
	}

	if healthAddr := strings.TrimSpace(cfg.HealthAddr); healthAddr != "" {
		health, err := platformgrpc.NewHealthServer(healthAddr)
		if err != nil {
			s.closeResources()
			return nil, err
		}
		s.health = health
	}

	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		s.health.Close()
		s.closeResources()
		return nil, fmt.Errorf("listen on %s: %w", httpAddr, err)
	}
	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return s, nil
}

// Addr returns the bound HTTP address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// HealthAddr returns the bound gRPC health address, or "" when disabled.
func (s *Server) HealthAddr() string {
	if s == nil || s.health == nil {
		return ""
	}
	return s.health.Addr()
}

// ListenAndServe serves HTTP traffic, the click dispatcher and the optional
// health endpoint until ctx is cancelled or one of them fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	defer s.closeResources()

	// The dispatcher outlives the HTTP drain so in-flight handlers can still enqueue.
	dispatchCtx, stopDispatch := context.WithCancel(context.WithoutCancel(ctx))
	defer stopDispatch()
	dispatchDone := make(chan error, 1)
	go func() {
		dispatchDone <- s.dispatcher.Run(dispatchCtx)
	}()

	g, gctx := errgroup.WithContext(ctx)
	if s.health != nil {
		g.Go(func() error {
			return s.health.Serve(gctx)
		})
		s.health.SetServing("", true)
		s.health.SetServing(HealthService, true)
	}
	g.Go(func() error {
		return s.serveHTTP(gctx)
	})

	log.Printf("site listening addr=%s", s.Addr())
	err := g.Wait()
	stopDispatch()
	if dispatchErr := <-dispatchDone; err == nil {
		err = dispatchErr
	}
	stats := s.dispatcher.Stats()
	log.Printf("click dispatcher stopped enqueued=%d delivered=%d dropped=%d failed=%d",
		stats.Enqueued, stats.Delivered, stats.Dropped, stats.Failed)
	return err
}

func (s *Server) serveHTTP(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.SetServing(HealthService, false)
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.health.Close()
	s.closeResources()
}

func (s *Server) closeResources() {
	if s.events != nil {
		_ = s.events.Sync()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close click store err=%v", err)
		}
		s.store = nil
	}
}
