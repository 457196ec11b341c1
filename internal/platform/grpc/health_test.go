package grpc

import (
	"context"
	"testing"
	"time"
)

func startHealthServer(t *testing.T) (*HealthServer, context.CancelFunc) {
	t.Helper()
	server, err := NewHealthServer("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewHealthServer() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	})
	return server, cancel
}

func TestProbeServing(t *testing.T) {
	server, _ := startHealthServer(t)
	server.SetServing("", true)

	if err := Probe(context.Background(), server.Addr(), "", 2*time.Second); err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
}

func TestProbeWaitsForTransitionToServing(t *testing.T) {
	server, _ := startHealthServer(t)

	go func() {
		time.Sleep(150 * time.Millisecond)
		server.SetServing("", true)
	}()

	if err := Probe(context.Background(), server.Addr(), "", 2*time.Second); err != nil {
		t.Fatalf("Probe() after transition error = %v", err)
	}
}

func TestProbeRespectsTimeout(t *testing.T) {
	server, _ := startHealthServer(t)
	server.SetServing("", false)

	if err := Probe(context.Background(), server.Addr(), "", 250*time.Millisecond); err == nil {
		t.Fatal("expected timeout while NOT_SERVING")
	}
}

func TestProbeRequiresAddress(t *testing.T) {
	if err := Probe(context.Background(), " ", "", time.Second); err == nil {
		t.Fatal("expected missing address error")
	}
}

func TestWaitForHealthRequiresConn(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected nil connection error")
	}
}

func TestNewHealthServerRequiresAddress(t *testing.T) {
	if _, err := NewHealthServer(""); err == nil {
		t.Fatal("expected missing address error")
	}
}

func TestCloseReleasesListener(t *testing.T) {
	server, err := NewHealthServer("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewHealthServer() error = %v", err)
	}
	addr := server.Addr()
	server.Close()

	again, err := NewHealthServer(addr)
	if err != nil {
		t.Fatalf("expected address to be free after Close: %v", err)
	}
	again.Close()
}
