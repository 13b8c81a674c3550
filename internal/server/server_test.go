package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"football-stats-service/internal/config"
	"football-stats-service/internal/testutil"
)

func fixtureConfig() config.Config {
	cfg := config.Config{
		Port:     "0",
		Provider: config.ProviderFixture,
	}
	cfg.Metrics.Enabled = false
	return cfg
}

func TestNewServesFixtureEndToEnd(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/player/276?season=2022", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var payload struct {
		Get        string            `json:"get"`
		Parameters map[string]string `json:"parameters"`
	}
	testutil.DecodeJSON(t, rr, &payload)
	if payload.Get != "players" {
		t.Fatalf("expected players payload, got %s", payload.Get)
	}
	if payload.Parameters["season"] != "2022" {
		t.Fatalf("expected season forwarded, got %v", payload.Parameters)
	}
}

func TestHandlerIncludesRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header from middleware")
	}
}

func TestBuildHTTPServerAppliesTimeouts(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)

	nh, ok := srv.httpServer.(netHTTPServer)
	if !ok {
		t.Fatalf("expected netHTTPServer, got %T", srv.httpServer)
	}
	if nh.srv.ReadTimeout != readTimeout {
		t.Fatalf("expected read timeout %s, got %s", readTimeout, nh.srv.ReadTimeout)
	}
	if nh.srv.WriteTimeout != writeTimeout {
		t.Fatalf("expected write timeout %s, got %s", writeTimeout, nh.srv.WriteTimeout)
	}
	if nh.srv.IdleTimeout != idleTimeout {
		t.Fatalf("expected idle timeout %s, got %s", idleTimeout, nh.srv.IdleTimeout)
	}
	// The write timeout must leave room for a full upstream round trip.
	if nh.srv.WriteTimeout <= 10*time.Second {
		t.Fatalf("write timeout %s does not cover the upstream client timeout", nh.srv.WriteTimeout)
	}
}

type stubHTTPServer struct {
	shutdowns int32
}

func (s *stubHTTPServer) ListenAndServe() error { return http.ErrServerClosed }
func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	atomic.AddInt32(&s.shutdowns, 1)
	return nil
}
func (s *stubHTTPServer) Addr() string          { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler { return nil }

func TestRunShutsDownOnContextCancel(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)
	stub := &stubHTTPServer{}
	srv.httpServer = stub

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("expected Run to return after cancellation")
	}

	if atomic.LoadInt32(&stub.shutdowns) != 1 {
		t.Fatalf("expected one shutdown call, got %d", stub.shutdowns)
	}
}
