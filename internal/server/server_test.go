package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nba-bot-service/internal/config"
	"nba-bot-service/internal/syncer"
	"nba-bot-service/internal/testutil"
)

type stubSyncer struct {
	startCalls int
	stopCalls  int
	status     syncer.Status
}

func (s *stubSyncer) Start(ctx context.Context)      { s.startCalls++ }
func (s *stubSyncer) Stop(ctx context.Context) error { s.stopCalls++; return nil }
func (s *stubSyncer) Status() syncer.Status          { return s.status }

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	if s.listenErr != nil {
		return s.listenErr
	}
	return http.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	return nil
}

func (s *stubHTTPServer) Addr() string          { return s.addr }
func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Metrics.Enabled = false
	return cfg
}

func TestNewBuildsWorkingHTTPHandler(t *testing.T) {
	srv := New(testConfig(), testutil.DiscardLogger())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}
}

func TestReadyAlwaysOKWithoutSyncer(t *testing.T) {
	cfg := testConfig()
	cfg.Sync.Enabled = false
	srv := New(cfg, testutil.DiscardLogger())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /ready without syncer, got %d", rec.Code)
	}
}

func TestReadyTracksSyncerStatus(t *testing.T) {
	cfg := testConfig()
	cfg.Sync.Enabled = true
	srv := New(cfg, testutil.DiscardLogger())

	// The syncer has not succeeded yet, so readiness must be false.
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first sync success, got %d", rec.Code)
	}
}

func TestRunStartsAndStopsComponents(t *testing.T) {
	httpSrv := &stubHTTPServer{addr: ":0"}
	sync := &stubSyncer{}
	srv := newServerWithDeps(testConfig(), testutil.DiscardLogger(), httpSrv, sync)

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
		t.Fatal("run did not return after cancellation")
	}

	if sync.startCalls != 1 || sync.stopCalls != 1 {
		t.Fatalf("unexpected syncer calls: start=%d stop=%d", sync.startCalls, sync.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected one http shutdown, got %d", httpSrv.shutdownCalls)
	}
}

func TestMemoryStoreSelectedWithoutRedis(t *testing.T) {
	cfg := testConfig()
	cfg.Redis.Addr = ""

	srv := New(cfg, testutil.DiscardLogger())

	if srv.redisClient != nil {
		t.Fatal("expected no redis client when addr unset")
	}
	if srv.store == nil {
		t.Fatal("expected a store")
	}
}
