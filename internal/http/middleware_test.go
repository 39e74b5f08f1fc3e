package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"nba-bot-service/internal/metrics"
	"nba-bot-service/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	var seenID string
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		seenID = requestIDFromContext(r.Context())
		w.WriteHeader(nethttp.StatusNoContent)
	})

	handler := LoggingMiddleware(testutil.DiscardLogger(), metrics.NewRecorder(), next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if seenID == "" {
		t.Fatal("expected a request id in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seenID {
		t.Fatalf("header id %q != context id %q", got, seenID)
	}
	if rec.Code != nethttp.StatusNoContent {
		t.Fatalf("expected status passthrough, got %d", rec.Code)
	}
}

func TestLoggingMiddlewarePropagatesInboundRequestID(t *testing.T) {
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})

	handler := LoggingMiddleware(testutil.DiscardLogger(), metrics.NewRecorder(), next)
	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected inbound id echoed, got %q", got)
	}
}

func TestNormalizePathBoundsCardinality(t *testing.T) {
	if got := normalizePath("/api/messages"); got != "/api/messages" {
		t.Fatalf("known path mangled: %q", got)
	}
	if got := normalizePath("/favicon.ico"); got != "other" {
		t.Fatalf("unknown path not collapsed: %q", got)
	}
}

func TestRouterRoutes(t *testing.T) {
	h := newTestHandler(&stubDispatcher{}, &stubSync{}, nil, "")
	router := NewRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("health route: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/nope", nil))
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("unknown route: expected 404, got %d", rec.Code)
	}
}
