package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nba-bot-service/internal/bot"
	"nba-bot-service/internal/testutil"
)

type stubDispatcher struct {
	got   bot.Activity
	reply bot.Reply
}

func (s *stubDispatcher) Dispatch(ctx context.Context, activity bot.Activity) bot.Reply {
	s.got = activity
	return s.reply
}

type stubSync struct {
	err error
}

func (s *stubSync) SyncAllTeams(ctx context.Context) (int, error)      { return 30, s.err }
func (s *stubSync) SyncAllGames(ctx context.Context) (int, error)      { return 100, s.err }
func (s *stubSync) SyncAllPlayers(ctx context.Context) (int, error)    { return 100, s.err }
func (s *stubSync) SyncAllStatistics(ctx context.Context) (int, error) { return 100, s.err }

func newTestHandler(d *stubDispatcher, sync syncService, ready func() bool, adminToken string) *Handler {
	return NewHandler(d, sync, ready, testutil.DiscardLogger(), adminToken, time.Second)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&stubDispatcher{}, &stubSync{}, nil, "")
	rec := httptest.NewRecorder()

	h.Health(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyReflectsReadiness(t *testing.T) {
	ready := false
	h := newTestHandler(&stubDispatcher{}, &stubSync{}, func() bool { return ready }, "")

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(nethttp.MethodGet, "/ready", nil))
	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503 when not ready, got %d", rec.Code)
	}

	ready = true
	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(nethttp.MethodGet, "/ready", nil))
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 when ready, got %d", rec.Code)
	}
}

func TestMessagesDispatchesAndRendersText(t *testing.T) {
	d := &stubDispatcher{reply: bot.Reply{Kind: bot.ReplyText, Text: "hello"}}
	h := newTestHandler(d, &stubSync{}, nil, "")

	body := `{"type":"message","text":"sync all teams"}`
	rec := httptest.NewRecorder()
	h.Messages(rec, httptest.NewRequest(nethttp.MethodPost, "/api/messages", strings.NewReader(body)))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if d.got.Type != bot.ActivityMessage || d.got.Text != "sync all teams" {
		t.Fatalf("unexpected dispatched activity: %+v", d.got)
	}
	var resp replyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Type != "message" || resp.Text != "hello" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestMessagesTreatsValueAsCardAction(t *testing.T) {
	d := &stubDispatcher{reply: bot.Reply{Kind: bot.ReplyNone}}
	h := newTestHandler(d, &stubSync{}, nil, "")

	body := `{"type":"message","text":"","value":"take a tour"}`
	rec := httptest.NewRecorder()
	h.Messages(rec, httptest.NewRequest(nethttp.MethodPost, "/api/messages", strings.NewReader(body)))

	if d.got.Type != bot.ActivityCardAction {
		t.Fatalf("expected card action, got %s", d.got.Type)
	}
	if d.got.Text != "take a tour" {
		t.Fatalf("expected card value as text, got %q", d.got.Text)
	}
	var resp replyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Type != "none" {
		t.Fatalf("expected none response, got %+v", resp)
	}
}

func TestMessagesRejectsMalformedBody(t *testing.T) {
	h := newTestHandler(&stubDispatcher{}, &stubSync{}, nil, "")

	rec := httptest.NewRecorder()
	h.Messages(rec, httptest.NewRequest(nethttp.MethodPost, "/api/messages", strings.NewReader("{not json")))

	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMessagesRejectsGet(t *testing.T) {
	h := newTestHandler(&stubDispatcher{}, &stubSync{}, nil, "")

	rec := httptest.NewRecorder()
	h.Messages(rec, httptest.NewRequest(nethttp.MethodGet, "/api/messages", nil))

	if rec.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestAdminSyncRequiresConfiguredToken(t *testing.T) {
	h := newTestHandler(&stubDispatcher{}, &stubSync{}, nil, "")

	rec := httptest.NewRecorder()
	h.AdminSync(rec, httptest.NewRequest(nethttp.MethodPost, "/admin/sync", nil))

	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("expected 404 when no token configured, got %d", rec.Code)
	}
}

func TestAdminSyncRejectsBadToken(t *testing.T) {
	h := newTestHandler(&stubDispatcher{}, &stubSync{}, nil, "secret")

	req := httptest.NewRequest(nethttp.MethodPost, "/admin/sync", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	h.AdminSync(rec, req)

	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminSyncRunsAllSteps(t *testing.T) {
	h := newTestHandler(&stubDispatcher{}, &stubSync{}, nil, "secret")

	req := httptest.NewRequest(nethttp.MethodPost, "/admin/sync", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.AdminSync(rec, req)

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Synced   map[string]int    `json:"synced"`
		Failures map[string]string `json:"failures"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Synced) != 4 || len(resp.Failures) != 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAdminSyncReportsFailures(t *testing.T) {
	h := newTestHandler(&stubDispatcher{}, &stubSync{err: errors.New("upstream down")}, nil, "secret")

	req := httptest.NewRequest(nethttp.MethodPost, "/admin/sync", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.AdminSync(rec, req)

	if rec.Code != nethttp.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
