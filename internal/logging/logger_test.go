package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevelDefaultsToInfo(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{Level: "debug", Format: "json", Service: "svc", Version: "v1"}) == nil {
		t.Fatal("expected a logger")
	}
	if NewLogger(Config{}) == nil {
		t.Fatal("expected a logger with zero config")
	}
}

func TestContextRoundTrip(t *testing.T) {
	base := NewLogger(Config{})
	ctx := WithLogger(context.Background(), base)
	if got := FromContext(ctx, nil); got != base {
		t.Fatal("expected logger from context")
	}
}

func TestFromContextFallback(t *testing.T) {
	fallback := NewLogger(Config{})
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}
	if FromContext(nil, nil) == nil {
		t.Fatal("expected default logger when nothing is set")
	}
}

func TestWithCommonSkipsEmptyValues(t *testing.T) {
	attrs := WithCommon(nil, "svc", "")
	if len(attrs) != 1 {
		t.Fatalf("expected 1 attr, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService {
		t.Fatalf("unexpected key %s", attrs[0].Key)
	}
}
