package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.TurnTimeout != defaultTurnTimeout {
		t.Fatalf("expected default turn timeout %s, got %s", defaultTurnTimeout, cfg.TurnTimeout)
	}
	if cfg.AppBaseURI != defaultAppBaseURI {
		t.Fatalf("expected default app base uri %s, got %s", defaultAppBaseURI, cfg.AppBaseURI)
	}
	if cfg.Balldontlie.BaseURL != defaultBdlBaseURL {
		t.Fatalf("expected default balldontlie base url %s, got %s", defaultBdlBaseURL, cfg.Balldontlie.BaseURL)
	}
	if cfg.Balldontlie.APIKey != "" {
		t.Fatalf("expected empty balldontlie api key by default, got %s", cfg.Balldontlie.APIKey)
	}
	if cfg.Redis.Enabled() {
		t.Fatal("expected redis disabled by default")
	}
	if cfg.Discord.Enabled() {
		t.Fatal("expected discord disabled by default")
	}
	if cfg.Sync.Enabled {
		t.Fatal("expected background sync disabled by default")
	}
	if cfg.Logging.Level != defaultLogLevel || cfg.Logging.Format != defaultLogFormat {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envTurnTimeout, "45s")
	t.Setenv(envBdlBaseURL, "http://example.com/api")
	t.Setenv(envBdlAPIKey, "secret-key")
	t.Setenv(envRedisAddr, "localhost:6379")
	t.Setenv(envRedisDB, "3")
	t.Setenv(envDiscordToken, "bot-token")
	t.Setenv(envDiscordPrefix, "!hoops")
	t.Setenv(envSyncEnabled, "true")
	t.Setenv(envSyncInterval, "5m")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.TurnTimeout != 45*time.Second {
		t.Fatalf("expected turn timeout 45s, got %s", cfg.TurnTimeout)
	}
	if cfg.Balldontlie.BaseURL != "http://example.com/api" {
		t.Fatalf("expected balldontlie base url override, got %s", cfg.Balldontlie.BaseURL)
	}
	if cfg.Balldontlie.APIKey != "secret-key" {
		t.Fatalf("expected balldontlie api key override, got %s", cfg.Balldontlie.APIKey)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 3 {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if !cfg.Discord.Enabled() || cfg.Discord.Prefix != "!hoops" {
		t.Fatalf("unexpected discord config: %+v", cfg.Discord)
	}
	if !cfg.Sync.Enabled || cfg.Sync.Interval != 5*time.Minute {
		t.Fatalf("unexpected sync config: %+v", cfg.Sync)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envTurnTimeout, "not-a-duration")

	cfg := Load()

	if cfg.TurnTimeout != defaultTurnTimeout {
		t.Fatalf("expected default turn timeout on invalid value, got %s", cfg.TurnTimeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envSyncInterval, "0s")

	cfg := Load()

	if cfg.Sync.Interval != defaultSyncInterval {
		t.Fatalf("expected default sync interval on non-positive value, got %s", cfg.Sync.Interval)
	}
}
