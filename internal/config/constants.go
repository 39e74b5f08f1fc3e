package config

import "time"

const (
	envPort        = "PORT"
	envTurnTimeout = "TURN_TIMEOUT"
	envAppBaseURI  = "APP_BASE_URI"
	envAdminToken  = "ADMIN_TOKEN"

	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envSyncEnabled  = "SYNC_ENABLED"
	envSyncInterval = "SYNC_INTERVAL"

	defaultPort = "4000"
	// Per-turn deadline for dispatching one chat message; the upstream API
	// itself carries no timeout, so every turn gets one here.
	defaultTurnTimeout = 15 * Duration(time.Second)
	defaultAppBaseURI  = "http://localhost:4000"
	defaultLogLevel    = "info"
	defaultLogFormat   = "json"
	defaultMetricsPort = "9090"
	defaultSyncEnabled = false
	// Conservative default sync cadence to respect upstream quotas
	// (balldontlie: 5 req/min).
	defaultSyncInterval = 2 * Duration(time.Minute)
)
