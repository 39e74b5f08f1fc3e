package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	TurnTimeout Duration
	AppBaseURI  string
	AdminToken  string
	Logging     LoggingConfig
	Balldontlie BalldontlieConfig
	Redis       RedisConfig
	Discord     DiscordConfig
	Sync        SyncConfig
	Metrics     MetricsConfig
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		TurnTimeout: durationEnvOrDefault(envTurnTimeout, defaultTurnTimeout),
		AppBaseURI:  envOrDefault(envAppBaseURI, defaultAppBaseURI),
		AdminToken:  envOrDefault(envAdminToken, ""),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Balldontlie: loadBalldontlie(),
		Redis:       loadRedis(),
		Discord:     loadDiscord(),
		Sync:        loadSync(),
		Metrics:     loadMetrics(),
	}
}
