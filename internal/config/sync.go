package config

// SyncConfig controls the background sync loop.
type SyncConfig struct {
	Enabled  bool
	Interval Duration
}

func loadSync() SyncConfig {
	return SyncConfig{
		Enabled:  boolEnvOrDefault(envSyncEnabled, defaultSyncEnabled),
		Interval: durationEnvOrDefault(envSyncInterval, defaultSyncInterval),
	}
}
