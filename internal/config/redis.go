package config

const (
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"
)

// RedisConfig controls the durable entity store. An empty Addr selects the
// in-memory store instead.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func loadRedis() RedisConfig {
	return RedisConfig{
		Addr:     envOrDefault(envRedisAddr, ""),
		Password: envOrDefault(envRedisPassword, ""),
		DB:       intEnvOrDefault(envRedisDB, 0),
	}
}
