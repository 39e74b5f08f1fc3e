package config

const (
	envBdlBaseURL = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey  = "BALLDONTLIE_API_KEY"

	defaultBdlBaseURL = "https://www.balldontlie.io/api/v1"
)

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL string
	APIKey  string
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL: envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		APIKey:  envOrDefault(envBdlAPIKey, ""),
	}
}
