package config

const (
	envDiscordToken  = "DISCORD_TOKEN"
	envDiscordPrefix = "DISCORD_PREFIX"

	defaultDiscordPrefix = "!nba"
)

// DiscordConfig controls the Discord chat transport.
type DiscordConfig struct {
	Token  string
	Prefix string
}

// Enabled reports whether a bot token was configured.
func (c DiscordConfig) Enabled() bool {
	return c.Token != ""
}

func loadDiscord() DiscordConfig {
	return DiscordConfig{
		Token:  envOrDefault(envDiscordToken, ""),
		Prefix: envOrDefault(envDiscordPrefix, defaultDiscordPrefix),
	}
}
