package balldontlie

import "time"

const providerName = "balldontlie"

const (
	defaultBaseURL     = "https://www.balldontlie.io/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultPerPage     = 100

	resourceTeams          = "teams"
	resourceGames          = "games"
	resourcePlayers        = "players"
	resourceStats          = "stats"
	resourceSeasonAverages = "season_averages"
)
