package providers

import (
	"context"

	"nba-bot-service/internal/domain"
)

// SportsProvider is the upstream sports-data surface the sync service
// depends on. Every call is a single best-effort request; implementations
// must not retry.
type SportsProvider interface {
	Name() string
	FetchTeams(ctx context.Context) ([]domain.Team, error)
	FetchGames(ctx context.Context) ([]domain.Game, error)
	FetchPlayers(ctx context.Context, search string) ([]domain.Player, error)
	FetchStatistics(ctx context.Context) ([]domain.Statistic, error)
	FetchSeasonAverages(ctx context.Context, playerID int64, season int) ([]domain.SeasonAverage, error)
}
