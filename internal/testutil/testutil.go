// Package testutil holds shared test doubles. It is imported from _test.go
// files only.
package testutil

import (
	"context"
	"io"
	"log/slog"

	"nba-bot-service/internal/domain"
)

// StubProvider implements providers.SportsProvider with per-call function
// fields. Unset fields return empty results.
type StubProvider struct {
	NameValue          string
	TeamsFunc          func(ctx context.Context) ([]domain.Team, error)
	GamesFunc          func(ctx context.Context) ([]domain.Game, error)
	PlayersFunc        func(ctx context.Context, search string) ([]domain.Player, error)
	StatisticsFunc     func(ctx context.Context) ([]domain.Statistic, error)
	SeasonAveragesFunc func(ctx context.Context, playerID int64, season int) ([]domain.SeasonAverage, error)
}

func (s *StubProvider) Name() string {
	if s.NameValue == "" {
		return "stub"
	}
	return s.NameValue
}

func (s *StubProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	if s.TeamsFunc == nil {
		return nil, nil
	}
	return s.TeamsFunc(ctx)
}

func (s *StubProvider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	if s.GamesFunc == nil {
		return nil, nil
	}
	return s.GamesFunc(ctx)
}

func (s *StubProvider) FetchPlayers(ctx context.Context, search string) ([]domain.Player, error) {
	if s.PlayersFunc == nil {
		return nil, nil
	}
	return s.PlayersFunc(ctx, search)
}

func (s *StubProvider) FetchStatistics(ctx context.Context) ([]domain.Statistic, error) {
	if s.StatisticsFunc == nil {
		return nil, nil
	}
	return s.StatisticsFunc(ctx)
}

func (s *StubProvider) FetchSeasonAverages(ctx context.Context, playerID int64, season int) ([]domain.SeasonAverage, error) {
	if s.SeasonAveragesFunc == nil {
		return nil, nil
	}
	return s.SeasonAveragesFunc(ctx, playerID, season)
}

// DiscardLogger returns a logger whose output goes nowhere.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
