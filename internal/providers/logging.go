package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-bot-service/internal/domain"
	"nba-bot-service/internal/logging"
	"nba-bot-service/internal/metrics"
)

// LoggingProvider decorates a SportsProvider with structured logs and
// provider-call metrics. It does not change call semantics: one attempt in,
// one attempt out.
type LoggingProvider struct {
	next    SportsProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewLoggingProvider wraps next with logging and metrics.
func NewLoggingProvider(next SportsProvider, logger *slog.Logger, recorder *metrics.Recorder) *LoggingProvider {
	return &LoggingProvider{next: next, logger: logger, metrics: recorder}
}

// Name reports the wrapped provider's name.
func (p *LoggingProvider) Name() string { return p.next.Name() }

// FetchTeams delegates to the wrapped provider.
func (p *LoggingProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	start := time.Now()
	teams, err := p.next.FetchTeams(ctx)
	p.observe(ctx, "teams", len(teams), time.Since(start), err)
	return teams, err
}

// FetchGames delegates to the wrapped provider.
func (p *LoggingProvider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	start := time.Now()
	games, err := p.next.FetchGames(ctx)
	p.observe(ctx, "games", len(games), time.Since(start), err)
	return games, err
}

// FetchPlayers delegates to the wrapped provider.
func (p *LoggingProvider) FetchPlayers(ctx context.Context, search string) ([]domain.Player, error) {
	start := time.Now()
	players, err := p.next.FetchPlayers(ctx, search)
	p.observe(ctx, "players", len(players), time.Since(start), err)
	return players, err
}

// FetchStatistics delegates to the wrapped provider.
func (p *LoggingProvider) FetchStatistics(ctx context.Context) ([]domain.Statistic, error) {
	start := time.Now()
	stats, err := p.next.FetchStatistics(ctx)
	p.observe(ctx, "stats", len(stats), time.Since(start), err)
	return stats, err
}

// FetchSeasonAverages delegates to the wrapped provider.
func (p *LoggingProvider) FetchSeasonAverages(ctx context.Context, playerID int64, season int) ([]domain.SeasonAverage, error) {
	start := time.Now()
	averages, err := p.next.FetchSeasonAverages(ctx, playerID, season)
	p.observe(ctx, "season_averages", len(averages), time.Since(start), err)
	return averages, err
}

func (p *LoggingProvider) observe(ctx context.Context, resource string, count int, duration time.Duration, err error) {
	if p.metrics != nil {
		p.metrics.RecordProviderAttempt(p.next.Name(), duration, err)
	}
	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logging.Error(logger, "provider fetch failed", err,
			logging.FieldProvider, p.next.Name(),
			"resource", resource,
			logging.FieldDurationMS, duration.Milliseconds(),
		)
		return
	}
	logging.Info(logger, "provider fetch complete",
		logging.FieldProvider, p.next.Name(),
		"resource", resource,
		logging.FieldCount, count,
		logging.FieldDurationMS, duration.Milliseconds(),
	)
}
