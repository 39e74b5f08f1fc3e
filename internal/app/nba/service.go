// Package nba coordinates fetching league data from the upstream provider
// and persisting it in the entity store. It is the layer the bot dispatcher
// and the HTTP handlers call into.
package nba

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"nba-bot-service/internal/domain"
	"nba-bot-service/internal/logging"
	"nba-bot-service/internal/providers"
	"nba-bot-service/internal/store"
)

// ErrNotFound reports that a lookup found no matching record, in the store
// or upstream.
var ErrNotFound = errors.New("nba: not found")

// Service syncs provider data into the store and answers lookups. Every sync
// is a single fetch attempt: a provider failure surfaces as an error with
// zero records written, never a retry.
type Service struct {
	provider providers.SportsProvider
	store    store.Store
	logger   *slog.Logger
}

// NewService wires a provider and a store together.
func NewService(provider providers.SportsProvider, st store.Store, logger *slog.Logger) *Service {
	return &Service{provider: provider, store: st, logger: logger}
}

// SyncAllTeams fetches the current teams and upserts each into the store.
// Returns the number of records written.
func (s *Service) SyncAllTeams(ctx context.Context) (int, error) {
	teams, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return 0, fmt.Errorf("sync teams: %w", err)
	}
	written := 0
	for _, team := range teams {
		if err := s.store.UpsertTeam(ctx, team); err != nil {
			return written, fmt.Errorf("sync teams: store team %d: %w", team.ID, err)
		}
		written++
	}
	s.logSynced(ctx, domain.KindTeam, written)
	return written, nil
}

// SyncAllGames fetches the first page of games and upserts each into the
// store. Returns the number of records written.
func (s *Service) SyncAllGames(ctx context.Context) (int, error) {
	games, err := s.provider.FetchGames(ctx)
	if err != nil {
		return 0, fmt.Errorf("sync games: %w", err)
	}
	written := 0
	for _, game := range games {
		if err := s.store.UpsertGame(ctx, game); err != nil {
			return written, fmt.Errorf("sync games: store game %d: %w", game.ID, err)
		}
		written++
	}
	s.logSynced(ctx, domain.KindGame, written)
	return written, nil
}

// SyncAllPlayers fetches the first page of players and upserts each into the
// store. Returns the number of records written.
func (s *Service) SyncAllPlayers(ctx context.Context) (int, error) {
	players, err := s.provider.FetchPlayers(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("sync players: %w", err)
	}
	written := 0
	for _, player := range players {
		if err := s.store.UpsertPlayer(ctx, player); err != nil {
			return written, fmt.Errorf("sync players: store player %d: %w", player.ID, err)
		}
		written++
	}
	s.logSynced(ctx, domain.KindPlayer, written)
	return written, nil
}

// SyncAllStatistics fetches the first page of game statistics and upserts
// each into the store. Returns the number of records written.
func (s *Service) SyncAllStatistics(ctx context.Context) (int, error) {
	stats, err := s.provider.FetchStatistics(ctx)
	if err != nil {
		return 0, fmt.Errorf("sync stats: %w", err)
	}
	written := 0
	for _, stat := range stats {
		if err := s.store.UpsertStatistic(ctx, stat); err != nil {
			return written, fmt.Errorf("sync stats: store stat %d: %w", stat.ID, err)
		}
		written++
	}
	s.logSynced(ctx, domain.KindStatistic, written)
	return written, nil
}

// TeamByName looks up a team by its short name, consulting the store first
// and refreshing from the provider on a miss.
func (s *Service) TeamByName(ctx context.Context, name string) (domain.Team, error) {
	team, err := s.store.TeamByName(ctx, name)
	if err == nil {
		return team, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Team{}, fmt.Errorf("lookup team %q: %w", name, err)
	}
	if _, err := s.SyncAllTeams(ctx); err != nil {
		return domain.Team{}, err
	}
	team, err = s.store.TeamByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Team{}, ErrNotFound
	}
	if err != nil {
		return domain.Team{}, fmt.Errorf("lookup team %q: %w", name, err)
	}
	return team, nil
}

// TeamByFullName looks up a team by its full name, consulting the store
// first and refreshing from the provider on a miss.
func (s *Service) TeamByFullName(ctx context.Context, fullName string) (domain.Team, error) {
	team, err := s.store.TeamByFullName(ctx, fullName)
	if err == nil {
		return team, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Team{}, fmt.Errorf("lookup team %q: %w", fullName, err)
	}
	if _, err := s.SyncAllTeams(ctx); err != nil {
		return domain.Team{}, err
	}
	team, err = s.store.TeamByFullName(ctx, fullName)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Team{}, ErrNotFound
	}
	if err != nil {
		return domain.Team{}, fmt.Errorf("lookup team %q: %w", fullName, err)
	}
	return team, nil
}

// PlayerByName looks up a player by first and last name. A store miss
// triggers a targeted provider search on the last name; matches found that
// way are written back to the store before returning.
func (s *Service) PlayerByName(ctx context.Context, firstName, lastName string) (domain.Player, error) {
	player, err := s.store.PlayerByName(ctx, firstName, lastName)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Player{}, fmt.Errorf("lookup player %s %s: %w", firstName, lastName, err)
	}

	candidates, err := s.provider.FetchPlayers(ctx, lastName)
	if err != nil {
		return domain.Player{}, fmt.Errorf("lookup player %s %s: %w", firstName, lastName, err)
	}
	var found *domain.Player
	for i := range candidates {
		if err := s.store.UpsertPlayer(ctx, candidates[i]); err != nil {
			return domain.Player{}, fmt.Errorf("lookup player %s %s: store player %d: %w", firstName, lastName, candidates[i].ID, err)
		}
		if found == nil && matchesName(candidates[i], firstName, lastName) {
			found = &candidates[i]
		}
	}
	if found == nil {
		return domain.Player{}, ErrNotFound
	}
	return *found, nil
}

// SeasonAverages returns a player's per-game averages for one season,
// straight from the provider.
func (s *Service) SeasonAverages(ctx context.Context, playerID int64, season int) (domain.SeasonAverage, error) {
	averages, err := s.provider.FetchSeasonAverages(ctx, playerID, season)
	if err != nil {
		return domain.SeasonAverage{}, fmt.Errorf("season averages for player %d: %w", playerID, err)
	}
	if len(averages) == 0 {
		return domain.SeasonAverage{}, ErrNotFound
	}
	return averages[0], nil
}

func matchesName(p domain.Player, firstName, lastName string) bool {
	return strings.EqualFold(p.FirstName, firstName) && strings.EqualFold(p.LastName, lastName)
}

func (s *Service) logSynced(ctx context.Context, kind domain.Kind, count int) {
	logging.Info(logging.FromContext(ctx, s.logger), "sync complete",
		logging.FieldKind, string(kind),
		logging.FieldCount, count,
	)
}
