package store

import (
	"context"
	"strings"
	"sync"

	"nba-bot-service/internal/domain"
	"nba-bot-service/internal/metrics"
)

// MemoryStore keeps synced entities in per-kind maps. It is the default
// backend when no Redis address is configured and the backend every test
// exercises. Partitions are created lazily on first use, exactly once even
// when many goroutines race on an uninitialized store.
type MemoryStore struct {
	initOnce sync.Once
	mu       sync.RWMutex
	metrics  *metrics.Recorder

	teams      map[string]domain.Team
	players    map[string]domain.Player
	games      map[string]domain.Game
	statistics map[string]domain.Statistic

	// initCalls counts partition initializations so tests can assert the
	// exactly-once property.
	initCalls int
}

// NewMemoryStore returns an uninitialized in-memory store. The recorder may
// be nil.
func NewMemoryStore(recorder *metrics.Recorder) *MemoryStore {
	return &MemoryStore{metrics: recorder}
}

func (s *MemoryStore) init() {
	s.initOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.teams = make(map[string]domain.Team)
		s.players = make(map[string]domain.Player)
		s.games = make(map[string]domain.Game)
		s.statistics = make(map[string]domain.Statistic)
		s.initCalls++
	})
}

// InitCalls reports how many times the backing partitions were created.
func (s *MemoryStore) InitCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initCalls
}

// UpsertTeam writes or replaces a team record.
func (s *MemoryStore) UpsertTeam(ctx context.Context, team domain.Team) error {
	s.init()
	s.mu.Lock()
	s.teams[rowKey(team.ID)] = team
	s.mu.Unlock()
	s.metrics.RecordStoreOp("upsert", string(domain.KindTeam), nil)
	return nil
}

// Team retrieves a team by id. Returns ErrNotFound when absent.
func (s *MemoryStore) Team(ctx context.Context, id int64) (domain.Team, error) {
	s.init()
	s.mu.RLock()
	team, ok := s.teams[rowKey(id)]
	s.mu.RUnlock()
	if !ok {
		s.metrics.RecordStoreOp("get", string(domain.KindTeam), nil)
		return domain.Team{}, ErrNotFound
	}
	s.metrics.RecordStoreOp("get", string(domain.KindTeam), nil)
	return team, nil
}

// TeamByName scans for a team whose short name matches, ignoring case.
func (s *MemoryStore) TeamByName(ctx context.Context, name string) (domain.Team, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, team := range s.teams {
		if strings.EqualFold(team.Name, name) {
			return team, nil
		}
	}
	return domain.Team{}, ErrNotFound
}

// TeamByFullName scans for a team whose full name matches, ignoring case.
func (s *MemoryStore) TeamByFullName(ctx context.Context, fullName string) (domain.Team, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, team := range s.teams {
		if strings.EqualFold(team.FullName, fullName) {
			return team, nil
		}
	}
	return domain.Team{}, ErrNotFound
}

// UpsertPlayer writes or replaces a player record.
func (s *MemoryStore) UpsertPlayer(ctx context.Context, player domain.Player) error {
	s.init()
	s.mu.Lock()
	s.players[rowKey(player.ID)] = player
	s.mu.Unlock()
	s.metrics.RecordStoreOp("upsert", string(domain.KindPlayer), nil)
	return nil
}

// Player retrieves a player by id. Returns ErrNotFound when absent.
func (s *MemoryStore) Player(ctx context.Context, id int64) (domain.Player, error) {
	s.init()
	s.mu.RLock()
	player, ok := s.players[rowKey(id)]
	s.mu.RUnlock()
	s.metrics.RecordStoreOp("get", string(domain.KindPlayer), nil)
	if !ok {
		return domain.Player{}, ErrNotFound
	}
	return player, nil
}

// PlayerByName scans for a player whose first and last name both match,
// ignoring case.
func (s *MemoryStore) PlayerByName(ctx context.Context, firstName, lastName string) (domain.Player, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, player := range s.players {
		if strings.EqualFold(player.FirstName, firstName) && strings.EqualFold(player.LastName, lastName) {
			return player, nil
		}
	}
	return domain.Player{}, ErrNotFound
}

// UpsertGame writes or replaces a game record.
func (s *MemoryStore) UpsertGame(ctx context.Context, game domain.Game) error {
	s.init()
	s.mu.Lock()
	s.games[rowKey(game.ID)] = game
	s.mu.Unlock()
	s.metrics.RecordStoreOp("upsert", string(domain.KindGame), nil)
	return nil
}

// Game retrieves a game by id. Returns ErrNotFound when absent.
func (s *MemoryStore) Game(ctx context.Context, id int64) (domain.Game, error) {
	s.init()
	s.mu.RLock()
	game, ok := s.games[rowKey(id)]
	s.mu.RUnlock()
	s.metrics.RecordStoreOp("get", string(domain.KindGame), nil)
	if !ok {
		return domain.Game{}, ErrNotFound
	}
	return game, nil
}

// UpsertStatistic writes or replaces a statistic record.
func (s *MemoryStore) UpsertStatistic(ctx context.Context, stat domain.Statistic) error {
	s.init()
	s.mu.Lock()
	s.statistics[rowKey(stat.ID)] = stat
	s.mu.Unlock()
	s.metrics.RecordStoreOp("upsert", string(domain.KindStatistic), nil)
	return nil
}

// Statistic retrieves a statistic by id. Returns ErrNotFound when absent.
func (s *MemoryStore) Statistic(ctx context.Context, id int64) (domain.Statistic, error) {
	s.init()
	s.mu.RLock()
	stat, ok := s.statistics[rowKey(id)]
	s.mu.RUnlock()
	s.metrics.RecordStoreOp("get", string(domain.KindStatistic), nil)
	if !ok {
		return domain.Statistic{}, ErrNotFound
	}
	return stat, nil
}

// Counts reports how many records each partition holds.
func (s *MemoryStore) Counts() map[domain.Kind]int {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[domain.Kind]int{
		domain.KindTeam:      len(s.teams),
		domain.KindPlayer:    len(s.players),
		domain.KindGame:      len(s.games),
		domain.KindStatistic: len(s.statistics),
	}
}
