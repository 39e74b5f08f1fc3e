package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"nba-bot-service/internal/domain"
	"nba-bot-service/internal/metrics"
)

// RedisStore persists entities in Redis hashes, one hash per entity kind.
// Hash fields are decimal entity ids and values are JSON-encoded records, so
// upserts are HSET calls and therefore idempotent. The connection is verified
// lazily on first use; the first Ping happens exactly once regardless of how
// many goroutines race on a fresh store.
type RedisStore struct {
	client  redis.UniversalClient
	metrics *metrics.Recorder

	initOnce sync.Once
	initErr  error
}

// NewRedisStore wraps an existing Redis client. The recorder may be nil.
func NewRedisStore(client redis.UniversalClient, recorder *metrics.Recorder) *RedisStore {
	return &RedisStore{client: client, metrics: recorder}
}

func partitionKey(kind domain.Kind) string {
	return "nba:" + string(kind)
}

func (s *RedisStore) init(ctx context.Context) error {
	s.initOnce.Do(func() {
		if err := s.client.Ping(ctx).Err(); err != nil {
			s.initErr = fmt.Errorf("redis store init: %w", err)
		}
	})
	return s.initErr
}

func (s *RedisStore) upsert(ctx context.Context, kind domain.Kind, id int64, record any) error {
	if err := s.init(ctx); err != nil {
		s.metrics.RecordStoreOp("upsert", string(kind), err)
		return err
	}
	payload, err := json.Marshal(record)
	if err != nil {
		s.metrics.RecordStoreOp("upsert", string(kind), err)
		return fmt.Errorf("encode %s %d: %w", kind, id, err)
	}
	err = s.client.HSet(ctx, partitionKey(kind), rowKey(id), payload).Err()
	s.metrics.RecordStoreOp("upsert", string(kind), err)
	if err != nil {
		return fmt.Errorf("upsert %s %d: %w", kind, id, err)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, kind domain.Kind, id int64, out any) error {
	if err := s.init(ctx); err != nil {
		s.metrics.RecordStoreOp("get", string(kind), err)
		return err
	}
	payload, err := s.client.HGet(ctx, partitionKey(kind), rowKey(id)).Result()
	if err == redis.Nil {
		s.metrics.RecordStoreOp("get", string(kind), nil)
		return ErrNotFound
	}
	if err != nil {
		s.metrics.RecordStoreOp("get", string(kind), err)
		return fmt.Errorf("get %s %d: %w", kind, id, err)
	}
	s.metrics.RecordStoreOp("get", string(kind), nil)
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("decode %s %d: %w", kind, id, err)
	}
	return nil
}

// scan walks every record in a partition and stops when visit returns true.
// The league is small (30 teams, a few thousand players), so a full HGETALL
// per name lookup is acceptable; a secondary index is not worth the write
// complexity here.
func (s *RedisStore) scan(ctx context.Context, kind domain.Kind, visit func(payload string) (bool, error)) error {
	if err := s.init(ctx); err != nil {
		s.metrics.RecordStoreOp("scan", string(kind), err)
		return err
	}
	records, err := s.client.HGetAll(ctx, partitionKey(kind)).Result()
	s.metrics.RecordStoreOp("scan", string(kind), err)
	if err != nil {
		return fmt.Errorf("scan %s: %w", kind, err)
	}
	for _, payload := range records {
		done, err := visit(payload)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return ErrNotFound
}

// UpsertTeam writes or replaces a team record.
func (s *RedisStore) UpsertTeam(ctx context.Context, team domain.Team) error {
	return s.upsert(ctx, domain.KindTeam, team.ID, team)
}

// Team retrieves a team by id. Returns ErrNotFound when absent.
func (s *RedisStore) Team(ctx context.Context, id int64) (domain.Team, error) {
	var team domain.Team
	if err := s.get(ctx, domain.KindTeam, id, &team); err != nil {
		return domain.Team{}, err
	}
	return team, nil
}

// TeamByName scans for a team whose short name matches, ignoring case.
func (s *RedisStore) TeamByName(ctx context.Context, name string) (domain.Team, error) {
	return s.findTeam(ctx, func(team domain.Team) bool {
		return strings.EqualFold(team.Name, name)
	})
}

// TeamByFullName scans for a team whose full name matches, ignoring case.
func (s *RedisStore) TeamByFullName(ctx context.Context, fullName string) (domain.Team, error) {
	return s.findTeam(ctx, func(team domain.Team) bool {
		return strings.EqualFold(team.FullName, fullName)
	})
}

func (s *RedisStore) findTeam(ctx context.Context, match func(domain.Team) bool) (domain.Team, error) {
	var found domain.Team
	err := s.scan(ctx, domain.KindTeam, func(payload string) (bool, error) {
		var team domain.Team
		if err := json.Unmarshal([]byte(payload), &team); err != nil {
			return false, fmt.Errorf("decode %s: %w", domain.KindTeam, err)
		}
		if match(team) {
			found = team
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return domain.Team{}, err
	}
	return found, nil
}

// UpsertPlayer writes or replaces a player record.
func (s *RedisStore) UpsertPlayer(ctx context.Context, player domain.Player) error {
	return s.upsert(ctx, domain.KindPlayer, player.ID, player)
}

// Player retrieves a player by id. Returns ErrNotFound when absent.
func (s *RedisStore) Player(ctx context.Context, id int64) (domain.Player, error) {
	var player domain.Player
	if err := s.get(ctx, domain.KindPlayer, id, &player); err != nil {
		return domain.Player{}, err
	}
	return player, nil
}

// PlayerByName scans for a player whose first and last name both match,
// ignoring case.
func (s *RedisStore) PlayerByName(ctx context.Context, firstName, lastName string) (domain.Player, error) {
	var found domain.Player
	err := s.scan(ctx, domain.KindPlayer, func(payload string) (bool, error) {
		var player domain.Player
		if err := json.Unmarshal([]byte(payload), &player); err != nil {
			return false, fmt.Errorf("decode %s: %w", domain.KindPlayer, err)
		}
		if strings.EqualFold(player.FirstName, firstName) && strings.EqualFold(player.LastName, lastName) {
			found = player
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return domain.Player{}, err
	}
	return found, nil
}

// UpsertGame writes or replaces a game record.
func (s *RedisStore) UpsertGame(ctx context.Context, game domain.Game) error {
	return s.upsert(ctx, domain.KindGame, game.ID, game)
}

// Game retrieves a game by id. Returns ErrNotFound when absent.
func (s *RedisStore) Game(ctx context.Context, id int64) (domain.Game, error) {
	var game domain.Game
	if err := s.get(ctx, domain.KindGame, id, &game); err != nil {
		return domain.Game{}, err
	}
	return game, nil
}

// UpsertStatistic writes or replaces a statistic record.
func (s *RedisStore) UpsertStatistic(ctx context.Context, stat domain.Statistic) error {
	return s.upsert(ctx, domain.KindStatistic, stat.ID, stat)
}

// Statistic retrieves a statistic by id. Returns ErrNotFound when absent.
func (s *RedisStore) Statistic(ctx context.Context, id int64) (domain.Statistic, error) {
	var stat domain.Statistic
	if err := s.get(ctx, domain.KindStatistic, id, &stat); err != nil {
		return domain.Statistic{}, err
	}
	return stat, nil
}
