// Package store persists synced NBA entities in partitioned key/value
// storage. Each entity kind maps to its own partition and every record is
// keyed by the entity's numeric id rendered in decimal.
package store

import (
	"context"
	"errors"
	"strconv"

	"nba-bot-service/internal/domain"
)

// ErrNotFound reports that a requested record does not exist in the store.
// Callers must treat it as a distinct outcome from a storage failure.
var ErrNotFound = errors.New("store: record not found")

// Store is the persistence boundary for synced entities. Upserts are
// idempotent: writing the same record twice leaves one copy behind.
// Implementations initialize their backing storage lazily on first use and
// must do so exactly once even under concurrent access.
type Store interface {
	UpsertTeam(ctx context.Context, team domain.Team) error
	Team(ctx context.Context, id int64) (domain.Team, error)
	TeamByName(ctx context.Context, name string) (domain.Team, error)
	TeamByFullName(ctx context.Context, fullName string) (domain.Team, error)

	UpsertPlayer(ctx context.Context, player domain.Player) error
	Player(ctx context.Context, id int64) (domain.Player, error)
	PlayerByName(ctx context.Context, firstName, lastName string) (domain.Player, error)

	UpsertGame(ctx context.Context, game domain.Game) error
	Game(ctx context.Context, id int64) (domain.Game, error)

	UpsertStatistic(ctx context.Context, stat domain.Statistic) error
	Statistic(ctx context.Context, id int64) (domain.Statistic, error)
}

// rowKey renders an entity id as its partition row key.
func rowKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
