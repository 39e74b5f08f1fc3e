package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"nba-bot-service/internal/domain"
)

func intPtr(v int) *int { return &v }

func sampleTeam() domain.Team {
	return domain.Team{
		ID:           14,
		Abbreviation: "LAL",
		City:         "Los Angeles",
		Conference:   "West",
		Division:     "Pacific",
		FullName:     "Los Angeles Lakers",
		Name:         "Lakers",
	}
}

func samplePlayer() domain.Player {
	return domain.Player{
		ID:           237,
		FirstName:    "LeBron",
		LastName:     "James",
		Position:     "F",
		HeightFeet:   intPtr(6),
		HeightInches: intPtr(8),
		WeightPounds: intPtr(250),
		Team:         sampleTeam(),
	}
}

func TestTeamRoundTrip(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()
	want := sampleTeam()

	if err := s.UpsertTeam(ctx, want); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	got, err := s.Team(ctx, want.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestUpsertIsIdempotent(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()
	team := sampleTeam()

	if err := s.UpsertTeam(ctx, team); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := s.UpsertTeam(ctx, team); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if got := s.Counts()[domain.KindTeam]; got != 1 {
		t.Fatalf("expected 1 team record, got %d", got)
	}
}

func TestMissingRecordReturnsErrNotFound(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	if _, err := s.Team(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Player(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Game(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Statistic(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConcurrentFirstUseInitializesOnce(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			team := sampleTeam()
			team.ID = id
			errs <- s.UpsertTeam(ctx, team)
		}(int64(i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent upsert failed: %v", err)
		}
	}
	if got := s.InitCalls(); got != 1 {
		t.Fatalf("expected exactly 1 init, got %d", got)
	}
	if got := s.Counts()[domain.KindTeam]; got != n {
		t.Fatalf("expected %d teams, got %d", n, got)
	}
}

func TestTeamNameLookupsIgnoreCase(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()
	team := sampleTeam()
	if err := s.UpsertTeam(ctx, team); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := s.TeamByName(ctx, "lakers")
	if err != nil {
		t.Fatalf("TeamByName failed: %v", err)
	}
	if got.ID != team.ID {
		t.Fatalf("expected team %d, got %d", team.ID, got.ID)
	}

	got, err = s.TeamByFullName(ctx, "los angeles LAKERS")
	if err != nil {
		t.Fatalf("TeamByFullName failed: %v", err)
	}
	if got.ID != team.ID {
		t.Fatalf("expected team %d, got %d", team.ID, got.ID)
	}

	if _, err := s.TeamByName(ctx, "Sonics"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerByNameIgnoresCase(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()
	player := samplePlayer()
	if err := s.UpsertPlayer(ctx, player); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := s.PlayerByName(ctx, "lebron", "JAMES")
	if err != nil {
		t.Fatalf("PlayerByName failed: %v", err)
	}
	if got.ID != player.ID {
		t.Fatalf("expected player %d, got %d", player.ID, got.ID)
	}

	if _, err := s.PlayerByName(ctx, "Michael", "Jordan"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGameAndStatisticRoundTrip(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	game := domain.Game{
		ID:               48739,
		Date:             "2019-02-09T00:00:00.000Z",
		HomeTeam:         sampleTeam(),
		VisitorTeam:      domain.Team{ID: 2, Name: "Celtics", FullName: "Boston Celtics"},
		HomeTeamScore:    129,
		VisitorTeamScore: 128,
		Period:           4,
		Season:           2018,
		Status:           "Final",
	}
	if err := s.UpsertGame(ctx, game); err != nil {
		t.Fatalf("upsert game failed: %v", err)
	}
	gotGame, err := s.Game(ctx, game.ID)
	if err != nil {
		t.Fatalf("get game failed: %v", err)
	}
	if gotGame != game {
		t.Fatalf("game round trip mismatch: got %+v want %+v", gotGame, game)
	}

	stat := domain.Statistic{
		ID:       29,
		PlayerID: 237,
		GameID:   48739,
		Minutes:  "36:49",
		Points:   28,
		Rebounds: 12,
		Assists:  16,
	}
	if err := s.UpsertStatistic(ctx, stat); err != nil {
		t.Fatalf("upsert stat failed: %v", err)
	}
	gotStat, err := s.Statistic(ctx, stat.ID)
	if err != nil {
		t.Fatalf("get stat failed: %v", err)
	}
	if gotStat != stat {
		t.Fatalf("stat round trip mismatch: got %+v want %+v", gotStat, stat)
	}
}
