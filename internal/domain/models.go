package domain

// Kind labels the entity category. The store uses it as the partition
// component of every key.
type Kind string

const (
	KindTeam      Kind = "NbaTeam"
	KindPlayer    Kind = "NbaPlayer"
	KindGame      Kind = "NbaGame"
	KindStatistic Kind = "NbaStatistic"
)

// Team is the normalized NBA franchise record. Immutable once fetched;
// syncs replace it wholesale.
type Team struct {
	ID           int64  `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"fullName"`
	Name         string `json:"name"`
}

// Player carries an embedded Team snapshot, not a live reference; it may go
// stale if the team record changes after the player was last synced.
type Player struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Position     string `json:"position"`
	HeightFeet   *int   `json:"heightFeet,omitempty"`
	HeightInches *int   `json:"heightInches,omitempty"`
	WeightPounds *int   `json:"weightPounds,omitempty"`
	Team         Team   `json:"team"`
}

// Game embeds home/visitor Team snapshots with the same staleness caveat as
// Player.Team.
type Game struct {
	ID               int64  `json:"id"`
	Date             string `json:"date"`
	HomeTeam         Team   `json:"homeTeam"`
	VisitorTeam      Team   `json:"visitorTeam"`
	HomeTeamScore    int    `json:"homeTeamScore"`
	VisitorTeamScore int    `json:"visitorTeamScore"`
	Period           int    `json:"period"`
	Season           int    `json:"season"`
	Postseason       bool   `json:"postseason"`
	Status           string `json:"status"`
	Time             string `json:"time"`
}

// Statistic is a per-player per-game counting-stat record. Upstream does not
// document the full field set; the id is what keys it in the store.
type Statistic struct {
	ID       int64   `json:"id"`
	PlayerID int64   `json:"playerId"`
	GameID   int64   `json:"gameId"`
	Minutes  string  `json:"minutes"`
	Points   float64 `json:"points"`
	Rebounds float64 `json:"rebounds"`
	Assists  float64 `json:"assists"`
	Steals   float64 `json:"steals"`
	Blocks   float64 `json:"blocks"`
}

// SeasonAverage is a player's per-game averages for one season.
type SeasonAverage struct {
	PlayerID                      int64   `json:"playerId"`
	Season                        int     `json:"season"`
	GamesPlayed                   int64   `json:"gamesPlayed"`
	Minutes                       string  `json:"minutes"`
	FieldGoalsMade                float64 `json:"fieldGoalsMade"`
	FieldGoalsAttempted           float64 `json:"fieldGoalsAttempted"`
	ThreePointFieldGoalsMade      float64 `json:"threePointFieldGoalsMade"`
	ThreePointFieldGoalsAttempted float64 `json:"threePointFieldGoalsAttempted"`
	FreeThrowsMade                float64 `json:"freeThrowsMade"`
	FreeThrowsAttempted           float64 `json:"freeThrowsAttempted"`
	OffensiveRebounds             float64 `json:"offensiveRebounds"`
	DefensiveRebounds             float64 `json:"defensiveRebounds"`
	Rebounds                      float64 `json:"rebounds"`
	Assists                       float64 `json:"assists"`
	Steals                        float64 `json:"steals"`
	Blocks                        float64 `json:"blocks"`
	Turnovers                     float64 `json:"turnovers"`
	PersonalFouls                 float64 `json:"personalFouls"`
	Points                        float64 `json:"points"`
	FieldGoalPct                  float64 `json:"fieldGoalPct"`
	ThreePointFieldGoalPct        float64 `json:"threePointFieldGoalPct"`
	FreeThrowPct                  float64 `json:"freeThrowPct"`
}

// DisplayName renders the player's full name for lookups and replies.
func (p Player) DisplayName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
