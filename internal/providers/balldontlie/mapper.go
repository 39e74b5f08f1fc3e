package balldontlie

import (
	"strings"

	"nba-bot-service/internal/domain"
)

func mapTeam(t teamResponse) domain.Team {
	return domain.Team{
		ID:           t.ID,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Conference:   t.Conference,
		Division:     t.Division,
		FullName:     t.FullName,
		Name:         t.Name,
	}
}

func mapPlayer(p playerResponse) domain.Player {
	return domain.Player{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     p.Position,
		HeightFeet:   p.HeightFeet,
		HeightInches: p.HeightInches,
		WeightPounds: p.WeightPounds,
		Team:         mapTeam(p.Team),
	}
}

func mapGame(g gameResponse) domain.Game {
	return domain.Game{
		ID:               g.ID,
		Date:             g.Date,
		HomeTeam:         mapTeam(g.HomeTeam),
		VisitorTeam:      mapTeam(g.VisitorTeam),
		HomeTeamScore:    g.HomeTeamScore,
		VisitorTeamScore: g.VisitorTeamScore,
		Period:           g.Period,
		Season:           g.Season,
		Postseason:       g.Postseason,
		Status:           g.Status,
		Time:             strings.TrimSpace(g.Time),
	}
}

func mapStatistic(s statResponse) domain.Statistic {
	return domain.Statistic{
		ID:       s.ID,
		PlayerID: s.Player.ID,
		GameID:   s.Game.ID,
		Minutes:  s.Min,
		Points:   s.Pts,
		Rebounds: s.Reb,
		Assists:  s.Ast,
		Steals:   s.Stl,
		Blocks:   s.Blk,
	}
}

func mapSeasonAverage(a seasonAverageResponse) domain.SeasonAverage {
	return domain.SeasonAverage{
		PlayerID:                      a.PlayerID,
		Season:                        a.Season,
		GamesPlayed:                   a.GamesPlayed,
		Minutes:                       a.Min,
		FieldGoalsMade:                a.Fgm,
		FieldGoalsAttempted:           a.Fga,
		ThreePointFieldGoalsMade:      a.Fg3m,
		ThreePointFieldGoalsAttempted: a.Fg3a,
		FreeThrowsMade:                a.Ftm,
		FreeThrowsAttempted:           a.Fta,
		OffensiveRebounds:             a.Oreb,
		DefensiveRebounds:             a.Dreb,
		Rebounds:                      a.Reb,
		Assists:                       a.Ast,
		Steals:                        a.Stl,
		Blocks:                        a.Blk,
		Turnovers:                     a.Turnover,
		PersonalFouls:                 a.Pf,
		Points:                        a.Pts,
		FieldGoalPct:                  a.FgPct,
		ThreePointFieldGoalPct:        a.Fg3Pct,
		FreeThrowPct:                  a.FtPct,
	}
}
