// Package cards builds transport-neutral rich replies. The chat transport
// decides how to render a Card (Discord embed, plain text fallback, etc.).
package cards

import (
	"fmt"
	"strings"

	"nba-bot-service/internal/domain"
)

// Fact is one labeled value on a card.
type Fact struct {
	Label string
	Value string
}

// Action is a suggested follow-up the user can trigger from a card.
type Action struct {
	Title string
	Value string
}

// Card is a renderable rich reply.
type Card struct {
	Title    string
	Subtitle string
	Text     string
	Images   []string
	Facts    []Fact
	Actions  []Action
}

// Welcome builds the card shown when a user joins a conversation.
func Welcome() Card {
	return Card{
		Title: "Hey there, I'm the NBA bot!",
		Text:  "I can sync and look up NBA teams, players, games and stats. Say \"take a tour\" to see what I can do.",
		Actions: []Action{
			{Title: "Take a tour", Value: "take a tour"},
		},
	}
}

// TourCarousel builds the set of cards that walk a user through the
// supported commands. Images are served from the app's own content path.
func TourCarousel(appBaseURI string) []Card {
	base := strings.TrimRight(appBaseURI, "/")
	return []Card{
		{
			Title:  "Find players",
			Text:   "Ask me \"find player information <first> <last>\" and I will pull up everything I know about a player.",
			Images: []string{base + "/content/FindPlayers.png"},
		},
		{
			Title:  "Find teams",
			Text:   "Ask me \"find team information <team>\" for any franchise, by short name or full name.",
			Images: []string{base + "/content/NbaTeams.png"},
		},
		{
			Title:  "Find games",
			Text:   "Say \"sync all games\" and I can pull NBA games from 1979 to the present.",
			Images: []string{base + "/content/FindGames.png"},
		},
	}
}

// TeamCard builds the response card for one team.
func TeamCard(team domain.Team) Card {
	return Card{
		Title:    team.FullName,
		Subtitle: fmt.Sprintf("%s Conference / %s Division", team.Conference, team.Division),
		Facts: []Fact{
			{Label: "Abbreviation", Value: team.Abbreviation},
			{Label: "City", Value: team.City},
			{Label: "Short name", Value: team.Name},
		},
	}
}

// PlayerCard builds the response card for one player.
func PlayerCard(player domain.Player) Card {
	card := Card{
		Title:    player.DisplayName(),
		Subtitle: player.Team.FullName,
	}
	if player.Position != "" {
		card.Facts = append(card.Facts, Fact{Label: "Position", Value: player.Position})
	}
	if player.HeightFeet != nil && player.HeightInches != nil {
		card.Facts = append(card.Facts, Fact{
			Label: "Height",
			Value: fmt.Sprintf("%d'%d\"", *player.HeightFeet, *player.HeightInches),
		})
	}
	if player.WeightPounds != nil {
		card.Facts = append(card.Facts, Fact{
			Label: "Weight",
			Value: fmt.Sprintf("%d lbs", *player.WeightPounds),
		})
	}
	return card
}
