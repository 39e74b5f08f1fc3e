package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"nba-bot-service/internal/app/nba"
	"nba-bot-service/internal/cards"
	"nba-bot-service/internal/domain"
	"nba-bot-service/internal/logging"
	"nba-bot-service/internal/metrics"
)

// Literal commands matched exactly against the trimmed, lowercased message.
const (
	CmdTakeATour      = "take a tour"
	CmdSyncAllTeams   = "sync all teams"
	CmdSyncAllGames   = "sync all games"
	CmdSyncAllPlayers = "sync all players"
	CmdSyncAllStats   = "sync all stats"
)

// Substring patterns tried when no literal command matches.
const (
	patternFindPlayer = "find player information"
	patternFindTeam   = "find team information"
)

// Fixed reply texts.
const (
	replyTeamsSynced    = "All the way from downtown - I am able to sync the teams for you!"
	replyTeamsFailed    = "Not able to get any data for the teams. Will have to try again later."
	replyGamesSynced    = "I am able to sync the games in the NBA from 1979 to present - that's a lot of data!"
	replyGamesFailed    = "Not able to get any data with regards to the games - gotta try again later!"
	replyPlayersSynced  = "Got all the players! Want to build a roster, or you want some information?"
	replyPlayersFailed  = "Not able to get any of the players data!"
	replyStatsSynced    = "I am able to get the stats for you - that's a lot of numbers to crunch on it!!"
	replyStatsFailed    = "Not able to get any of the statistical data!"
	replyTeamNotFound   = "Oops! I bricked! I couldn't get your team for you!"
	replyPlayerNotFound = "Rats! Could not find anything on "
	replyNotSure        = "Not sure of what I can do here, instead take a tour to find out more"
)

// SyncQueryService is what the dispatcher needs from the NBA service layer.
type SyncQueryService interface {
	SyncAllTeams(ctx context.Context) (int, error)
	SyncAllGames(ctx context.Context) (int, error)
	SyncAllPlayers(ctx context.Context) (int, error)
	SyncAllStatistics(ctx context.Context) (int, error)
	TeamByName(ctx context.Context, name string) (domain.Team, error)
	TeamByFullName(ctx context.Context, fullName string) (domain.Team, error)
	PlayerByName(ctx context.Context, firstName, lastName string) (domain.Player, error)
}

// Dispatcher resolves each inbound activity to a terminal reply. It holds no
// multi-turn state.
type Dispatcher struct {
	service    SyncQueryService
	appBaseURI string
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// NewDispatcher builds a dispatcher. appBaseURI is the public base URI the
// tour card images are served from.
func NewDispatcher(service SyncQueryService, appBaseURI string, logger *slog.Logger, recorder *metrics.Recorder) *Dispatcher {
	return &Dispatcher{service: service, appBaseURI: appBaseURI, logger: logger, metrics: recorder}
}

// Dispatch classifies the activity and runs the matching command flow.
func (d *Dispatcher) Dispatch(ctx context.Context, activity Activity) Reply {
	switch activity.Type {
	case ActivityMessage:
		return d.onMessage(ctx, activity)
	case ActivityCardAction:
		return d.onCardAction(ctx, activity)
	case ActivityConversationUpdate:
		return d.onConversationUpdate(ctx, activity)
	case ActivityReaction:
		// Reactions carry no command; acknowledge silently.
		return Reply{Kind: ReplyNone}
	default:
		return Reply{Kind: ReplyNone}
	}
}

func (d *Dispatcher) onMessage(ctx context.Context, activity Activity) Reply {
	logger := logging.FromContext(ctx, d.logger)
	text := strings.ToLower(strings.TrimSpace(activity.Text))

	switch text {
	case CmdTakeATour:
		d.count(CmdTakeATour)
		logging.Info(logger, "sending the user tour carousel", logging.FieldCommand, CmdTakeATour)
		return carouselReply(cards.TourCarousel(d.appBaseURI))

	case CmdSyncAllTeams:
		d.count(CmdSyncAllTeams)
		count, err := d.service.SyncAllTeams(ctx)
		if err != nil {
			logging.Error(logger, "teams sync failed", err, logging.FieldCommand, CmdSyncAllTeams)
			return textReply(replyTeamsFailed)
		}
		logging.Info(logger, "teams synced", logging.FieldCommand, CmdSyncAllTeams, logging.FieldCount, count)
		return textReply(replyTeamsSynced)

	case CmdSyncAllGames:
		d.count(CmdSyncAllGames)
		count, err := d.service.SyncAllGames(ctx)
		if err != nil {
			logging.Error(logger, "games sync failed", err, logging.FieldCommand, CmdSyncAllGames)
			return textReply(replyGamesFailed)
		}
		logging.Info(logger, "games synced", logging.FieldCommand, CmdSyncAllGames, logging.FieldCount, count)
		return textReply(replyGamesSynced)

	case CmdSyncAllPlayers:
		d.count(CmdSyncAllPlayers)
		count, err := d.service.SyncAllPlayers(ctx)
		if err != nil {
			logging.Error(logger, "players sync failed", err, logging.FieldCommand, CmdSyncAllPlayers)
			return textReply(replyPlayersFailed)
		}
		logging.Info(logger, "players synced", logging.FieldCommand, CmdSyncAllPlayers, logging.FieldCount, count)
		return textReply(replyPlayersSynced)

	case CmdSyncAllStats:
		d.count(CmdSyncAllStats)
		count, err := d.service.SyncAllStatistics(ctx)
		if err != nil {
			logging.Error(logger, "stats sync failed", err, logging.FieldCommand, CmdSyncAllStats)
			return textReply(replyStatsFailed)
		}
		logging.Info(logger, "stats synced", logging.FieldCommand, CmdSyncAllStats, logging.FieldCount, count)
		return textReply(replyStatsSynced)
	}

	return d.onFreeText(ctx, text)
}

// onFreeText handles text that matched no literal command, trying the lookup
// patterns before giving up with a generic reply.
func (d *Dispatcher) onFreeText(ctx context.Context, text string) Reply {
	if strings.Contains(text, patternFindPlayer) {
		return d.findPlayer(ctx, text)
	}
	if strings.Contains(text, patternFindTeam) {
		return d.findTeam(ctx, text)
	}
	d.count("unrecognized")
	return textReply(replyNotSure)
}

func (d *Dispatcher) findPlayer(ctx context.Context, text string) Reply {
	d.count(patternFindPlayer)
	logger := logging.FromContext(ctx, d.logger)

	words := strings.Fields(text)
	if len(words) < commandPrefixWords+2 {
		logging.Warn(logger, "player lookup missing name tokens", logging.FieldCommand, patternFindPlayer)
		return textReply(replyNotSure)
	}
	firstName := words[commandPrefixWords]
	lastName := words[commandPrefixWords+1]

	player, err := d.service.PlayerByName(ctx, firstName, lastName)
	if err != nil {
		if errors.Is(err, nba.ErrNotFound) {
			logging.Info(logger, "player not found", logging.FieldCommand, patternFindPlayer)
		} else {
			logging.Error(logger, "player lookup failed", err, logging.FieldCommand, patternFindPlayer)
		}
		return textReply(replyPlayerNotFound + firstName + " " + lastName)
	}
	return cardReply(cards.PlayerCard(player))
}

func (d *Dispatcher) findTeam(ctx context.Context, text string) Reply {
	d.count(patternFindTeam)
	logger := logging.FromContext(ctx, d.logger)

	tokens := ExtractTeamNameTokens(strings.Fields(text))
	if len(tokens) == 0 {
		logging.Warn(logger, "team lookup missing name tokens", logging.FieldCommand, patternFindTeam)
		return textReply(replyNotSure)
	}

	var (
		team domain.Team
		err  error
	)
	if len(tokens) == 1 {
		team, err = d.service.TeamByName(ctx, tokens[0])
	} else {
		team, err = d.service.TeamByFullName(ctx, JoinTokens(tokens))
	}
	if err != nil {
		if errors.Is(err, nba.ErrNotFound) {
			logging.Info(logger, "team not found", logging.FieldCommand, patternFindTeam)
		} else {
			logging.Error(logger, "team lookup failed", err, logging.FieldCommand, patternFindTeam)
		}
		return textReply(replyTeamNotFound)
	}
	return cardReply(cards.TeamCard(team))
}

// onCardAction handles structured submits from card buttons. Only the tour
// action is supported.
func (d *Dispatcher) onCardAction(ctx context.Context, activity Activity) Reply {
	logger := logging.FromContext(ctx, d.logger)
	action := strings.ToLower(strings.TrimSpace(activity.Text))
	if action == CmdTakeATour {
		d.count(CmdTakeATour)
		logging.Info(logger, "sending the user tour carousel", logging.FieldCommand, CmdTakeATour)
		return carouselReply(cards.TourCarousel(d.appBaseURI))
	}
	d.count("unrecognized")
	logging.Info(logger, "unrecognized card action")
	return textReply(replyNotSure)
}

// onConversationUpdate welcomes newly added members. The bot does not
// welcome itself.
func (d *Dispatcher) onConversationUpdate(ctx context.Context, activity Activity) Reply {
	for _, member := range activity.MembersAdded {
		if member != activity.RecipientID {
			logging.Info(logging.FromContext(ctx, d.logger), "sending the welcome card")
			return cardReply(cards.Welcome())
		}
	}
	return Reply{Kind: ReplyNone}
}

func (d *Dispatcher) count(command string) {
	d.metrics.RecordCommand(command)
}
