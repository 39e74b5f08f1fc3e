// Package discord adapts the Discord gateway to the bot dispatcher. Guild
// messages addressed to the bot's prefix become activities; replies render
// as plain messages or embeds.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"nba-bot-service/internal/bot"
	"nba-bot-service/internal/cards"
	"nba-bot-service/internal/logging"
)

// turnDispatcher resolves one inbound activity to a reply.
type turnDispatcher interface {
	Dispatch(ctx context.Context, activity bot.Activity) bot.Reply
}

// Adapter bridges a Discord session and the dispatcher.
type Adapter struct {
	session     *discordgo.Session
	dispatcher  turnDispatcher
	prefix      string
	logger      *slog.Logger
	turnTimeout time.Duration
}

// New creates a Discord session and registers the message handler. The
// session is not opened until Start.
func New(token, prefix string, dispatcher turnDispatcher, logger *slog.Logger, turnTimeout time.Duration) (*Adapter, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages

	if turnTimeout <= 0 {
		turnTimeout = 15 * time.Second
	}
	a := &Adapter{
		session:     session,
		dispatcher:  dispatcher,
		prefix:      prefix,
		logger:      logger,
		turnTimeout: turnTimeout,
	}
	session.AddHandler(a.messageCreate)
	return a, nil
}

// Start opens the gateway connection.
func (a *Adapter) Start() error {
	if err := a.session.Open(); err != nil {
		return fmt.Errorf("open discord connection: %w", err)
	}
	logging.Info(a.logger, "discord transport connected")
	return nil
}

// Stop closes the gateway connection.
func (a *Adapter) Stop() error {
	return a.session.Close()
}

func (a *Adapter) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	text, ok := stripPrefix(m.Content, a.prefix)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.turnTimeout)
	defer cancel()

	reply := a.dispatcher.Dispatch(ctx, bot.Activity{
		Type:           bot.ActivityMessage,
		Text:           text,
		FromID:         m.Author.ID,
		ConversationID: m.ChannelID,
	})
	a.send(m.ChannelID, reply)
}

// stripPrefix returns the command after the bot prefix, or false when the
// message is not addressed to the bot. An empty prefix means every message
// is a command.
func stripPrefix(content, prefix string) (string, bool) {
	if prefix == "" {
		return strings.TrimSpace(content), true
	}
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(strings.ToLower(trimmed), strings.ToLower(prefix)) {
		return "", false
	}
	return strings.TrimSpace(trimmed[len(prefix):]), true
}

func (a *Adapter) send(channelID string, reply bot.Reply) {
	switch reply.Kind {
	case bot.ReplyText:
		if _, err := a.session.ChannelMessageSend(channelID, reply.Text); err != nil {
			logging.Error(a.logger, "failed to send message", err)
		}
	case bot.ReplyCard, bot.ReplyCarousel:
		for _, card := range reply.Cards {
			if _, err := a.session.ChannelMessageSendEmbed(channelID, renderEmbed(card)); err != nil {
				logging.Error(a.logger, "failed to send embed", err)
			}
		}
	}
}

// renderEmbed converts a transport-neutral card into a Discord embed.
func renderEmbed(card cards.Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       card.Title,
		Description: card.Text,
	}
	if card.Subtitle != "" {
		if embed.Description == "" {
			embed.Description = card.Subtitle
		} else {
			embed.Description = card.Subtitle + "\n\n" + embed.Description
		}
	}
	if len(card.Images) > 0 {
		embed.Image = &discordgo.MessageEmbedImage{URL: card.Images[0]}
	}
	for _, fact := range card.Facts {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fact.Label,
			Value:  fact.Value,
			Inline: true,
		})
	}
	if len(card.Actions) > 0 {
		var hints []string
		for _, action := range card.Actions {
			hints = append(hints, fmt.Sprintf("`%s`", action.Value))
		}
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "Try: " + strings.Join(hints, ", "),
		}
	}
	return embed
}
