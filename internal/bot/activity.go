// Package bot classifies inbound chat activities and dispatches the fixed
// command set against the sync/query service. It is transport-neutral: the
// Discord adapter and the HTTP messages endpoint both feed it Activities and
// render the Reply it returns.
package bot

import "nba-bot-service/internal/cards"

// ActivityType is the closed set of inbound activity variants. Transports
// map their own event types onto these.
type ActivityType string

const (
	// ActivityMessage is free-form text typed by a user.
	ActivityMessage ActivityType = "message"
	// ActivityConversationUpdate fires when membership of a conversation
	// changes.
	ActivityConversationUpdate ActivityType = "conversationUpdate"
	// ActivityReaction is an emoji reaction on an earlier message.
	ActivityReaction ActivityType = "messageReaction"
	// ActivityCardAction is a structured submit from a card button rather
	// than typed text.
	ActivityCardAction ActivityType = "cardAction"
	// ActivityUnknown covers transport events the bot does not handle.
	ActivityUnknown ActivityType = "unknown"
)

// Activity is one inbound chat turn, normalized away from any particular
// transport schema.
type Activity struct {
	Type ActivityType
	// Text is the raw message or card action value.
	Text string
	// MembersAdded lists user ids joining the conversation, for
	// conversation updates.
	MembersAdded []string
	// RecipientID is the bot's own id in the conversation, used to skip
	// welcoming itself.
	RecipientID string
	// ConversationID identifies the conversation for logging.
	ConversationID string
	// FromID identifies the sender for logging.
	FromID string
}

// ReplyKind classifies what the transport should render.
type ReplyKind int

const (
	// ReplyNone means the activity produces no outbound response.
	ReplyNone ReplyKind = iota
	// ReplyText is a plain text response.
	ReplyText
	// ReplyCard is a single rich card.
	ReplyCard
	// ReplyCarousel is an ordered set of cards.
	ReplyCarousel
)

// Reply is the dispatcher's terminal response for one turn.
type Reply struct {
	Kind  ReplyKind
	Text  string
	Cards []cards.Card
}

func textReply(text string) Reply {
	return Reply{Kind: ReplyText, Text: text}
}

func cardReply(card cards.Card) Reply {
	return Reply{Kind: ReplyCard, Cards: []cards.Card{card}}
}

func carouselReply(cs []cards.Card) Reply {
	return Reply{Kind: ReplyCarousel, Cards: cs}
}
