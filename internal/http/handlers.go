package http

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"time"

	"nba-bot-service/internal/bot"
	"nba-bot-service/internal/cards"
)

// turnDispatcher resolves one inbound activity to a reply.
type turnDispatcher interface {
	Dispatch(ctx context.Context, activity bot.Activity) bot.Reply
}

// syncService exposes the bulk sync operations for the admin endpoint.
type syncService interface {
	SyncAllTeams(ctx context.Context) (int, error)
	SyncAllGames(ctx context.Context) (int, error)
	SyncAllPlayers(ctx context.Context) (int, error)
	SyncAllStatistics(ctx context.Context) (int, error)
}

// Handler wires HTTP routes to the bot dispatcher and sync service.
type Handler struct {
	dispatcher  turnDispatcher
	sync        syncService
	ready       func() bool
	logger      *slog.Logger
	adminToken  string
	turnTimeout time.Duration
}

// NewHandler constructs a Handler. ready may be nil, in which case the
// service always reports ready. turnTimeout bounds each dispatched turn.
func NewHandler(dispatcher turnDispatcher, sync syncService, ready func() bool, logger *slog.Logger, adminToken string, turnTimeout time.Duration) *Handler {
	if ready == nil {
		ready = func() bool { return true }
	}
	if turnTimeout <= 0 {
		turnTimeout = 15 * time.Second
	}
	return &Handler{
		dispatcher:  dispatcher,
		sync:        sync,
		ready:       ready,
		logger:      logger,
		adminToken:  adminToken,
		turnTimeout: turnTimeout,
	}
}

// activityRequest is the wire shape of an inbound chat turn.
type activityRequest struct {
	Type           string   `json:"type"`
	Text           string   `json:"text"`
	Value          string   `json:"value,omitempty"`
	MembersAdded   []string `json:"membersAdded,omitempty"`
	RecipientID    string   `json:"recipientId,omitempty"`
	FromID         string   `json:"fromId,omitempty"`
	ConversationID string   `json:"conversationId,omitempty"`
}

// replyResponse is the wire shape of the bot's response.
type replyResponse struct {
	Type  string       `json:"type"`
	Text  string       `json:"text,omitempty"`
	Cards []cards.Card `json:"cards,omitempty"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the service is ready to take traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.ready() {
		h.writeError(w, nethttp.StatusServiceUnavailable, "not ready")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// Messages accepts one chat activity and returns the bot's reply.
func (h *Handler) Messages(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.writeError(w, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "malformed activity")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.turnTimeout)
	defer cancel()

	reply := h.dispatcher.Dispatch(ctx, toActivity(req))
	h.writeJSON(w, nethttp.StatusOK, toResponse(reply))
}

func toActivity(req activityRequest) bot.Activity {
	activity := bot.Activity{
		Text:           req.Text,
		MembersAdded:   req.MembersAdded,
		RecipientID:    req.RecipientID,
		FromID:         req.FromID,
		ConversationID: req.ConversationID,
	}
	switch bot.ActivityType(req.Type) {
	case bot.ActivityMessage:
		activity.Type = bot.ActivityMessage
		// A populated value on a message marks a card submit.
		if req.Value != "" {
			activity.Type = bot.ActivityCardAction
			activity.Text = req.Value
		}
	case bot.ActivityConversationUpdate:
		activity.Type = bot.ActivityConversationUpdate
	case bot.ActivityReaction:
		activity.Type = bot.ActivityReaction
	case bot.ActivityCardAction:
		activity.Type = bot.ActivityCardAction
		if req.Value != "" {
			activity.Text = req.Value
		}
	default:
		activity.Type = bot.ActivityUnknown
	}
	return activity
}

func toResponse(reply bot.Reply) replyResponse {
	switch reply.Kind {
	case bot.ReplyText:
		return replyResponse{Type: "message", Text: reply.Text}
	case bot.ReplyCard, bot.ReplyCarousel:
		return replyResponse{Type: "message", Cards: reply.Cards}
	default:
		return replyResponse{Type: "none"}
	}
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
