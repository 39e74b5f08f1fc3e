package http

import (
	nethttp "net/http"
	"strings"

	"nba-bot-service/internal/logging"
)

// AdminSync triggers a full sync of every entity kind. Guarded by a bearer
// token; disabled entirely when no token is configured.
func (h *Handler) AdminSync(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.writeError(w, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.adminToken == "" {
		h.writeError(w, nethttp.StatusNotFound, "not found")
		return
	}
	if !h.authorized(r) {
		h.writeError(w, nethttp.StatusUnauthorized, "unauthorized")
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx, h.logger)

	counts := map[string]int{}
	failures := map[string]string{}

	for _, step := range []struct {
		name string
		run  func() (int, error)
	}{
		{"teams", func() (int, error) { return h.sync.SyncAllTeams(ctx) }},
		{"games", func() (int, error) { return h.sync.SyncAllGames(ctx) }},
		{"players", func() (int, error) { return h.sync.SyncAllPlayers(ctx) }},
		{"stats", func() (int, error) { return h.sync.SyncAllStatistics(ctx) }},
	} {
		count, err := step.run()
		counts[step.name] = count
		if err != nil {
			failures[step.name] = err.Error()
			logging.Error(logger, "admin sync step failed", err, "step", step.name)
		}
	}

	status := nethttp.StatusOK
	if len(failures) > 0 {
		status = nethttp.StatusBadGateway
	}
	h.writeJSON(w, status, map[string]any{
		"synced":   counts,
		"failures": failures,
	})
}

func (h *Handler) authorized(r *nethttp.Request) bool {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	return ok && token == h.adminToken
}
