package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"nba-bot-service/internal/domain"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches NBA records from the balldontlie API and maps them to
// domain models. Every call is a single attempt against the first page of
// the envelope; pagination is deliberately not followed.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Name identifies this provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchTeams retrieves the NBA franchises.
func (c *Client) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	var payload teamsResponse
	if err := c.fetchCollection(ctx, resourceTeams, nil, &payload); err != nil {
		return nil, err
	}
	teams := make([]domain.Team, 0, len(payload.Data))
	for _, t := range payload.Data {
		teams = append(teams, mapTeam(t))
	}
	return teams, nil
}

// FetchGames retrieves the first page of games.
func (c *Client) FetchGames(ctx context.Context) ([]domain.Game, error) {
	var payload gamesResponse
	if err := c.fetchCollection(ctx, resourceGames, nil, &payload); err != nil {
		return nil, err
	}
	games := make([]domain.Game, 0, len(payload.Data))
	for _, g := range payload.Data {
		games = append(games, mapGame(g))
	}
	return games, nil
}

// FetchPlayers retrieves the first page of players. An optional search term
// narrows the result server-side.
func (c *Client) FetchPlayers(ctx context.Context, search string) ([]domain.Player, error) {
	var query url.Values
	if search != "" {
		query = url.Values{"search": []string{search}}
	}
	var payload playersResponse
	if err := c.fetchCollection(ctx, resourcePlayers, query, &payload); err != nil {
		return nil, err
	}
	players := make([]domain.Player, 0, len(payload.Data))
	for _, p := range payload.Data {
		players = append(players, mapPlayer(p))
	}
	return players, nil
}

// FetchStatistics retrieves the first page of per-game stat lines.
func (c *Client) FetchStatistics(ctx context.Context) ([]domain.Statistic, error) {
	var payload statsResponse
	if err := c.fetchCollection(ctx, resourceStats, nil, &payload); err != nil {
		return nil, err
	}
	stats := make([]domain.Statistic, 0, len(payload.Data))
	for _, s := range payload.Data {
		stats = append(stats, mapStatistic(s))
	}
	return stats, nil
}

// FetchSeasonAverages retrieves a player's per-game averages for a season.
func (c *Client) FetchSeasonAverages(ctx context.Context, playerID int64, season int) ([]domain.SeasonAverage, error) {
	query := url.Values{
		"player_ids[]": []string{strconv.FormatInt(playerID, 10)},
	}
	if season > 0 {
		query.Set("season", strconv.Itoa(season))
	}
	var payload seasonAveragesResponse
	if err := c.fetchCollection(ctx, resourceSeasonAverages, query, &payload); err != nil {
		return nil, err
	}
	averages := make([]domain.SeasonAverage, 0, len(payload.Data))
	for _, a := range payload.Data {
		averages = append(averages, mapSeasonAverage(a))
	}
	return averages, nil
}

// fetchCollection issues one GET against a resource path and decodes the
// {data, meta} envelope into out. Non-2xx statuses and malformed bodies are
// errors; there is no retry and no paging.
func (c *Client) fetchCollection(ctx context.Context, resource string, query url.Values, out any) error {
	req, err := c.buildRequest(ctx, resource, query)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: fetching %s: %w", providerName, resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d for %s: %s",
			providerName, resp.StatusCode, resource, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding %s response: %w", providerName, resource, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, resource string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+resource, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("per_page", strconv.Itoa(defaultPerPage))
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}
