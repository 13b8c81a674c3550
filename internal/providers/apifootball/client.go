package apifootball

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"football-stats-service/internal/domain"
	"football-stats-service/internal/providers"
)

// ProviderName identifies this client in logs, metrics, and errors.
const ProviderName = "apifootball"

// Config controls how the client reaches API-Football through RapidAPI.
type Config struct {
	BaseURL    string
	Host       string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client proxies statistics queries to API-Football. Response bodies are
// returned verbatim; this client imposes no schema on the upstream payload.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		host:       resolveHost(cfg.Host),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// PlayerStats fetches one player's statistics for a season.
func (c *Client) PlayerStats(ctx context.Context, q domain.PlayerQuery) (json.RawMessage, error) {
	q = q.Normalize()
	params := url.Values{}
	params.Set("id", strconv.Itoa(q.PlayerID))
	params.Set("season", strconv.Itoa(q.Season))
	return c.get(ctx, playersPath, params)
}

// TopScorers fetches a league's top scorers for a season.
func (c *Client) TopScorers(ctx context.Context, q domain.TopScorersQuery) (json.RawMessage, error) {
	q = q.Normalize()
	params := url.Values{}
	params.Set("league", strconv.Itoa(q.LeagueID))
	params.Set("season", strconv.Itoa(q.Season))
	return c.get(ctx, topScorersPath, params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set(headerRapidAPIHost, c.host)
	req.Header.Set(headerRapidAPIKey, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &providers.UpstreamError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
