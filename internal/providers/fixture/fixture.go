package fixture

import (
	"context"
	"encoding/json"
	"fmt"

	"football-stats-service/internal/domain"
)

// Provider serves deterministic canned payloads shaped like API-Football
// responses. Useful for local runs without credentials and for tests.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// PlayerStats returns a canned statistics payload echoing the query.
func (p *Provider) PlayerStats(ctx context.Context, q domain.PlayerQuery) (json.RawMessage, error) {
	_ = ctx
	q = q.Normalize()
	body := fmt.Sprintf(`{
  "get": "players",
  "parameters": {"id": "%d", "season": "%d"},
  "results": 1,
  "response": [
    {
      "player": {"id": %d, "name": "Fixture Player", "nationality": "Fixtureland"},
      "statistics": [
        {"team": {"id": 50, "name": "Fixture FC"}, "games": {"appearences": 30}, "goals": {"total": 12}}
      ]
    }
  ]
}`, q.PlayerID, q.Season, q.PlayerID)
	return json.RawMessage(body), nil
}

// TopScorers returns a canned top scorers payload echoing the query.
func (p *Provider) TopScorers(ctx context.Context, q domain.TopScorersQuery) (json.RawMessage, error) {
	_ = ctx
	q = q.Normalize()
	body := fmt.Sprintf(`{
  "get": "players/topscorers",
  "parameters": {"league": "%d", "season": "%d"},
  "results": 2,
  "response": [
    {"player": {"id": 1100, "name": "Fixture Striker"}, "statistics": [{"goals": {"total": 27}}]},
    {"player": {"id": 1101, "name": "Fixture Forward"}, "statistics": [{"goals": {"total": 21}}]}
  ]
}`, q.LeagueID, q.Season)
	return json.RawMessage(body), nil
}
