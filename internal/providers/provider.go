package providers

import (
	"context"
	"encoding/json"

	"football-stats-service/internal/domain"
)

// StatsProvider defines how upstream statistics are fetched. Responses are
// opaque JSON returned to callers verbatim; providers must not reshape or
// validate the payload. Queries are normalized before the provider sees them.
type StatsProvider interface {
	PlayerStats(ctx context.Context, q domain.PlayerQuery) (json.RawMessage, error)
	TopScorers(ctx context.Context, q domain.TopScorersQuery) (json.RawMessage, error)
}
