package stats

import (
	"context"
	"encoding/json"

	"football-stats-service/internal/domain"
	"football-stats-service/internal/providers"
)

// Service coordinates statistics queries against the configured provider.
// Each call performs at most one upstream request; nothing is cached.
type Service struct {
	provider providers.StatsProvider
}

// NewService constructs a Service with the provided upstream provider.
func NewService(provider providers.StatsProvider) *Service {
	return &Service{provider: provider}
}

// PlayerStats returns the upstream payload for a player statistics query.
func (s *Service) PlayerStats(ctx context.Context, q domain.PlayerQuery) (json.RawMessage, error) {
	return s.provider.PlayerStats(ctx, q.Normalize())
}

// TopScorers returns the upstream payload for a top scorers query.
func (s *Service) TopScorers(ctx context.Context, q domain.TopScorersQuery) (json.RawMessage, error) {
	return s.provider.TopScorers(ctx, q.Normalize())
}
