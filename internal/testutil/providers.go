package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"football-stats-service/internal/domain"
)

// StubProvider is a StatsProvider test double that records the queries it
// receives and returns canned results. Safe for concurrent use.
type StubProvider struct {
	PlayerBody     json.RawMessage
	TopScorersBody json.RawMessage
	Err            error

	mu                sync.Mutex
	PlayerQueries     []domain.PlayerQuery
	TopScorersQueries []domain.TopScorersQuery
}

func (s *StubProvider) PlayerStats(ctx context.Context, q domain.PlayerQuery) (json.RawMessage, error) {
	_ = ctx
	s.mu.Lock()
	s.PlayerQueries = append(s.PlayerQueries, q)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.PlayerBody, nil
}

func (s *StubProvider) TopScorers(ctx context.Context, q domain.TopScorersQuery) (json.RawMessage, error) {
	_ = ctx
	s.mu.Lock()
	s.TopScorersQueries = append(s.TopScorersQueries, q)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.TopScorersBody, nil
}
