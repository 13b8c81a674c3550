package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"football-stats-service/internal/domain"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/metrics"
)

// LoggingProvider decorates a StatsProvider with per-call logging and metrics.
type LoggingProvider struct {
	inner    StatsProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
}

// NewLoggingProvider wraps inner so every upstream call is logged and recorded
// under the given provider name.
func NewLoggingProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) *LoggingProvider {
	if name == "" {
		name = "provider"
	}
	return &LoggingProvider{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
	}
}

func (p *LoggingProvider) PlayerStats(ctx context.Context, q domain.PlayerQuery) (json.RawMessage, error) {
	start := time.Now()
	body, err := p.inner.PlayerStats(ctx, q)
	p.observe(ctx, "player stats fetched", time.Since(start), err,
		slog.Int("player_id", q.PlayerID), slog.Int("season", q.Season))
	return body, err
}

func (p *LoggingProvider) TopScorers(ctx context.Context, q domain.TopScorersQuery) (json.RawMessage, error) {
	start := time.Now()
	body, err := p.inner.TopScorers(ctx, q)
	p.observe(ctx, "top scorers fetched", time.Since(start), err,
		slog.Int("league_id", q.LeagueID), slog.Int("season", q.Season))
	return body, err
}

func (p *LoggingProvider) observe(ctx context.Context, msg string, duration time.Duration, err error, args ...any) {
	p.recorder.RecordProviderAttempt(p.name, duration, err)

	if p.logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, p.name),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	if err != nil {
		args = append(args, "error", err)
		p.logger.Log(ctx, slog.LevelWarn, "upstream call failed", args...)
		return
	}
	p.logger.Log(ctx, slog.LevelInfo, msg, args...)
}
