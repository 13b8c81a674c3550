package server

import (
	"fmt"
	"log/slog"
	"strings"

	"football-stats-service/internal/config"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/metrics"
	"football-stats-service/internal/providers"
	"football-stats-service/internal/providers/apifootball"
	"football-stats-service/internal/providers/fixture"
)

// providerFactory assembles the provider with the shared logging/metrics wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	base := selectProvider(cfg, f.logger)
	return providers.NewLoggingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.StatsProvider {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New()
	case config.ProviderAPIFootball, "":
		return apifootball.NewClient(apifootball.Config{
			BaseURL: cfg.RapidAPI.BaseURL,
			Host:    cfg.RapidAPI.Host,
			APIKey:  cfg.RapidAPI.APIKey,
			Timeout: cfg.RapidAPI.Timeout,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving from the
// instance when not explicitly configured. Keeps naming consistent in metrics/logs.
func normalizeProviderName(raw string, provider providers.StatsProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
