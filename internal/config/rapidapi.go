package config

import "time"

const (
	envRapidAPIKey     = "RAPID_API_KEY"
	envRapidAPIBaseURL = "RAPID_API_BASE_URL"
	envRapidAPIHost    = "RAPID_API_HOST"
	envRapidAPITimeout = "RAPID_API_TIMEOUT"

	defaultRapidAPIBaseURL = "https://api-football-v1.p.rapidapi.com/v3"
	defaultRapidAPIHost    = "api-football-v1.p.rapidapi.com"
	defaultRapidAPITimeout = 10 * time.Second
)

// RapidAPIConfig controls how we talk to the API-Football API on RapidAPI.
type RapidAPIConfig struct {
	BaseURL string
	Host    string
	APIKey  string
	Timeout time.Duration
}

func loadRapidAPI() RapidAPIConfig {
	return RapidAPIConfig{
		BaseURL: envOrDefault(envRapidAPIBaseURL, defaultRapidAPIBaseURL),
		Host:    envOrDefault(envRapidAPIHost, defaultRapidAPIHost),
		APIKey:  envOrDefault(envRapidAPIKey, ""),
		Timeout: durationEnvOrDefault(envRapidAPITimeout, defaultRapidAPITimeout),
	}
}
