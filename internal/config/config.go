package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	RapidAPI RapidAPIConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present; missing
// files are fine since production injects real environment variables.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		RapidAPI: loadRapidAPI(),
		Metrics:  loadMetrics(),
	}
}

// Validate reports configuration that prevents the service from serving
// traffic. The API key is only mandatory when the real upstream is selected;
// the fixture provider never talks to the network.
func (c Config) Validate() error {
	if c.Provider == ProviderAPIFootball && c.RapidAPI.APIKey == "" {
		return fmt.Errorf("config: %s is required when PROVIDER=%s", envRapidAPIKey, ProviderAPIFootball)
	}
	return nil
}
