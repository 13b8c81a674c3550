package config

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "8000"
	defaultProvider    = ProviderAPIFootball
	defaultMetricsPort = "9090"
)

// Known provider names accepted via PROVIDER.
const (
	ProviderAPIFootball = "apifootball"
	ProviderFixture     = "fixture"
)
