package config

import "time"

const (
	envProvider       = "KICKOFF_PROVIDER"
	envBaseURL        = "KICKOFF_BASE_URL"
	envSport          = "KICKOFF_SPORT"
	envHTTPTimeout    = "KICKOFF_HTTP_TIMEOUT"
	envRateInterval   = "KICKOFF_RATE_INTERVAL"
	envProxyURL       = "KICKOFF_PROXY_URL"
	envBrowserTLS     = "KICKOFF_BROWSER_TLS"
	envStrictOrdering = "KICKOFF_STRICT_ORDERING"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envOtelService    = "OTEL_SERVICE_NAME"
	envLogLevel       = "LOG_LEVEL"
	envLogDir         = "KICKOFF_LOG_DIR"

	// ProviderStreamed talks to the live API, ProviderFixture is offline.
	ProviderStreamed = "streamed"
	ProviderFixture  = "fixture"

	defaultProvider     = ProviderStreamed
	defaultBaseURL      = "https://streamed.pk"
	defaultSport        = "football"
	defaultHTTPTimeout  = 30 * time.Second
	defaultRateInterval = 250 * time.Millisecond
	defaultServiceName  = "kickoff"
)
