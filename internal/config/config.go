// Package config resolves runtime settings: defaults, then an optional JSON
// file, then a .env file, then the process environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is the application configuration. It is read, never written.
type Config struct {
	// API
	API APIConfig `json:"api"`

	// Outbound HTTP
	HTTP HTTPConfig `json:"http"`

	// Player behaviour
	Player PlayerConfig `json:"player"`

	// Telemetry export
	Metrics MetricsConfig `json:"metrics"`

	// Log level and directory
	Log LogConfig `json:"log"`
}

// APIConfig selects the upstream directory.
type APIConfig struct {
	Provider string `json:"provider"` // "streamed" or "fixture"
	BaseURL  string `json:"base_url"`
	Sport    string `json:"sport"`
}

// HTTPConfig tunes the outbound client.
type HTTPConfig struct {
	Timeout      Duration `json:"timeout"`
	RateInterval Duration `json:"rate_interval"`
	ProxyURL     string   `json:"proxy_url,omitempty"`
	BrowserTLS   bool     `json:"browser_tls"`
}

// PlayerConfig tunes the stream selector.
type PlayerConfig struct {
	StrictOrdering bool `json:"strict_ordering"` // drop stale lookups instead of last-wins
}

// MetricsConfig controls OTLP export.
type MetricsConfig struct {
	Enabled      bool   `json:"enabled"`
	OtlpEndpoint string `json:"otlp_endpoint,omitempty"`
	OtlpInsecure bool   `json:"otlp_insecure"`
	ServiceName  string `json:"service_name"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `json:"level"`
	Dir   string `json:"dir"`
}

// DataDir returns ~/.kickoff.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".kickoff")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Provider: defaultProvider,
			BaseURL:  defaultBaseURL,
			Sport:    defaultSport,
		},
		HTTP: HTTPConfig{
			Timeout:      Duration(defaultHTTPTimeout),
			RateInterval: Duration(defaultRateInterval),
		},
		Metrics: MetricsConfig{
			Enabled:      false,
			OtlpInsecure: true,
			ServiceName:  defaultServiceName,
		},
		Log: LogConfig{
			Level: "info",
			Dir:   filepath.Join(DataDir(), "logs"),
		},
	}
}

// Load builds the configuration from the file at path (missing is fine),
// the .env file in the working directory (missing is fine) and the
// environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.API.Provider = envOrDefault(envProvider, c.API.Provider)
	c.API.BaseURL = envOrDefault(envBaseURL, c.API.BaseURL)
	c.API.Sport = envOrDefault(envSport, c.API.Sport)

	c.HTTP.Timeout = Duration(durationEnvOrDefault(envHTTPTimeout, c.HTTP.Timeout.Std()))
	c.HTTP.RateInterval = Duration(durationEnvOrDefault(envRateInterval, c.HTTP.RateInterval.Std()))
	c.HTTP.ProxyURL = envOrDefault(envProxyURL, c.HTTP.ProxyURL)
	c.HTTP.BrowserTLS = boolEnvOrDefault(envBrowserTLS, c.HTTP.BrowserTLS)

	c.Player.StrictOrdering = boolEnvOrDefault(envStrictOrdering, c.Player.StrictOrdering)

	c.Metrics.Enabled = boolEnvOrDefault(envMetricsOn, c.Metrics.Enabled)
	c.Metrics.OtlpEndpoint = envOrDefault(envOtelEndpoint, c.Metrics.OtlpEndpoint)
	c.Metrics.OtlpInsecure = boolEnvOrDefault(envOtelInsecure, c.Metrics.OtlpInsecure)
	c.Metrics.ServiceName = envOrDefault(envOtelService, c.Metrics.ServiceName)

	c.Log.Level = envOrDefault(envLogLevel, c.Log.Level)
	c.Log.Dir = envOrDefault(envLogDir, c.Log.Dir)
}
