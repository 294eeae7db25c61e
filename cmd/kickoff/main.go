// kickoff is a remote-driven terminal directory of live football streams.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abelbrown/kickoff/internal/api"
	"github.com/abelbrown/kickoff/internal/api/fixture"
	"github.com/abelbrown/kickoff/internal/config"
	"github.com/abelbrown/kickoff/internal/eventloop"
	"github.com/abelbrown/kickoff/internal/httpclient"
	"github.com/abelbrown/kickoff/internal/logging"
	"github.com/abelbrown/kickoff/internal/metrics"
	"github.com/abelbrown/kickoff/internal/selector"
	"github.com/abelbrown/kickoff/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fatal("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logging.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	logging.Info("Configuration loaded", "provider", cfg.API.Provider, "sport", cfg.API.Sport)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("setup metrics: %w", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			logging.Warn("Metrics shutdown failed", "error", err)
		}
	}()

	provider, err := buildProvider(cfg, recorder)
	if err != nil {
		return err
	}

	loop := eventloop.NewProgram(ctx)
	app := ui.NewApp(ui.AppConfig{
		Context:  ctx,
		Provider: provider,
		Loop:     loop,
		Player:   selector.Options{StrictOrdering: cfg.Player.StrictOrdering},
		Recorder: recorder,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	loop.Attach(program.Send)

	logging.Info("Starting UI")
	if _, err := program.Run(); err != nil {
		logging.Error("Application error", "error", err)
		return fmt.Errorf("run program: %w", err)
	}

	logging.Info("kickoff exiting normally")
	return nil
}

// buildProvider picks the upstream named by the configuration.
func buildProvider(cfg *config.Config, recorder *metrics.Recorder) (api.Provider, error) {
	switch cfg.API.Provider {
	case config.ProviderFixture:
		logging.Info("Using offline fixtures")
		return fixture.New(), nil

	case config.ProviderStreamed, "":
		httpClient, err := httpclient.New(httpclient.Config{
			Timeout:    cfg.HTTP.Timeout.Std(),
			ProxyURL:   cfg.HTTP.ProxyURL,
			BrowserTLS: cfg.HTTP.BrowserTLS,
		})
		if err != nil {
			return nil, fmt.Errorf("build http client: %w", err)
		}
		return api.NewClient(api.Config{
			BaseURL:      cfg.API.BaseURL,
			Sport:        cfg.API.Sport,
			HTTPClient:   httpClient,
			RateInterval: cfg.HTTP.RateInterval.Std(),
			Recorder:     recorder,
		}), nil

	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.API.Provider)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
