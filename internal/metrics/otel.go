package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	AttrOperation = "operation"
	AttrOutcome   = "outcome"
)

var (
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls metric export.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
	Interval     time.Duration
}

// Setup returns a Recorder and a shutdown function. Export only happens when
// enabled with an OTLP endpoint; otherwise the Recorder is in-memory only.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled || cfg.OtlpEndpoint == "" {
		return NewRecorder(), noop, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "kickoff"
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}

	reader, err := otlpReaderFactory(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	inst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, err
	}

	return newRecorder(inst), provider.Shutdown, nil
}

func buildOTLPReader(ctx context.Context, cfg TelemetryConfig) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.OtlpEndpoint)}
	if cfg.OtlpInsecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(cfg.Interval)), nil
}

type otelInstruments struct {
	ctx       context.Context
	requests  metric.Int64Counter
	errors    metric.Int64Counter
	latencyMs metric.Float64Histogram
	lookups   metric.Int64Counter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("kickoff")

	requests, err := meter.Int64Counter("api_requests_total")
	if err != nil {
		return nil, err
	}
	errs, err := meter.Int64Counter("api_errors_total")
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram("api_request_duration_ms")
	if err != nil {
		return nil, err
	}
	lookups, err := meter.Int64Counter("stream_lookups_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:       context.Background(),
		requests:  requests,
		errors:    errs,
		latencyMs: latency,
		lookups:   lookups,
	}, nil
}

func (o *otelInstruments) recordRequest(op string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String(AttrOperation, op))
	o.requests.Add(o.ctx, 1, attrs)
	o.latencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		o.errors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordStreamOutcome(outcome string) {
	o.lookups.Add(o.ctx, 1, metric.WithAttributes(attribute.String(AttrOutcome, outcome)))
}
