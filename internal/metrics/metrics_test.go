package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestRecorderCountsCallsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRequest(OpStreams, 20*time.Millisecond, nil)
	rec.RecordRequest(OpStreams, 40*time.Millisecond, errors.New("boom"))

	snap := rec.Snapshot(OpStreams)
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("expected 2 calls / 1 error, got %+v", snap)
	}
	if snap.LastLatency != 40*time.Millisecond {
		t.Errorf("expected last latency 40ms, got %s", snap.LastLatency)
	}
	if got := rec.Snapshot(OpMatches); got.Calls != 0 {
		t.Errorf("untouched operation should be empty, got %+v", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordRequest(OpMatches, time.Millisecond, nil)
	rec.RecordStreamOutcome("playing")
	if rec.Snapshot(OpMatches).Calls != 0 {
		t.Error("nil recorder should report nothing")
	}
}

func TestSetupDisabledIsInMemory(t *testing.T) {
	rec, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no error without endpoint, got %v", err)
	}
	if rec == nil || shutdown == nil {
		t.Fatal("expected recorder and shutdown")
	}
	if rec.otel != nil {
		t.Error("no exporter should be wired without an endpoint")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("noop shutdown failed: %v", err)
	}
}

func TestSetupExportsThroughReader(t *testing.T) {
	manual := sdkmetric.NewManualReader()
	orig := otlpReaderFactory
	otlpReaderFactory = func(context.Context, TelemetryConfig) (sdkmetric.Reader, error) {
		return manual, nil
	}
	defer func() { otlpReaderFactory = orig }()

	rec, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:      true,
		OtlpEndpoint: "localhost:4318",
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer shutdown(context.Background())

	rec.RecordRequest(OpMatches, 5*time.Millisecond, nil)
	rec.RecordStreamOutcome("empty")

	var rm metricdata.ResourceMetrics
	if err := manual.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect failed: %v", err)
	}

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	for _, want := range []string{"api_requests_total", "api_request_duration_ms", "stream_lookups_total"} {
		if !names[want] {
			t.Errorf("expected metric %s to be exported, got %v", want, names)
		}
	}
}
