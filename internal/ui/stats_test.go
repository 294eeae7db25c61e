package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/kickoff/internal/metrics"
)

func TestStatsSummary(t *testing.T) {
	if got := statsSummary(nil); got != "" {
		t.Errorf("nil recorder should render nothing, got %q", got)
	}

	rec := metrics.NewRecorder()
	if got := statsSummary(rec); got != "" {
		t.Errorf("idle recorder should render nothing, got %q", got)
	}

	rec.RecordRequest(metrics.OpMatches, 80*time.Millisecond, nil)
	rec.RecordRequest(metrics.OpStreams, 120*time.Millisecond, errors.New("boom"))

	got := statsSummary(rec)
	for _, want := range []string{"api 2 req", "1 err", "120ms"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q missing %q", got, want)
		}
	}
}

func TestFormatLatency(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{-time.Second, "0ms"},
		{0, "0ms"},
		{500 * time.Millisecond, "500ms"},
		{1500 * time.Millisecond, "1.5s"},
		{5 * time.Minute, "5m"},
	}

	for _, tt := range tests {
		if got := formatLatency(tt.d); got != tt.want {
			t.Errorf("formatLatency(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
