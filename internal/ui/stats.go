package ui

import (
	"fmt"
	"time"

	"github.com/abelbrown/kickoff/internal/metrics"
)

// statsSummary renders request counters for the status bar. Returns "" when
// there is no recorder or nothing has been requested yet.
func statsSummary(rec *metrics.Recorder) string {
	if rec == nil {
		return ""
	}
	matches := rec.Snapshot(metrics.OpMatches)
	streams := rec.Snapshot(metrics.OpStreams)
	if matches.Calls == 0 && streams.Calls == 0 {
		return ""
	}
	errs := matches.Errors + streams.Errors
	return fmt.Sprintf("api %d req · %d err · %s",
		matches.Calls+streams.Calls, errs, formatLatency(streams.LastLatency))
}

// formatLatency formats a duration as a compact human string.
// Handles negative durations by clamping to "0ms".
func formatLatency(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}
