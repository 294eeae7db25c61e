// Package metrics records upstream call statistics in memory and, when
// enabled, exports them over OTLP.
package metrics

import (
	"sync"
	"time"
)

// Operation names used by the API client.
const (
	OpMatches = "matches"
	OpStreams = "streams"
	OpBadges  = "badges"
)

type opStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures per-operation call counts. A nil Recorder is valid and
// records nothing.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*opStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*opStats),
		otel:  otel,
	}
}

// RecordRequest counts one call to an upstream operation.
func (r *Recorder) RecordRequest(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[op]
	if !ok {
		stats = &opStats{}
		r.stats[op] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRequest(op, duration, err)
	}
}

// RecordStreamOutcome counts how a stream lookup ended: "playing", "empty"
// or "failed".
func (r *Recorder) RecordStreamOutcome(outcome string) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordStreamOutcome(outcome)
}

// Snapshot is a copy of the stats for one operation.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[op]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}
