package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug":   log.DebugLevel,
		"DEBUG":   log.DebugLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"":        log.InfoLevel,
		"verbose": log.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("expected warn line with fields, got %q", out)
	}
}

func TestHelpersWithoutLogger(t *testing.T) {
	Logger = nil
	// None of these may panic before Init.
	Info("x")
	Debug("x")
	Warn("x")
	Error("x")
	if WithPrefix("p") != nil {
		t.Error("WithPrefix should be nil without a logger")
	}
	Close()
}

func TestInitWritesDatedFile(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, "debug"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Debug("debug line", "n", 1)
	Close()
	Logger = nil

	matches, err := filepath.Glob(filepath.Join(dir, "kickoff-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one log file, got %v (err %v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "debug line") {
		t.Errorf("log file missing debug line: %q", data)
	}
}
