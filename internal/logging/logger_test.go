package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "subweave.log")
	logger, err := New(Options{Level: "info", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("run started", String(FieldComponent, "pipeline"), Int("segments", 3))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"msg":"run started"`, `"component":"pipeline"`, `"segments":3`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in log line %q", want, line)
		}
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subweave.log")
	logger, err := New(Options{Level: "warn", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("quiet")
	logger.Warn("loud", String(FieldStage, "merge"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "quiet") {
		t.Fatalf("info line must be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") || !strings.Contains(out, "stage=merge") {
		t.Fatalf("expected warn line with attrs, got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must accept the shared field helpers.
	logger.Error("ignored", Error(os.ErrNotExist), Bool("flag", true))
}
