package translit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewExecEngineRequiresCommand(t *testing.T) {
	if _, err := NewExecEngine("  ", ""); err == nil {
		t.Fatalf("expected error for blank command")
	}
	engine, err := NewExecEngine("sanscript", "")
	if err != nil {
		t.Fatalf("new exec engine: %v", err)
	}
	if engine.targetScript != "devanagari" {
		t.Fatalf("expected default target script, got %q", engine.targetScript)
	}
}

func TestExecEngineConvertRoundTrip(t *testing.T) {
	// Stand in for the real converter with a script that echoes stdin so
	// the round trip stays hermetic.
	script := filepath.Join(t.TempDir(), "converter.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\ncat\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	engine, err := NewExecEngine(script, "devanagari")
	if err != nil {
		t.Fatalf("new exec engine: %v", err)
	}
	out, err := engine.Convert(context.Background(), "namaste\n", SchemeITRANS)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "namaste" {
		t.Fatalf("expected trailing newline trimmed, got %q", out)
	}
}

func TestExecEngineConvertMissingBinary(t *testing.T) {
	engine, err := NewExecEngine("subweave-no-such-converter", "devanagari")
	if err != nil {
		t.Fatalf("new exec engine: %v", err)
	}
	if _, err := engine.Convert(context.Background(), "namaste", SchemeITRANS); err == nil {
		t.Fatalf("expected error for missing binary")
	}
}
