package translit

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"subweave/internal/captions"
)

// echoEngine converts "unit-N" into a distinct Devanagari string so ordering
// survives the pooled fan-out.
type echoEngine struct{}

func (echoEngine) Convert(_ context.Context, text string, _ Scheme) (string, error) {
	return "अ" + strings.TrimPrefix(text, "unit-"), nil
}

func TestApplyPreservesOrder(t *testing.T) {
	adapter := newAdapter(t, echoEngine{}, SchemeITRANS)

	cues := make([]captions.Cue, 32)
	for i := range cues {
		cues[i] = captions.Cue{
			StartMS: int64(i * 1000),
			EndMS:   int64(i*1000 + 900),
			Text:    fmt.Sprintf("unit-%d", i),
		}
	}

	converted, results, err := adapter.Apply(context.Background(), cues, 5)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(converted) != len(cues) || len(results) != len(cues) {
		t.Fatalf("expected %d outputs, got %d cues and %d results", len(cues), len(converted), len(results))
	}
	for i, cue := range converted {
		want := fmt.Sprintf("अ%d", i)
		if cue.Text != want {
			t.Fatalf("cue %d: expected %q, got %q", i, want, cue.Text)
		}
		if cue.StartMS != cues[i].StartMS || cue.EndMS != cues[i].EndMS {
			t.Fatalf("cue %d: timing changed", i)
		}
	}
}

func TestApplyIsolatesDegradedUnits(t *testing.T) {
	engine := &fakeEngine{outputs: map[Scheme]string{SchemeITRANS: "नमस्ते"}}
	adapter := newAdapter(t, engine, SchemeITRANS)

	cues := []captions.Cue{
		{StartMS: 0, EndMS: 500, Text: "namaste"},
		{StartMS: 600, EndMS: 800, Text: "   "},
		{StartMS: 900, EndMS: 1400, Text: "namaste"},
	}
	converted, results, err := adapter.Apply(context.Background(), cues, 2)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if converted[0].Text != "नमस्ते" || converted[2].Text != "नमस्ते" {
		t.Fatalf("expected converted neighbors, got %q and %q", converted[0].Text, converted[2].Text)
	}
	if converted[1].Text != "   " {
		t.Fatalf("blank unit must pass through, got %q", converted[1].Text)
	}
	if DegradedCount(results) != 0 {
		t.Fatalf("expected no degraded units")
	}
}

func TestApplyEmptyInput(t *testing.T) {
	adapter := newAdapter(t, echoEngine{}, SchemeITRANS)
	converted, results, err := adapter.Apply(context.Background(), nil, 3)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if converted != nil || results != nil {
		t.Fatalf("expected nil outputs for empty input")
	}
}

func TestApplyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	adapter := newAdapter(t, echoEngine{}, SchemeITRANS)
	cues := []captions.Cue{{StartMS: 0, EndMS: 500, Text: "unit-0"}}
	if _, _, err := adapter.Apply(ctx, cues, 2); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestDegradedCount(t *testing.T) {
	results := []Result{
		{Degraded: true},
		{},
		{Degraded: true},
	}
	if got := DegradedCount(results); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
