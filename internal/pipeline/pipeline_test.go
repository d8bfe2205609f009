package pipeline

import (
	"context"
	"strings"
	"testing"

	"subweave/internal/captions"
	"subweave/internal/render"
	"subweave/internal/translit"
)

type stubEngine struct {
	output string
}

func (s stubEngine) Convert(_ context.Context, _ string, _ translit.Scheme) (string, error) {
	return s.output, nil
}

func testDocument() *captions.Document {
	return &captions.Document{
		Language: "hi",
		Segments: []captions.Segment{
			{Cue: captions.Cue{StartMS: 0, EndMS: 1200, Text: "namaste"}, Index: 0},
			{Cue: captions.Cue{StartMS: 1300, EndMS: 2500, Text: "kaise ho."}, Index: 1},
		},
	}
}

func newTestAdapter(t *testing.T, engine translit.Engine) *translit.Adapter {
	t.Helper()
	adapter, err := translit.NewAdapter(engine, translit.DefaultSchemeOrder, 0)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	return adapter
}

func artifactNames(result *Result) []string {
	names := make([]string, 0, len(result.Artifacts))
	for _, artifact := range result.Artifacts {
		names = append(names, artifact.Name)
	}
	return names
}

func TestRunRawOnly(t *testing.T) {
	p, err := New(nil, Options{Formats: []render.Format{render.FormatText, render.FormatSRT}})
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	result, err := p.Run(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	names := artifactNames(result)
	want := []string{"transcript.txt", "transcript.srt"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if result.Degraded != 0 || len(result.Warnings) != 0 {
		t.Fatalf("expected clean run, got %+v", result)
	}
}

func TestRunFullVariantMatrix(t *testing.T) {
	p, err := New(nil, Options{
		Merge:   true,
		Adapter: newTestAdapter(t, stubEngine{output: "नमस्ते"}),
		Formats: []render.Format{render.FormatText},
	})
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	result, err := p.Run(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{
		"transcript.txt",
		"transcript.merged.txt",
		"transcript.translit.txt",
		"transcript.merged.translit.txt",
	}
	names := artifactNames(result)
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}

	for _, artifact := range result.Artifacts {
		if artifact.Variant.Transliterated && !strings.Contains(artifact.Payload, "नमस्ते") {
			t.Fatalf("%s: expected converted text, got %q", artifact.Name, artifact.Payload)
		}
		if !artifact.Variant.Transliterated && strings.Contains(artifact.Payload, "नमस्ते") {
			t.Fatalf("%s: original variant must keep source text", artifact.Name)
		}
	}
	if result.Degraded != 0 {
		t.Fatalf("expected no degraded units, got %d", result.Degraded)
	}
}

func TestRunMergeCombinesSentences(t *testing.T) {
	p, err := New(nil, Options{Merge: true, Formats: []render.Format{render.FormatText}})
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	result, err := p.Run(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var merged string
	for _, artifact := range result.Artifacts {
		if artifact.Name == "transcript.merged.txt" {
			merged = artifact.Payload
		}
	}
	if merged != "namaste kaise ho.\n" {
		t.Fatalf("expected single merged sentence, got %q", merged)
	}
}

func TestRunReportsDegradedUnits(t *testing.T) {
	// Roman output fails validity for every scheme, so each non-blank unit
	// falls back and is counted.
	p, err := New(nil, Options{
		Adapter: newTestAdapter(t, stubEngine{output: "still roman"}),
		Formats: []render.Format{render.FormatText},
	})
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	result, err := p.Run(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Degraded != 2 {
		t.Fatalf("expected 2 degraded units, got %d", result.Degraded)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", result.Warnings)
	}
}

func TestRunEmptyDocument(t *testing.T) {
	p, err := New(nil, Options{Merge: true, Formats: []render.Format{render.FormatVTT, render.FormatJSON}})
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	result, err := p.Run(context.Background(), &captions.Document{Language: "auto"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Artifacts) != 4 {
		t.Fatalf("expected 4 artifacts, got %d", len(result.Artifacts))
	}
	for _, artifact := range result.Artifacts {
		switch artifact.Format {
		case render.FormatVTT:
			if artifact.Payload != "WEBVTT\n\n" {
				t.Fatalf("%s: expected bare header, got %q", artifact.Name, artifact.Payload)
			}
		case render.FormatJSON:
			if !strings.Contains(artifact.Payload, "\"segments\": []") {
				t.Fatalf("%s: expected empty segments, got %q", artifact.Name, artifact.Payload)
			}
		}
	}
}

func TestPrimarySchemeMajorityWins(t *testing.T) {
	results := []translit.Result{
		{Scheme: translit.SchemeITRANS},
		{Scheme: translit.SchemeHarvardKyoto},
		{Scheme: translit.SchemeHarvardKyoto},
	}
	if got := primaryScheme(results); got != translit.SchemeHarvardKyoto {
		t.Fatalf("expected hk, got %q", got)
	}
	if got := primaryScheme(nil); got != "" {
		t.Fatalf("expected empty scheme for no results, got %q", got)
	}
}

func TestNewRequiresFormats(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Fatalf("expected error for missing formats")
	}
}

func TestRunSkipsUnsupportedFormat(t *testing.T) {
	p, err := New(nil, Options{Formats: []render.Format{render.Format("yaml"), render.FormatText}})
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	result, err := p.Run(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Artifacts) != 1 || result.Artifacts[0].Name != "transcript.txt" {
		t.Fatalf("expected only the text artifact, got %v", artifactNames(result))
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected a warning for the unsupported format, got %v", result.Warnings)
	}
}
