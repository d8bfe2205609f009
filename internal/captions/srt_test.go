package captions

import "testing"

func TestParseSRT(t *testing.T) {
	raw := `1
00:00:00,000 --> 00:00:02,000
Hello there.

2
00:00:02,100 --> 00:00:04,200
how are you
today?
`
	doc, skipped := ParseSRT(raw, "en")
	if len(skipped) != 0 {
		t.Fatalf("expected no skipped blocks, got %+v", skipped)
	}
	if len(doc.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(doc.Segments))
	}
	first := doc.Segments[0]
	if first.StartMS != 0 || first.EndMS != 2000 || first.Text != "Hello there." {
		t.Fatalf("unexpected first segment: %+v", first)
	}
	if doc.Segments[1].Text != "how are you\ntoday?" {
		t.Fatalf("expected multi-line text preserved, got %q", doc.Segments[1].Text)
	}
}

func TestParseSRTSkipsMalformedBlock(t *testing.T) {
	raw := `1
00:00:00,000 --> 00:00:01,000
fine

2
not a timestamp
broken
`
	doc, skipped := ParseSRT(raw, "en")
	if len(doc.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(doc.Segments))
	}
	if len(skipped) != 1 || skipped[0].Index != 1 {
		t.Fatalf("expected block 1 skipped, got %+v", skipped)
	}
}

func TestParseSRTEmpty(t *testing.T) {
	doc, skipped := ParseSRT("", "en")
	if !doc.Empty() || len(skipped) != 0 {
		t.Fatalf("expected empty document, got %d segments %d skips", len(doc.Segments), len(skipped))
	}
}

func TestParseVTT(t *testing.T) {
	raw := `WEBVTT

00:00:00.000 --> 00:00:02.000
Hello there.

cue-2
00:00:02.100 --> 00:00:04.200
how are you today?
`
	doc, skipped := ParseVTT(raw, "en")
	if len(skipped) != 0 {
		t.Fatalf("expected no skipped blocks, got %+v", skipped)
	}
	if len(doc.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(doc.Segments))
	}
	if doc.Segments[1].StartMS != 2100 {
		t.Fatalf("expected identifier line skipped, got start %d", doc.Segments[1].StartMS)
	}
}

func TestParseVTTHeaderOnly(t *testing.T) {
	doc, skipped := ParseVTT("WEBVTT\n\n", "en")
	if !doc.Empty() || len(skipped) != 0 {
		t.Fatalf("expected empty document for header-only payload")
	}
}
