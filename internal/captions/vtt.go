package captions

import (
	"errors"
	"strings"
)

var errMissingArrow = errors.New("timestamp line missing --> separator")

// ParseVTT parses a WebVTT payload back into a Document. The WEBVTT header
// and optional cue identifiers are accepted; malformed cue blocks are
// skipped and reported.
func ParseVTT(content, lang string) (*Document, []SkippedRecord) {
	doc := &Document{Language: normalizeLang(lang)}
	var skipped []SkippedRecord
	for i, block := range splitBlocks(content) {
		if i == 0 && strings.HasPrefix(block, "WEBVTT") {
			continue
		}
		cue, reason := parseVTTBlock(block)
		if reason != "" {
			skipped = append(skipped, SkippedRecord{Index: i, Reason: reason})
			continue
		}
		doc.Segments = append(doc.Segments, Segment{Cue: cue, Index: len(doc.Segments)})
	}
	return doc, skipped
}

func parseVTTBlock(block string) (Cue, string) {
	lines := strings.Split(block, "\n")
	// A cue may open with an identifier line before the timing line.
	if len(lines) > 0 && !strings.Contains(lines[0], "-->") {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return Cue{}, "missing timing line"
	}
	cue, err := parseCueTiming(lines[0])
	if err != nil {
		return Cue{}, err.Error()
	}
	cue.Text = strings.Join(lines[1:], "\n")
	return cue, ""
}
