package captions

import (
	"strconv"
	"strings"
)

// ParseSRT parses a sequence-numbered SRT payload back into a Document.
// Blocks without a valid timestamp line are skipped and reported so emitted
// output can be round-trip checked without aborting on stray content.
func ParseSRT(content, lang string) (*Document, []SkippedRecord) {
	doc := &Document{Language: normalizeLang(lang)}
	var skipped []SkippedRecord
	for i, block := range splitBlocks(content) {
		cue, reason := parseSRTBlock(block)
		if reason != "" {
			skipped = append(skipped, SkippedRecord{Index: i, Reason: reason})
			continue
		}
		doc.Segments = append(doc.Segments, Segment{Cue: cue, Index: len(doc.Segments)})
	}
	return doc, skipped
}

func parseSRTBlock(block string) (Cue, string) {
	lines := strings.Split(block, "\n")
	if len(lines) > 0 && isNumeric(lines[0]) {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return Cue{}, "missing timestamp line"
	}
	cue, err := parseCueTiming(lines[0])
	if err != nil {
		return Cue{}, err.Error()
	}
	cue.Text = strings.Join(lines[1:], "\n")
	return cue, ""
}

func splitBlocks(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil
	}
	raw := strings.Split(trimmed, "\n\n")
	blocks := make([]string, 0, len(raw))
	for _, block := range raw {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, strings.TrimSpace(block))
		}
	}
	return blocks
}

func parseCueTiming(line string) (Cue, error) {
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return Cue{}, errMissingArrow
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return Cue{}, err
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return Cue{}, err
	}
	return Cue{StartMS: start, EndMS: end}, nil
}

func isNumeric(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	_, err := strconv.Atoi(value)
	return err == nil
}
