package captions

import (
	"fmt"
	"strings"
)

// Record is one raw timestamped entry handed over by the recognition layer.
// Time bounds are pointers so a missing field is distinguishable from zero.
type Record struct {
	StartMS *int64
	EndMS   *int64
	Text    string
}

// SkippedRecord reports a malformed input record that was dropped during
// parsing. Index is the record's position in the raw input, not the
// resulting document.
type SkippedRecord struct {
	Index  int
	Reason string
}

func (s SkippedRecord) String() string {
	return fmt.Sprintf("record %d: %s", s.Index, s.Reason)
}

// ParseRecords builds a Document from raw records. Records with missing or
// inverted time bounds are skipped and reported rather than failing the
// whole document. An empty input yields an empty Document.
func ParseRecords(records []Record, lang string) (*Document, []SkippedRecord) {
	doc := &Document{Language: normalizeLang(lang)}
	var skipped []SkippedRecord
	for i, rec := range records {
		if rec.StartMS == nil || rec.EndMS == nil {
			skipped = append(skipped, SkippedRecord{Index: i, Reason: "missing time bound"})
			continue
		}
		start, end := *rec.StartMS, *rec.EndMS
		if start < 0 {
			skipped = append(skipped, SkippedRecord{Index: i, Reason: fmt.Sprintf("negative start %dms", start)})
			continue
		}
		if end < start {
			skipped = append(skipped, SkippedRecord{Index: i, Reason: fmt.Sprintf("end %dms before start %dms", end, start)})
			continue
		}
		doc.Segments = append(doc.Segments, Segment{
			Cue:   Cue{StartMS: start, EndMS: end, Text: rec.Text},
			Index: len(doc.Segments),
		})
	}
	return doc, skipped
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "auto"
	}
	return lang
}
