package captions

import (
	"encoding/json"
	"fmt"
	"math"
)

type whisperSegment struct {
	Text  string   `json:"text"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
}

type whisperPayload struct {
	Language string           `json:"language"`
	Segments []whisperSegment `json:"segments"`
}

// ParseWhisperJSON parses a WhisperX-style JSON payload (float seconds per
// segment) into a Document. The lang argument overrides the payload's
// language field when non-empty.
func ParseWhisperJSON(data []byte, lang string) (*Document, []SkippedRecord, error) {
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, nil, fmt.Errorf("parse whisper json: %w", err)
	}
	if lang == "" {
		lang = payload.Language
	}
	records := make([]Record, len(payload.Segments))
	for i, seg := range payload.Segments {
		records[i] = Record{
			StartMS: secondsToMS(seg.Start),
			EndMS:   secondsToMS(seg.End),
			Text:    seg.Text,
		}
	}
	doc, skipped := ParseRecords(records, lang)
	return doc, skipped, nil
}

func secondsToMS(seconds *float64) *int64 {
	if seconds == nil || math.IsNaN(*seconds) || math.IsInf(*seconds, 0) {
		return nil
	}
	ms := int64(math.Round(*seconds * 1000))
	return &ms
}
