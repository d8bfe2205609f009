package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"subweave/internal/captions"
)

// Format identifies one output representation. The set is closed; Emit
// matches over it exhaustively.
type Format string

const (
	FormatText Format = "text"
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatJSON Format = "json"
)

// Formats lists every supported format in emission order.
var Formats = []Format{FormatText, FormatSRT, FormatVTT, FormatJSON}

// ErrUnsupportedFormat is returned for format names outside the supported
// set. It fails only the offending emission, never sibling formats.
type ErrUnsupportedFormat struct {
	Format Format
}

func (e ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported output format %q", string(e.Format))
}

// ParseFormat validates a configured format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatText, FormatSRT, FormatVTT, FormatJSON:
		return f, nil
	default:
		return "", ErrUnsupportedFormat{Format: f}
	}
}

// Extension returns the file suffix conventionally used for the format.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatSRT:
		return ".srt"
	case FormatVTT:
		return ".vtt"
	case FormatJSON:
		return ".json"
	default:
		return ""
	}
}

// Emit renders the cue sequence in the requested format. An empty sequence
// yields a zero-unit but well-formed payload.
func Emit(cues []captions.Cue, format Format) (string, error) {
	switch format {
	case FormatText:
		return emitText(cues), nil
	case FormatSRT:
		return emitSRT(cues), nil
	case FormatVTT:
		return emitVTT(cues), nil
	case FormatJSON:
		return emitJSON(cues)
	default:
		return "", ErrUnsupportedFormat{Format: format}
	}
}

func emitText(cues []captions.Cue) string {
	var sb strings.Builder
	for _, cue := range cues {
		sb.WriteString(cue.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func emitSRT(cues []captions.Cue) string {
	var sb strings.Builder
	// Numbering restarts at 1 for every emission regardless of source
	// indexes.
	for i, cue := range cues {
		fmt.Fprintf(&sb, "%d\n", i+1)
		fmt.Fprintf(&sb, "%s --> %s\n", captions.FormatSRTTimestamp(cue.StartMS), captions.FormatSRTTimestamp(cue.EndMS))
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func emitVTT(cues []captions.Cue) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for _, cue := range cues {
		fmt.Fprintf(&sb, "%s --> %s\n", captions.FormatVTTTimestamp(cue.StartMS), captions.FormatVTTTimestamp(cue.EndMS))
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

type jsonSegment struct {
	StartMS int64  `json:"start_ms"`
	EndMS   int64  `json:"end_ms"`
	Text    string `json:"text"`
}

type jsonPayload struct {
	Segments []jsonSegment `json:"segments"`
}

func emitJSON(cues []captions.Cue) (string, error) {
	payload := jsonPayload{Segments: make([]jsonSegment, len(cues))}
	for i, cue := range cues {
		payload.Segments[i] = jsonSegment{StartMS: cue.StartMS, EndMS: cue.EndMS, Text: cue.Text}
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal segments: %w", err)
	}
	return string(data) + "\n", nil
}
