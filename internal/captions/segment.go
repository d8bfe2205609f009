package captions

import "strings"

// Cue is one timestamped span of caption text. Times are milliseconds from
// the start of the media.
type Cue struct {
	StartMS int64
	EndMS   int64
	Text    string
}

// Blank reports whether the cue carries no visible text.
func (c Cue) Blank() bool {
	return strings.TrimSpace(c.Text) == ""
}

// DurationMS returns the span covered by the cue.
func (c Cue) DurationMS() int64 {
	return c.EndMS - c.StartMS
}

// Segment is one atomic unit of recognized speech within a Document.
type Segment struct {
	Cue
	// Index is the segment's position within the owning Document.
	Index int
}

// Document is an ordered sequence of segments plus the language they were
// recognized in ("auto" when detection was left to the engine). Documents
// are built once by the parsers and never mutated afterwards.
type Document struct {
	Language string
	Segments []Segment
}

// Empty reports whether the document contains no segments.
func (d *Document) Empty() bool {
	return d == nil || len(d.Segments) == 0
}

// Cues returns the document's segments as a plain cue sequence.
func (d *Document) Cues() []Cue {
	if d == nil {
		return nil
	}
	cues := make([]Cue, len(d.Segments))
	for i, seg := range d.Segments {
		cues[i] = seg.Cue
	}
	return cues
}
