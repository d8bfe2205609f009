package sentence

import (
	"strings"

	"subweave/internal/captions"
)

// Default flush thresholds. Both are operator policy, not standards, and
// are exposed through configuration.
const (
	DefaultMaxGapMS      int64 = 1500
	DefaultMaxSentenceMS int64 = 12000
)

// DefaultTerminalMarkers are the sentence-terminal suffixes that close an
// open sentence, including the Devanagari danda forms used in verse.
var DefaultTerminalMarkers = []string{".", "?", "!", "।", "॥"}

// Options tune the merge flush policy.
type Options struct {
	// MaxGapMS closes the open sentence when the silence before the next
	// segment exceeds this many milliseconds.
	MaxGapMS int64
	// MaxSentenceMS closes the open sentence when appending the next
	// segment would stretch its span past this many milliseconds.
	MaxSentenceMS int64
	// TerminalMarkers close the open sentence when its accumulated text
	// ends in one of them.
	TerminalMarkers []string
}

func (o Options) withDefaults() Options {
	if o.MaxGapMS <= 0 {
		o.MaxGapMS = DefaultMaxGapMS
	}
	if o.MaxSentenceMS <= 0 {
		o.MaxSentenceMS = DefaultMaxSentenceMS
	}
	if len(o.TerminalMarkers) == 0 {
		o.TerminalMarkers = DefaultTerminalMarkers
	}
	return o
}

// Sentence is a merged caption covering one or more contiguous source
// segments. Sources holds the contributing segment indexes in document
// order.
type Sentence struct {
	captions.Cue
	Sources []int
}

// Merge collapses the document's segments into sentence-level cues. Every
// segment contributes to exactly one sentence; whitespace-only segments are
// absorbed into a neighbor, carrying their start time forward when no
// sentence is open yet.
func Merge(doc *captions.Document, opts Options) []Sentence {
	if doc.Empty() {
		return nil
	}
	o := opts.withDefaults()

	var (
		out   []Sentence
		open  *Sentence
		parts []string

		// Timing carried from leading whitespace-only segments that have
		// no open sentence to extend.
		pendingStart   int64 = -1
		pendingEnd     int64
		pendingSources []int
	)

	flush := func() {
		if open == nil {
			return
		}
		open.Text = strings.Join(parts, " ")
		out = append(out, *open)
		open = nil
		parts = nil
	}

	segments := doc.Segments
	for i, seg := range segments {
		text := strings.TrimSpace(seg.Text)

		if text == "" {
			if open != nil {
				open.Sources = append(open.Sources, seg.Index)
				if seg.EndMS > open.EndMS {
					open.EndMS = seg.EndMS
				}
			} else {
				if pendingStart < 0 {
					pendingStart = seg.StartMS
				}
				pendingEnd = seg.EndMS
				pendingSources = append(pendingSources, seg.Index)
			}
			continue
		}

		if open == nil {
			start := seg.StartMS
			var sources []int
			if pendingStart >= 0 {
				if pendingStart < start {
					start = pendingStart
				}
				sources = append(sources, pendingSources...)
				pendingStart = -1
				pendingSources = nil
			}
			open = &Sentence{
				Cue:     captions.Cue{StartMS: start, EndMS: seg.EndMS},
				Sources: append(sources, seg.Index),
			}
			parts = []string{text}
		} else {
			open.Sources = append(open.Sources, seg.Index)
			if seg.EndMS > open.EndMS {
				open.EndMS = seg.EndMS
			}
			parts = append(parts, text)
		}

		if endsTerminal(text, o.TerminalMarkers) {
			flush()
			continue
		}
		if i == len(segments)-1 {
			flush()
			continue
		}
		next := segments[i+1]
		if next.StartMS-seg.EndMS > o.MaxGapMS {
			flush()
			continue
		}
		if next.EndMS-open.StartMS > o.MaxSentenceMS {
			flush()
		}
	}
	flush()

	// Trailing whitespace-only segments with nothing after them extend the
	// final sentence rather than vanishing.
	if len(pendingSources) > 0 && len(out) > 0 {
		last := &out[len(out)-1]
		last.Sources = append(last.Sources, pendingSources...)
		if pendingEnd > last.EndMS {
			last.EndMS = pendingEnd
		}
	}

	return out
}

// Cues returns the sentences as a plain cue sequence for rendering.
func Cues(sentences []Sentence) []captions.Cue {
	cues := make([]captions.Cue, len(sentences))
	for i, s := range sentences {
		cues[i] = s.Cue
	}
	return cues
}

// Document re-wraps merged sentences as a caption document so they can be
// run back through parsing, merging, or transliteration.
func Document(sentences []Sentence, lang string) *captions.Document {
	doc := &captions.Document{Language: lang}
	for i, s := range sentences {
		doc.Segments = append(doc.Segments, captions.Segment{Cue: s.Cue, Index: i})
	}
	return doc
}

func endsTerminal(text string, markers []string) bool {
	text = strings.TrimRight(text, " \t")
	for _, marker := range markers {
		if marker != "" && strings.HasSuffix(text, marker) {
			return true
		}
	}
	return false
}
