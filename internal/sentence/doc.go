// Package sentence merges adjacent short captions into sentence-level cues.
//
// The merger scans a caption document in order and closes the open sentence
// on terminal punctuation, on a silence gap, when the sentence span would
// grow past a limit, or at the end of the document. Whitespace-only
// segments contribute timing but never text, so no time range is dropped.
// Feeding merged output back through Merge with the same options is a
// no-op.
package sentence
