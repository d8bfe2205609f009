// Package language normalizes the language tags attached to caption
// documents.
//
// Recognition engines hand back two-letter codes, full language words, or
// "auto" when detection was delegated; everything funnels through here so
// the pipeline, run log, and output naming all see one canonical form.
package language
