// Package captions defines the timestamped caption model shared by the
// processing pipeline.
//
// It parses structured recognition output (WhisperX-style JSON) into an
// immutable Document of millisecond-resolution segments, skipping malformed
// records instead of failing the whole document, and re-parses the SRT and
// WebVTT renderings produced by the render package so round-trips can be
// verified exactly.
package captions
