// Package render serializes ordered cue sequences into the supported
// subtitle representations: plain text, SRT, WebVTT, and a structured JSON
// record.
//
// Emission is a pure function of its input; an empty sequence produces a
// minimal well-formed payload for every format, and identical input always
// yields byte-identical output.
package render
