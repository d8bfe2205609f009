// Package pipeline runs the caption post-processing flow: parse output from
// the recognition layer, merge captions into sentences, transliterate per
// unit, and emit every requested artifact.
//
// The pipeline is a pure in-memory transformation. Failures local to one
// caption unit or one output format degrade gracefully and are reported as
// warnings; only structurally invalid configuration aborts a run.
package pipeline
