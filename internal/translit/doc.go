// Package translit converts Roman-script phonetic caption text into an
// alternate script by trying a ranked list of transliteration schemes.
//
// The character mapping itself lives behind the Engine interface; this
// package owns scheme ordering, the validity check that decides whether a
// scheme's output is usable, and the degraded best-effort fallback when no
// scheme passes. Every call is pure and independent, so documents can be
// converted with a bounded worker pool.
package translit
