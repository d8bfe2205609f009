// Package naming derives filesystem-safe artifact and folder names from
// video metadata: source video-id extraction, title sanitization, and the
// dated output folder convention.
package naming
