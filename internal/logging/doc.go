// Package logging constructs the slog loggers used across subweave.
//
// It provides a compact console handler for interactive use, a JSON handler
// for machine consumption, attr helper aliases, and the standardized field
// names shared by the pipeline, run log, and CLI.
package logging
