package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"subweave/internal/config"
	"subweave/internal/logging"
)

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	paths := []string{"stderr"}
	if strings.TrimSpace(cfg.Paths.LogDir) != "" {
		paths = append(paths, filepath.Join(cfg.Paths.LogDir, "subweave.log"))
	}
	return logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: paths,
	})
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// truncate shortens value to max characters, counting runes so multibyte
// text is never cut mid-sequence.
func truncate(value string, max int) string {
	if max <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
