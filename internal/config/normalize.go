package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMerge()
	c.normalizeTransliteration()
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutRoot) == "" {
		c.Paths.OutRoot = defaultOutRoot
	}
	if c.Paths.OutRoot, err = expandPath(c.Paths.OutRoot); err != nil {
		return fmt.Errorf("paths.out_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMerge() {
	if c.Merge.MaxGapMS == 0 {
		c.Merge.MaxGapMS = defaultMaxGapMS
	}
	if c.Merge.MaxSentenceMS == 0 {
		c.Merge.MaxSentenceMS = defaultMaxSentenceMS
	}
	markers := make([]string, 0, len(c.Merge.TerminalMarkers))
	for _, marker := range c.Merge.TerminalMarkers {
		if trimmed := strings.TrimSpace(marker); trimmed != "" {
			markers = append(markers, trimmed)
		}
	}
	c.Merge.TerminalMarkers = markers
}

func (c *Config) normalizeTransliteration() {
	order := make([]string, 0, len(c.Transliteration.SchemeOrder))
	for _, scheme := range c.Transliteration.SchemeOrder {
		if trimmed := strings.ToLower(strings.TrimSpace(scheme)); trimmed != "" {
			order = append(order, trimmed)
		}
	}
	c.Transliteration.SchemeOrder = order
	c.Transliteration.Command = strings.TrimSpace(c.Transliteration.Command)
	c.Transliteration.TargetScript = strings.ToLower(strings.TrimSpace(c.Transliteration.TargetScript))
	if c.Transliteration.TargetScript == "" {
		c.Transliteration.TargetScript = defaultTargetScript
	}
	if c.Transliteration.MaxResidualRatio == 0 {
		c.Transliteration.MaxResidualRatio = defaultMaxResidualRatio
	}
	if c.Transliteration.Workers == 0 {
		c.Transliteration.Workers = defaultTranslitWorkers
	}
}

func (c *Config) normalizeOutput() {
	formats := make([]string, 0, len(c.Output.Formats))
	seen := make(map[string]struct{}, len(c.Output.Formats))
	for _, format := range c.Output.Formats {
		trimmed := strings.ToLower(strings.TrimSpace(format))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		formats = append(formats, trimmed)
	}
	c.Output.Formats = formats
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
