package config

import (
	"errors"
	"fmt"
	"strings"

	"subweave/internal/render"
	"subweave/internal/translit"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMerge(); err != nil {
		return err
	}
	if err := c.validateTransliteration(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMerge() error {
	if c.Merge.MaxGapMS < 0 {
		return errors.New("merge.max_gap_ms must not be negative")
	}
	if c.Merge.MaxSentenceMS < 0 {
		return errors.New("merge.max_sentence_ms must not be negative")
	}
	return nil
}

func (c *Config) validateTransliteration() error {
	if !c.Transliteration.Enabled {
		return nil
	}
	if _, err := translit.ParseSchemes(c.Transliteration.SchemeOrder); err != nil {
		return fmt.Errorf("transliteration.scheme_order: %w", err)
	}
	if c.Transliteration.Command == "" {
		return errors.New("transliteration.command must be set when transliteration.enabled is true")
	}
	if c.Transliteration.MaxResidualRatio < 0 || c.Transliteration.MaxResidualRatio > 1 {
		return errors.New("transliteration.max_residual_ratio must be between 0 and 1")
	}
	if c.Transliteration.Workers < 0 {
		return errors.New("transliteration.workers must not be negative")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if len(c.Output.Formats) == 0 {
		return errors.New("output.formats must list at least one format")
	}
	for _, format := range c.Output.Formats {
		if _, err := render.ParseFormat(format); err != nil {
			return fmt.Errorf("output.formats: %w (supported: %s)", err, supportedFormats())
		}
	}
	return nil
}

func supportedFormats() string {
	names := make([]string, len(render.Formats))
	for i, format := range render.Formats {
		names[i] = string(format)
	}
	return strings.Join(names, ", ")
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
