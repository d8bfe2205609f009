// Package config loads, normalizes, and validates subweave configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and rejects structurally invalid settings
// such as an empty transliteration scheme order or an unknown output
// format. Always obtain settings through this package so downstream code
// receives sanitized paths and clear validation errors.
package config
