// Package config loads, normalizes, and validates subcast configuration
// from a TOML file with sensible defaults for every field.
package config
