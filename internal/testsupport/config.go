// Package testsupport provides shared helpers for package tests: temp-dir
// backed configs, session stores with registered cleanup, and subtitle
// fixture files.
package testsupport

import (
	"path/filepath"
	"testing"

	"subcast/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ExportDir = filepath.Join(base, "exports")
	return &cfg
}
