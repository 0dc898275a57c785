package testsupport

import (
	"path/filepath"
	"testing"

	"draftsmith/internal/config"
)

// ConfigOption mutates the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose path fields point into a unique temp
// directory per test. Everything else keeps repository defaults.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "drafts")
	cfg.Paths.CatalogPath = filepath.Join(base, "catalog.db")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
