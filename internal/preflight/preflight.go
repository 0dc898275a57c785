package preflight

import (
	"context"
	"path/filepath"
	"strings"

	"draftsmith/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config: configuration
// validity, access to every directory a build writes into, and catalog
// availability.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckConfig(cfg),
		CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}

	if path := strings.TrimSpace(cfg.Paths.CatalogPath); path != "" {
		results = append(results,
			CheckDirectoryAccess("Catalog directory", filepath.Dir(path)),
			CheckCatalog(ctx, cfg),
		)
	}

	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
