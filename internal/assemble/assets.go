package assemble

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"draftsmith/internal/draft"
	"draftsmith/internal/fileutil"
	"draftsmith/internal/logging"
	"draftsmith/internal/stage"
)

const (
	materialsDirName = "materials"
	copyConcurrency  = 4
)

// relocateAssets copies every file-backed material into materials/ and
// rewrites its registry entry to the placeholder wire path the editor
// resolves against the draft folder. Returns the copied filenames in
// material insertion order.
func relocateAssets(ctx context.Context, logger *slog.Logger, d *draft.Draft, stagingDir string) ([]string, error) {
	assets := d.Registry.Assets()
	if len(assets) == 0 {
		return nil, nil
	}

	materialsDir := filepath.Join(stagingDir, materialsDirName)
	if err := os.MkdirAll(materialsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create materials dir: %w", err)
	}

	// Names are allocated and registry entries rewritten serially; the
	// registry is not safe for concurrent mutation. Only the byte copies
	// run in parallel, and a source file referenced by several materials
	// is copied once.
	type copyJob struct {
		src string
		dst string
	}
	var (
		jobs   []copyJob
		names  []string
		bySrc  = make(map[string]string)
		usedUp = make(map[string]bool)
	)
	for _, asset := range assets {
		name, seen := bySrc[asset.SourcePath]
		if !seen {
			name = allocateName(usedUp, filepath.Base(asset.SourcePath))
			bySrc[asset.SourcePath] = name
			names = append(names, name)
			jobs = append(jobs, copyJob{
				src: asset.SourcePath,
				dst: filepath.Join(materialsDir, name),
			})
		}
		// The editor joins the placeholder with forward slashes on every
		// platform.
		wirePath := draft.PathPlaceholder + "/" + materialsDirName + "/" + name
		if err := d.Registry.SetAssetLocation(asset.ID, name, wirePath); err != nil {
			return nil, err
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(copyConcurrency)
	for _, job := range jobs {
		job := job
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			if err := fileutil.CopyFileVerified(job.src, job.dst); err != nil {
				return stage.Wrap(stage.ErrAssetCopy, "assemble", "copy asset",
					fmt.Sprintf("Failed to copy %s", job.src), err)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("assets relocated",
		logging.Int("materials", len(assets)),
		logging.Int("files", len(jobs)),
	)
	return names, nil
}

// allocateName keeps the first occurrence of a filename and gives later
// collisions a numeric suffix before the extension.
func allocateName(used map[string]bool, base string) string {
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "asset"
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	name := base
	for i := 1; used[name]; i++ {
		name = fmt.Sprintf("%s-%d%s", stem, i, ext)
	}
	used[name] = true
	return name
}
