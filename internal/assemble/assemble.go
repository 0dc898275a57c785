package assemble

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"draftsmith/internal/draft"
	"draftsmith/internal/logging"
	"draftsmith/internal/stage"
	"draftsmith/internal/textutil"
)

const (
	contentFileName      = "draft_content.json"
	metaFileName         = "draft_meta_info.json"
	agencyFileName       = "draft_agency_config.json"
	virtualStoreFileName = "draft_virtual_store.json"
	templateFileName     = "template.tmp"
	storyboardFileName   = "storyboard.yaml"
)

// Options selects the optional artifacts written alongside the document.
type Options struct {
	// Storyboard, when non-nil, is serialized to storyboard.yaml inside the
	// draft folder.
	Storyboard *Storyboard
	// Archive zips the finished draft folder to <folder>.zip beside it.
	Archive bool
}

// Layout lists the artifacts Write produced. StoryboardPath and ArchivePath
// stay empty unless requested.
type Layout struct {
	Dir            string
	ContentPath    string
	MetaPath       string
	StoryboardPath string
	ArchivePath    string
}

// Write turns a validated draft into an editor project folder under
// outputRoot. The folder is staged under a temporary name on the same
// filesystem and renamed into place once every asset copy and serialization
// has succeeded, so a failure never leaves a partial folder at the final
// path.
func Write(ctx context.Context, logger *slog.Logger, d *draft.Draft, outputRoot string, opts Options) (*Layout, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := d.Validate(); err != nil {
		return nil, stage.Wrap(stage.ErrValidation, "assemble", "validate draft", "Draft failed validation before write", err)
	}

	folder := textutil.SanitizeFileName(d.Name)
	if folder == "" {
		folder = "draft"
	}
	finalDir := filepath.Join(outputRoot, folder)
	if _, err := os.Stat(finalDir); err == nil {
		return nil, fmt.Errorf("draft folder already exists: %s", finalDir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("inspect destination: %w", err)
	}
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create output root: %w", err)
	}

	staging, err := os.MkdirTemp(outputRoot, "."+folder+".staging-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	// No-op once the staging dir has been renamed away.
	defer os.RemoveAll(staging)

	names, err := relocateAssets(ctx, logger, d, staging)
	if err != nil {
		return nil, err
	}

	content, err := d.EncodeWire()
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}
	if err := os.WriteFile(filepath.Join(staging, contentFileName), content, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", contentFileName, err)
	}
	if err := writeMetaInfo(staging, d, finalDir, outputRoot, time.Now()); err != nil {
		return nil, err
	}
	if err := writeCompanions(staging, finalDir, content, names); err != nil {
		return nil, err
	}
	if opts.Storyboard != nil {
		if err := writeStoryboard(filepath.Join(staging, storyboardFileName), opts.Storyboard); err != nil {
			return nil, err
		}
	}

	if err := os.Rename(staging, finalDir); err != nil {
		return nil, fmt.Errorf("publish draft folder: %w", err)
	}

	layout := &Layout{
		Dir:         finalDir,
		ContentPath: filepath.Join(finalDir, contentFileName),
		MetaPath:    filepath.Join(finalDir, metaFileName),
	}
	if opts.Storyboard != nil {
		layout.StoryboardPath = filepath.Join(finalDir, storyboardFileName)
	}
	if opts.Archive {
		archivePath := finalDir + ".zip"
		if err := archiveFolder(finalDir, archivePath); err != nil {
			return nil, fmt.Errorf("archive draft: %w", err)
		}
		layout.ArchivePath = archivePath
	}

	logger.Info("draft assembled",
		logging.String("draft_id", string(d.ID())),
		logging.String("dir", finalDir),
		logging.Int("assets", len(names)),
		logging.Int64("duration_us", d.Duration),
	)
	return layout, nil
}
