package synth

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"draftsmith/internal/assemble"
	"draftsmith/internal/compose"
	"draftsmith/internal/config"
	"draftsmith/internal/logging"
	"draftsmith/internal/srt"
	"draftsmith/internal/stage"
	"draftsmith/internal/textutil"
	"draftsmith/internal/timeline"
)

// Chunk is one precomputed narration span in a merged-audio timeline. Start
// and Duration are microseconds; together the chunks must tile the narration
// from zero without gaps or overlaps.
type Chunk struct {
	Path     string
	Start    int64
	Duration int64
}

// Request describes one synthesis run. Exactly one of AudioPath or Chunks
// supplies the narration; exactly one of ImageDir or ImagePaths supplies the
// image pool. The toggle pointers override the configured value when non-nil.
type Request struct {
	AudioPath string
	Chunks    []Chunk

	ImageDir   string
	ImagePaths []string

	SubtitlePath string
	SubtitleText string

	// Name overrides the title derived from the narration filename.
	Name string
	// Seed fixes the random structure; zero draws a time-based seed.
	Seed int64
	// OutputRoot overrides the configured output directory.
	OutputRoot string

	Animation   *bool
	Transitions *bool
	Effects     *bool
	Subtitles   *bool
	Storyboard  *bool
	Archive     *bool
}

// Result reports what one synthesis run produced. StoryboardPath and
// ArchivePath stay empty unless those artifacts were requested.
type Result struct {
	DraftID        string
	Name           string
	OutputDir      string
	ContentPath    string
	MetaPath       string
	StoryboardPath string
	ArchivePath    string
	Seed           int64
	Duration       int64
	SegmentCount   int
	MaterialCount  int
	ImageCount     int
	SubtitleIssues []srt.Issue
}

// Synthesize runs one full build: input probing, timeline planning, track
// composition, and draft assembly. The returned Result points at everything
// written to disk; on error nothing remains at the final draft path.
func Synthesize(ctx context.Context, logger *slog.Logger, cfg *config.Config, req Request) (*Result, error) {
	log := logging.NewComponentLogger(logger, "synth")
	effective := overrideConfig(cfg, req)

	narr, err := resolveNarration(req)
	if err != nil {
		return nil, err
	}
	pool, err := resolveImages(req)
	if err != nil {
		return nil, err
	}
	cues, issues, err := resolveSubtitles(effective, req)
	if err != nil {
		return nil, err
	}
	for _, issue := range issues {
		log.Warn("subtitle block skipped",
			logging.Int("block", issue.Block),
			logging.String("reason", issue.Reason),
		)
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	slots, err := timeline.Plan(narr.duration, effective.Timeline.PerImageMS*1000)
	if err != nil {
		return nil, stage.Wrap(stage.ErrValidation, "synth", "plan timeline", "Could not plan image slots", err)
	}
	picks, err := timeline.SelectImages(pool.paths, len(slots), rng)
	if err != nil {
		return nil, stage.Wrap(stage.ErrNoAssets, "synth", "select images", "Could not fill image slots", err)
	}
	images := make([]compose.ImageAsset, len(picks))
	for i, path := range picks {
		images[i] = pool.assets[path]
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = textutil.TitleFromPath(narr.titleSource)
	}

	log.Info("synthesizing draft",
		logging.String("name", name),
		logging.Int64("duration_us", narr.duration),
		logging.Int("slots", len(slots)),
		logging.Int("images", len(pool.paths)),
		logging.Int("cues", len(cues)),
		logging.Int64("seed", seed),
	)

	d, manifest, err := compose.NewBuilder(effective, rng).Build(compose.Input{
		Name:     name,
		Duration: narr.duration,
		Slots:    slots,
		Images:   images,
		Audio:    narr.audio,
		Chunks:   narr.chunks,
		Cues:     cues,
	})
	if err != nil {
		return nil, stage.Wrap(stage.ErrValidation, "synth", "compose tracks", "Could not compose draft tracks", err)
	}

	outputRoot := strings.TrimSpace(req.OutputRoot)
	if outputRoot == "" {
		outputRoot = effective.Paths.OutputDir
	}

	opts := assemble.Options{Archive: effective.Output.Archive}
	if effective.Output.Storyboard {
		opts.Storyboard = storyboardFor(effective, narr, manifest)
	}

	layout, err := assemble.Write(ctx, log, d, outputRoot, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		DraftID:        string(d.ID()),
		Name:           name,
		OutputDir:      layout.Dir,
		ContentPath:    layout.ContentPath,
		MetaPath:       layout.MetaPath,
		StoryboardPath: layout.StoryboardPath,
		ArchivePath:    layout.ArchivePath,
		Seed:           seed,
		Duration:       narr.duration,
		SegmentCount:   d.SegmentCount(),
		MaterialCount:  d.Registry.MaterialCount(),
		ImageCount:     len(pool.paths),
		SubtitleIssues: issues,
	}, nil
}

// overrideConfig copies cfg and applies the request's toggles, so one
// request never mutates the process-wide configuration.
func overrideConfig(cfg *config.Config, req Request) *config.Config {
	c := *cfg
	if req.Animation != nil {
		c.Animation.Enabled = *req.Animation
	}
	if req.Transitions != nil {
		c.Transitions.Enabled = *req.Transitions
	}
	if req.Effects != nil {
		c.Effects.Enabled = *req.Effects
	}
	if req.Subtitles != nil {
		c.Subtitles.Enabled = *req.Subtitles
	}
	if req.Storyboard != nil {
		c.Output.Storyboard = *req.Storyboard
	}
	if req.Archive != nil {
		c.Output.Archive = *req.Archive
	}
	return &c
}
