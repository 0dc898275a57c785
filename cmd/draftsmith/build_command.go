package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"draftsmith/internal/catalog"
	"draftsmith/internal/config"
	"draftsmith/internal/logging"
	"draftsmith/internal/preflight"
	"draftsmith/internal/synth"
)

// buildSummary is the JSON view of a finished build.
type buildSummary struct {
	DraftID    string `json:"draft_id"`
	Name       string `json:"name"`
	OutputDir  string `json:"output_dir"`
	Content    string `json:"content_path"`
	Meta       string `json:"meta_path"`
	Storyboard string `json:"storyboard_path,omitempty"`
	Archive    string `json:"archive_path,omitempty"`
	DurationUS int64  `json:"duration_us"`
	Segments   int    `json:"segments"`
	Materials  int    `json:"materials"`
	Images     int    `json:"images"`
	Seed       int64  `json:"seed"`
	Skipped    int    `json:"skipped_subtitle_blocks"`
}

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var (
		audioPath  string
		imageDir   string
		imageFiles []string
		srtPath    string
		name       string
		seed       int64
		chunkSpecs []string
		outputDir  string
		jsonOut    bool

		transitions bool
		animation   bool
		effects     bool
		subtitles   bool
		storyboard  bool
		archive     bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Synthesize a draft project from narration audio and images",
		Long: `Synthesize an editor-loadable draft folder from a narration track and an
image pool. Slot planning, image order, animations, transitions, and the
optional effect are drawn from the seed, so repeating a build with the same
inputs and --seed reproduces the same structure.

Examples:
  draftsmith build --audio narration.mp3 --images ./stills
  draftsmith build --audio narration.mp3 --images ./stills --srt narration.srt --seed 42
  draftsmith build --chunk intro.mp3:0:4000 --chunk body.mp3:4000:56000 --images ./stills
  draftsmith build --audio narration.mp3 --images ./stills --storyboard --archive --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			if !preflight.AllPassed(results) {
				fmt.Fprintln(cmd.ErrOrStderr(), renderPreflightTable(results))
				return fmt.Errorf("preflight checks failed; run `draftsmith doctor` for details")
			}

			req := synth.Request{
				Name: strings.TrimSpace(name),
				Seed: seed,
			}
			if strings.TrimSpace(audioPath) != "" {
				req.AudioPath, err = config.ExpandPath(audioPath)
				if err != nil {
					return fmt.Errorf("resolve audio path: %w", err)
				}
			}
			for _, spec := range chunkSpecs {
				chunk, err := parseChunkSpec(spec)
				if err != nil {
					return err
				}
				req.Chunks = append(req.Chunks, chunk)
			}
			if strings.TrimSpace(imageDir) != "" {
				req.ImageDir, err = config.ExpandPath(imageDir)
				if err != nil {
					return fmt.Errorf("resolve image directory: %w", err)
				}
			}
			for _, file := range imageFiles {
				expanded, err := config.ExpandPath(file)
				if err != nil {
					return fmt.Errorf("resolve image path: %w", err)
				}
				req.ImagePaths = append(req.ImagePaths, expanded)
			}
			if strings.TrimSpace(srtPath) != "" {
				req.SubtitlePath, err = config.ExpandPath(srtPath)
				if err != nil {
					return fmt.Errorf("resolve subtitle path: %w", err)
				}
			}

			outputRoot := cfg.Paths.OutputDir
			if strings.TrimSpace(outputDir) != "" {
				outputRoot, err = config.ExpandPath(outputDir)
				if err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
				if err := os.MkdirAll(outputRoot, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
				req.OutputRoot = outputRoot
			}

			flags := cmd.Flags()
			if flags.Changed("transitions") {
				req.Transitions = &transitions
			}
			if flags.Changed("animation") {
				req.Animation = &animation
			}
			if flags.Changed("effects") {
				req.Effects = &effects
			}
			if flags.Changed("subtitles") {
				req.Subtitles = &subtitles
			}
			if flags.Changed("storyboard") {
				req.Storyboard = &storyboard
			}
			if flags.Changed("archive") {
				req.Archive = &archive
			}

			// One build per output root at a time; concurrent runs would race
			// on staging folder names.
			lock := flock.New(filepath.Join(outputRoot, ".build.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire build lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another draftsmith build is already writing to %s", outputRoot)
			}
			defer func() {
				_ = lock.Unlock()
			}()

			result, err := synth.Synthesize(cmd.Context(), logger, cfg, req)
			if err != nil {
				return err
			}

			recordBuild(cmd, logger, cfg, req, result)

			if jsonOut {
				return writeJSON(cmd, summarizeBuild(result))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Draft synthesized: %s\n\n", result.OutputDir)
			fmt.Fprintln(cmd.OutOrStdout(), renderBuildTable(result))
			for _, issue := range result.SubtitleIssues {
				fmt.Fprintf(cmd.OutOrStdout(), "⚠️  subtitle block %d skipped: %s\n", issue.Block, issue.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&audioPath, "audio", "", "Narration audio file (mp3, wav, flac, m4a)")
	cmd.Flags().StringArrayVar(&chunkSpecs, "chunk", nil, "Narration chunk as path:start_ms:duration_ms (repeatable)")
	cmd.Flags().StringVar(&imageDir, "images", "", "Directory of images to place on the timeline")
	cmd.Flags().StringArrayVar(&imageFiles, "image", nil, "Explicit image file (repeatable, alternative to --images)")
	cmd.Flags().StringVar(&srtPath, "srt", "", "SubRip subtitle file")
	cmd.Flags().StringVar(&name, "name", "", "Draft name (default: derived from the narration filename)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible structure (0 draws one)")
	cmd.Flags().StringVar(&outputDir, "output", "", "Output directory (default: configured output_dir)")
	cmd.Flags().BoolVar(&transitions, "transitions", true, "Place transitions between image segments")
	cmd.Flags().BoolVar(&animation, "animation", true, "Synthesize motion keyframes on image segments")
	cmd.Flags().BoolVar(&effects, "effects", false, "Add a full-duration video effect track")
	cmd.Flags().BoolVar(&subtitles, "subtitles", true, "Render subtitle cues onto a text track")
	cmd.Flags().BoolVar(&storyboard, "storyboard", false, "Write storyboard.yaml inside the draft folder")
	cmd.Flags().BoolVar(&archive, "archive", false, "Zip the finished draft folder")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the summary as JSON")

	return cmd
}

func summarizeBuild(result *synth.Result) buildSummary {
	return buildSummary{
		DraftID:    result.DraftID,
		Name:       result.Name,
		OutputDir:  result.OutputDir,
		Content:    result.ContentPath,
		Meta:       result.MetaPath,
		Storyboard: result.StoryboardPath,
		Archive:    result.ArchivePath,
		DurationUS: result.Duration,
		Segments:   result.SegmentCount,
		Materials:  result.MaterialCount,
		Images:     result.ImageCount,
		Seed:       result.Seed,
		Skipped:    len(result.SubtitleIssues),
	}
}

func renderBuildTable(result *synth.Result) string {
	pairs := [][2]string{
		{"Draft ID", result.DraftID},
		{"Name", result.Name},
		{"Output", result.OutputDir},
		{"Duration", formatDurationUS(result.Duration)},
		{"Segments", strconv.Itoa(result.SegmentCount)},
		{"Materials", strconv.Itoa(result.MaterialCount)},
		{"Images", strconv.Itoa(result.ImageCount)},
		{"Seed", strconv.FormatInt(result.Seed, 10)},
	}
	if result.StoryboardPath != "" {
		pairs = append(pairs, [2]string{"Storyboard", result.StoryboardPath})
	}
	if result.ArchivePath != "" {
		pairs = append(pairs, [2]string{"Archive", result.ArchivePath})
	}
	return renderKeyValues(pairs)
}

// recordBuild appends the finished build to the catalog. The draft is
// already on disk, so catalog trouble only warns.
func recordBuild(cmd *cobra.Command, logger *slog.Logger, cfg *config.Config, req synth.Request, result *synth.Result) {
	store, err := catalog.Open(cfg)
	if err != nil {
		logger.Warn("open catalog", logging.Args(logging.Error(err))...)
		return
	}
	defer store.Close()

	audio := req.AudioPath
	if audio == "" && len(req.Chunks) > 0 {
		audio = req.Chunks[0].Path
	}
	entry := catalog.Entry{
		DraftID:      result.DraftID,
		Name:         result.Name,
		OutputDir:    result.OutputDir,
		AudioPath:    audio,
		ImageCount:   result.ImageCount,
		SegmentCount: result.SegmentCount,
		DurationUS:   result.Duration,
		Seed:         result.Seed,
	}
	if _, err := store.Record(cmd.Context(), entry); err != nil {
		logger.Warn("record build in catalog", logging.Args(logging.Error(err))...)
	}
}
