package synth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"draftsmith/internal/compose"
	"draftsmith/internal/config"
	"draftsmith/internal/mediaprobe"
	"draftsmith/internal/srt"
	"draftsmith/internal/stage"
)

// narration is the resolved audio side of a request: either a single probed
// file or a validated chunk list, plus the total timeline duration.
type narration struct {
	audio       *compose.AudioAsset
	chunks      []compose.Chunk
	duration    int64
	titleSource string
}

func resolveNarration(req Request) (*narration, error) {
	hasAudio := strings.TrimSpace(req.AudioPath) != ""
	if hasAudio == (len(req.Chunks) > 0) {
		return nil, stage.Wrap(stage.ErrValidation, "synth", "resolve narration",
			"Narration must be a single audio file or a chunk list, not both or neither", nil)
	}

	if hasAudio {
		if err := statFile(req.AudioPath); err != nil {
			return nil, stage.Wrap(stage.ErrInputNotFound, "synth", "resolve narration",
				fmt.Sprintf("Audio file %s is not readable", req.AudioPath), err)
		}
		duration, err := mediaprobe.AudioDuration(req.AudioPath)
		if err != nil {
			return nil, stage.Wrap(stage.ErrNoAssets, "synth", "probe audio",
				fmt.Sprintf("Could not determine duration of %s", req.AudioPath), err)
		}
		if duration <= 0 {
			return nil, stage.Wrap(stage.ErrNoAssets, "synth", "probe audio",
				fmt.Sprintf("Audio file %s has zero duration", req.AudioPath), nil)
		}
		return &narration{
			audio:       &compose.AudioAsset{Path: req.AudioPath, Duration: duration},
			duration:    duration,
			titleSource: req.AudioPath,
		}, nil
	}

	chunks := make([]compose.Chunk, len(req.Chunks))
	var total int64
	for i, chunk := range req.Chunks {
		if err := statFile(chunk.Path); err != nil {
			return nil, stage.Wrap(stage.ErrInputNotFound, "synth", "resolve narration",
				fmt.Sprintf("Narration chunk %s is not readable", chunk.Path), err)
		}
		chunks[i] = compose.Chunk{Path: chunk.Path, Start: chunk.Start, Duration: chunk.Duration}
		if end := chunk.Start + chunk.Duration; end > total {
			total = end
		}
	}
	if total <= 0 {
		return nil, stage.Wrap(stage.ErrNoAssets, "synth", "resolve narration",
			"Narration chunks cover no playable time", nil)
	}
	return &narration{chunks: chunks, duration: total, titleSource: req.Chunks[0].Path}, nil
}

// imagePool is the probed image set a draft draws from. paths keeps the pool
// order deterministic; assets indexes probe results by path.
type imagePool struct {
	paths  []string
	assets map[string]compose.ImageAsset
}

func resolveImages(req Request) (*imagePool, error) {
	hasDir := strings.TrimSpace(req.ImageDir) != ""
	if hasDir && len(req.ImagePaths) > 0 {
		return nil, stage.Wrap(stage.ErrValidation, "synth", "resolve images",
			"Images must come from a directory or an explicit list, not both", nil)
	}

	var paths []string
	switch {
	case hasDir:
		entries, err := os.ReadDir(req.ImageDir)
		if err != nil {
			return nil, stage.Wrap(stage.ErrInputNotFound, "synth", "resolve images",
				fmt.Sprintf("Image directory %s is not readable", req.ImageDir), err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !mediaprobe.IsImagePath(entry.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(req.ImageDir, entry.Name()))
		}
		if len(paths) == 0 {
			return nil, stage.Wrap(stage.ErrNoAssets, "synth", "resolve images",
				fmt.Sprintf("No supported images under %s", req.ImageDir), nil)
		}
	case len(req.ImagePaths) > 0:
		for _, path := range req.ImagePaths {
			if !mediaprobe.IsImagePath(path) {
				return nil, stage.Wrap(stage.ErrNoAssets, "synth", "resolve images",
					fmt.Sprintf("%s is not a supported image", path), nil)
			}
			paths = append(paths, path)
		}
	default:
		return nil, stage.Wrap(stage.ErrValidation, "synth", "resolve images",
			"An image directory or image list is required", nil)
	}

	pool := &imagePool{paths: paths, assets: make(map[string]compose.ImageAsset, len(paths))}
	for _, path := range paths {
		width, height, err := mediaprobe.ImageSize(path)
		if err != nil {
			return nil, stage.Wrap(stage.ErrNoAssets, "synth", "probe images",
				fmt.Sprintf("Image %s is not decodable", path), err)
		}
		pool.assets[path] = compose.ImageAsset{Path: path, Width: width, Height: height}
	}
	return pool, nil
}

// resolveSubtitles parses the requested subtitle source. Malformed blocks
// come back as issues; only an unreadable file is a hard failure.
func resolveSubtitles(cfg *config.Config, req Request) ([]srt.Cue, []srt.Issue, error) {
	if !cfg.Subtitles.Enabled {
		return nil, nil, nil
	}
	hasPath := strings.TrimSpace(req.SubtitlePath) != ""
	hasText := strings.TrimSpace(req.SubtitleText) != ""
	switch {
	case hasPath && hasText:
		return nil, nil, stage.Wrap(stage.ErrValidation, "synth", "resolve subtitles",
			"Subtitles must come from a file or inline text, not both", nil)
	case hasPath:
		cues, issues, err := srt.ParseFile(req.SubtitlePath)
		if err != nil {
			return nil, nil, stage.Wrap(stage.ErrInputNotFound, "synth", "resolve subtitles",
				fmt.Sprintf("Subtitle file %s is not readable", req.SubtitlePath), err)
		}
		return cues, issues, nil
	case hasText:
		cues, issues := srt.Parse(req.SubtitleText)
		return cues, issues, nil
	default:
		return nil, nil, nil
	}
}

func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
