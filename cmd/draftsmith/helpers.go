package main

import (
	"fmt"
	"strconv"
	"strings"

	"draftsmith/internal/config"
	"draftsmith/internal/synth"
)

// parseChunkSpec parses one --chunk value of the form
// path:start_ms:duration_ms. The path may itself contain colons, so the
// numeric fields are taken from the right.
func parseChunkSpec(value string) (synth.Chunk, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 3 {
		return synth.Chunk{}, fmt.Errorf("chunk %q: want path:start_ms:duration_ms", value)
	}

	durationMS, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return synth.Chunk{}, fmt.Errorf("chunk %q: parse duration: %w", value, err)
	}
	startMS, err := strconv.ParseInt(parts[len(parts)-2], 10, 64)
	if err != nil {
		return synth.Chunk{}, fmt.Errorf("chunk %q: parse start: %w", value, err)
	}
	path := strings.Join(parts[:len(parts)-2], ":")
	if strings.TrimSpace(path) == "" {
		return synth.Chunk{}, fmt.Errorf("chunk %q: empty path", value)
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return synth.Chunk{}, fmt.Errorf("chunk %q: %w", value, err)
	}

	return synth.Chunk{
		Path:     expanded,
		Start:    startMS * 1000,
		Duration: durationMS * 1000,
	}, nil
}

// formatDurationUS renders a microsecond duration as seconds with one
// decimal, e.g. "12.5s".
func formatDurationUS(us int64) string {
	return fmt.Sprintf("%.1fs", float64(us)/1_000_000)
}

func statusLabel(passed bool) string {
	if passed {
		return "✅ pass"
	}
	return "❌ fail"
}
