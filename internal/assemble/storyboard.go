package assemble

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storyboard is the optional human-readable synthesis summary written inside
// the draft folder. The orchestrator fills it from the composition manifest.
type Storyboard struct {
	Canvas StoryboardCanvas  `yaml:"canvas"`
	Audio  []StoryboardClip  `yaml:"audio"`
	Scenes []StoryboardScene `yaml:"scenes"`
}

// StoryboardCanvas mirrors the draft canvas settings.
type StoryboardCanvas struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Ratio  string `yaml:"ratio"`
}

// StoryboardClip is one narration span. Single-file narration produces one
// clip covering the whole timeline; chunked narration produces one per chunk.
type StoryboardClip struct {
	Path       string `yaml:"path"`
	StartUS    int64  `yaml:"start_us"`
	DurationUS int64  `yaml:"duration_us"`
}

// StoryboardScene is one image placement with the choices made for it.
type StoryboardScene struct {
	Image      string `yaml:"image"`
	StartUS    int64  `yaml:"start_us"`
	DurationUS int64  `yaml:"duration_us"`
	Archetype  string `yaml:"archetype,omitempty"`
	Transition string `yaml:"transition,omitempty"`
}

func writeStoryboard(path string, sb *Storyboard) error {
	data, err := yaml.Marshal(sb)
	if err != nil {
		return fmt.Errorf("encode storyboard: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write storyboard: %w", err)
	}
	return nil
}
