package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and catalog location configuration.
type Paths struct {
	OutputDir   string `toml:"output_dir"`
	CatalogPath string `toml:"catalog_path"`
	LogDir      string `toml:"log_dir"`
}

// Canvas describes the project canvas drafts are synthesized for.
type Canvas struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
	Ratio  string `toml:"ratio"`
}

// Timeline controls image slot allocation.
type Timeline struct {
	PerImageMS int64   `toml:"per_image_ms"`
	ImageScale float64 `toml:"image_scale"`
}

// Animation controls keyframe synthesis for image segments.
type Animation struct {
	Enabled  bool    `toml:"enabled"`
	Mode     string  `toml:"mode"`
	ScaleMin float64 `toml:"scale_min"`
	ScaleMax float64 `toml:"scale_max"`
	MoveMin  float64 `toml:"move_min"`
	MoveMax  float64 `toml:"move_max"`
}

// Transitions controls the transition materials between image segments.
type Transitions struct {
	Enabled    bool  `toml:"enabled"`
	DurationMS int64 `toml:"duration_ms"`
}

// Effects controls the full-duration video effect track.
type Effects struct {
	Enabled bool `toml:"enabled"`
}

// Audio controls narration volume and fade trims.
type Audio struct {
	Volume    float64 `toml:"volume"`
	FadeInMS  int64   `toml:"fade_in_ms"`
	FadeOutMS int64   `toml:"fade_out_ms"`
}

// Subtitles contains static styling for subtitle text materials.
type Subtitles struct {
	Enabled     bool    `toml:"enabled"`
	Font        string  `toml:"font"`
	Size        int     `toml:"size"`
	Color       string  `toml:"color"`
	BorderColor string  `toml:"border_color"`
	BorderWidth float64 `toml:"border_width"`
	PositionY   float64 `toml:"position_y"`
}

// Output controls optional artifacts written beside the draft.
type Output struct {
	Storyboard bool `toml:"storyboard"`
	Archive    bool `toml:"archive"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for draftsmith.
//
// Configuration sections by subsystem:
//   - Paths: output root, build catalog, log directory
//   - Canvas: project dimensions and frame rate
//   - Timeline: per-image slot duration and image scale
//   - Animation: keyframe synthesis mode and bounds
//   - Transitions: between-segment transition materials
//   - Effects: full-duration video effect track
//   - Audio: narration volume and fades
//   - Subtitles: static text styling
//   - Output: storyboard and archive artifacts
//   - Logging: log format and level
type Config struct {
	Paths       Paths       `toml:"paths"`
	Canvas      Canvas      `toml:"canvas"`
	Timeline    Timeline    `toml:"timeline"`
	Animation   Animation   `toml:"animation"`
	Transitions Transitions `toml:"transitions"`
	Effects     Effects     `toml:"effects"`
	Audio       Audio       `toml:"audio"`
	Subtitles   Subtitles   `toml:"subtitles"`
	Output      Output      `toml:"output"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/draftsmith/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv("DRAFTSMITH_CONFIG"))
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/draftsmith/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("draftsmith.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a build writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if strings.TrimSpace(c.Paths.CatalogPath) != "" {
		if err := os.MkdirAll(filepath.Dir(c.Paths.CatalogPath), 0o755); err != nil {
			return fmt.Errorf("create catalog directory %q: %w", filepath.Dir(c.Paths.CatalogPath), err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
