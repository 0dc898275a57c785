package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCanvas()
	c.normalizeTimeline()
	c.normalizeAnimation()
	c.normalizeTransitions()
	c.normalizeAudio()
	c.normalizeSubtitles()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		c.Paths.CatalogPath = defaultCatalogPath
	}
	if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
		return fmt.Errorf("paths.catalog_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCanvas() {
	c.Canvas.Ratio = strings.ToLower(strings.TrimSpace(c.Canvas.Ratio))
	if c.Canvas.Ratio == "" {
		c.Canvas.Ratio = defaultCanvasRatio
	}
	if c.Canvas.FPS == 0 {
		c.Canvas.FPS = defaultCanvasFPS
	}
}

func (c *Config) normalizeTimeline() {
	if c.Timeline.PerImageMS == 0 {
		c.Timeline.PerImageMS = defaultPerImageMS
	}
	if c.Timeline.ImageScale == 0 {
		c.Timeline.ImageScale = defaultImageScale
	}
}

func (c *Config) normalizeAnimation() {
	c.Animation.Mode = strings.ToLower(strings.TrimSpace(c.Animation.Mode))
	if c.Animation.Mode == "" {
		c.Animation.Mode = defaultAnimationMode
	}
	if c.Animation.ScaleMin == 0 && c.Animation.ScaleMax == 0 {
		c.Animation.ScaleMin = defaultScaleMin
		c.Animation.ScaleMax = defaultScaleMax
	}
}

func (c *Config) normalizeTransitions() {
	if c.Transitions.DurationMS == 0 {
		c.Transitions.DurationMS = defaultTransitionMS
	}
}

func (c *Config) normalizeAudio() {
	if c.Audio.Volume == 0 {
		c.Audio.Volume = defaultAudioVolume
	}
	if c.Audio.FadeInMS < 0 {
		c.Audio.FadeInMS = 0
	}
	if c.Audio.FadeOutMS < 0 {
		c.Audio.FadeOutMS = 0
	}
}

func (c *Config) normalizeSubtitles() {
	c.Subtitles.Font = strings.TrimSpace(c.Subtitles.Font)
	if c.Subtitles.Font == "" {
		c.Subtitles.Font = defaultSubtitleFont
	}
	if c.Subtitles.Size == 0 {
		c.Subtitles.Size = defaultSubtitleSize
	}
	c.Subtitles.Color = normalizeHexColor(c.Subtitles.Color, defaultSubtitleColor)
	c.Subtitles.BorderColor = normalizeHexColor(c.Subtitles.BorderColor, defaultSubtitleBorderColor)
	if c.Subtitles.BorderWidth == 0 {
		c.Subtitles.BorderWidth = defaultSubtitleBorderWidth
	}
	if c.Subtitles.PositionY == 0 {
		c.Subtitles.PositionY = defaultSubtitlePositionY
	}
}

func normalizeHexColor(value, fallback string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return fallback
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	return trimmed
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "console", "json", "auto":
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
