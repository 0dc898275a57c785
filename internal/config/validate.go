package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCanvas(); err != nil {
		return err
	}
	if err := c.validateTimeline(); err != nil {
		return err
	}
	if err := c.validateAnimation(); err != nil {
		return err
	}
	if err := c.validateTransitions(); err != nil {
		return err
	}
	if err := c.validateAudio(); err != nil {
		return err
	}
	if err := c.validateSubtitles(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCanvas() error {
	if err := ensurePositiveMap(map[string]int64{
		"canvas.width":  int64(c.Canvas.Width),
		"canvas.height": int64(c.Canvas.Height),
		"canvas.fps":    int64(c.Canvas.FPS),
	}); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTimeline() error {
	if c.Timeline.PerImageMS <= 0 {
		return errors.New("timeline.per_image_ms must be positive")
	}
	if c.Timeline.ImageScale <= 0 {
		return errors.New("timeline.image_scale must be positive")
	}
	return nil
}

func (c *Config) validateAnimation() error {
	if !c.Animation.Enabled {
		return nil
	}
	switch c.Animation.Mode {
	case "random", "alternate":
	default:
		return fmt.Errorf("animation.mode must be \"random\" or \"alternate\", got %q", c.Animation.Mode)
	}
	if c.Animation.ScaleMin <= 0 {
		return errors.New("animation.scale_min must be positive")
	}
	if c.Animation.ScaleMax < c.Animation.ScaleMin {
		return errors.New("animation.scale_max must be >= animation.scale_min")
	}
	if c.Animation.MoveMax < c.Animation.MoveMin {
		return errors.New("animation.move_max must be >= animation.move_min")
	}
	return nil
}

func (c *Config) validateTransitions() error {
	if c.Transitions.Enabled && c.Transitions.DurationMS <= 0 {
		return errors.New("transitions.duration_ms must be positive when transitions.enabled is true")
	}
	return nil
}

func (c *Config) validateAudio() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 2 {
		return errors.New("audio.volume must be between 0 and 2")
	}
	if c.Audio.FadeInMS < 0 {
		return errors.New("audio.fade_in_ms must be >= 0")
	}
	if c.Audio.FadeOutMS < 0 {
		return errors.New("audio.fade_out_ms must be >= 0")
	}
	return nil
}

func (c *Config) validateSubtitles() error {
	if !c.Subtitles.Enabled {
		return nil
	}
	if c.Subtitles.Size <= 0 {
		return errors.New("subtitles.size must be positive when subtitles.enabled is true")
	}
	if c.Subtitles.BorderWidth < 0 {
		return errors.New("subtitles.border_width must be >= 0")
	}
	if c.Subtitles.PositionY < -1 || c.Subtitles.PositionY > 1 {
		return errors.New("subtitles.position_y must be between -1 and 1")
	}
	return nil
}

func ensurePositiveMap(values map[string]int64) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
