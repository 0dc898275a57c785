package config

const (
	defaultOutputDir   = "~/.local/share/draftsmith/drafts"
	defaultCatalogPath = "~/.local/share/draftsmith/catalog.db"
	defaultLogDir      = "~/.local/share/draftsmith/logs"

	defaultCanvasWidth  = 1920
	defaultCanvasHeight = 1080
	defaultCanvasFPS    = 30
	defaultCanvasRatio  = "original"

	defaultPerImageMS = 5000
	defaultImageScale = 1.0

	defaultAnimationMode = "random"
	defaultScaleMin      = 1.0
	defaultScaleMax      = 1.5
	defaultMoveMin       = -0.1
	defaultMoveMax       = 0.1

	defaultTransitionMS = 500

	defaultAudioVolume = 1.0
	defaultFadeInMS    = 500
	defaultFadeOutMS   = 500

	defaultSubtitleFont        = "SystemFont"
	defaultSubtitleSize        = 30
	defaultSubtitleColor       = "#FFFFFF"
	defaultSubtitleBorderColor = "#000000"
	defaultSubtitleBorderWidth = 0.08
	defaultSubtitlePositionY   = -0.8

	defaultLogLevel  = "info"
	defaultLogFormat = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:   defaultOutputDir,
			CatalogPath: defaultCatalogPath,
			LogDir:      defaultLogDir,
		},
		Canvas: Canvas{
			Width:  defaultCanvasWidth,
			Height: defaultCanvasHeight,
			FPS:    defaultCanvasFPS,
			Ratio:  defaultCanvasRatio,
		},
		Timeline: Timeline{
			PerImageMS: defaultPerImageMS,
			ImageScale: defaultImageScale,
		},
		Animation: Animation{
			Enabled:  true,
			Mode:     defaultAnimationMode,
			ScaleMin: defaultScaleMin,
			ScaleMax: defaultScaleMax,
			MoveMin:  defaultMoveMin,
			MoveMax:  defaultMoveMax,
		},
		Transitions: Transitions{
			Enabled:    true,
			DurationMS: defaultTransitionMS,
		},
		Effects: Effects{
			Enabled: false,
		},
		Audio: Audio{
			Volume:    defaultAudioVolume,
			FadeInMS:  defaultFadeInMS,
			FadeOutMS: defaultFadeOutMS,
		},
		Subtitles: Subtitles{
			Enabled:     true,
			Font:        defaultSubtitleFont,
			Size:        defaultSubtitleSize,
			Color:       defaultSubtitleColor,
			BorderColor: defaultSubtitleBorderColor,
			BorderWidth: defaultSubtitleBorderWidth,
			PositionY:   defaultSubtitlePositionY,
		},
		Output: Output{},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
