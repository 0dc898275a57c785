package synth

import (
	"draftsmith/internal/assemble"
	"draftsmith/internal/compose"
	"draftsmith/internal/config"
)

// storyboardFor flattens the composition choices into the storyboard shape:
// canvas, narration clips, and one scene per video segment. Paths are the
// source assets, not the relocated materials copies.
func storyboardFor(cfg *config.Config, narr *narration, manifest *compose.Manifest) *assemble.Storyboard {
	sb := &assemble.Storyboard{
		Canvas: assemble.StoryboardCanvas{
			Width:  cfg.Canvas.Width,
			Height: cfg.Canvas.Height,
			FPS:    cfg.Canvas.FPS,
			Ratio:  cfg.Canvas.Ratio,
		},
		Scenes: make([]assemble.StoryboardScene, 0, len(manifest.Scenes)),
	}

	if narr.audio != nil {
		sb.Audio = []assemble.StoryboardClip{{Path: narr.audio.Path, DurationUS: narr.duration}}
	} else {
		sb.Audio = make([]assemble.StoryboardClip, 0, len(narr.chunks))
		for _, chunk := range narr.chunks {
			sb.Audio = append(sb.Audio, assemble.StoryboardClip{
				Path:       chunk.Path,
				StartUS:    chunk.Start,
				DurationUS: chunk.Duration,
			})
		}
	}

	for _, scene := range manifest.Scenes {
		sb.Scenes = append(sb.Scenes, assemble.StoryboardScene{
			Image:      scene.Image,
			StartUS:    scene.Start,
			DurationUS: scene.Duration,
			Archetype:  scene.Archetype,
			Transition: scene.Transition,
		})
	}
	return sb
}
