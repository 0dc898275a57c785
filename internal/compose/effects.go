package compose

import (
	"draftsmith/internal/draft"
)

// Render index layers: image and audio segments sit at 0, the effect overlay
// above all video, subtitles on top.
const (
	effectRenderIndex       = 11000
	subtitleRenderIndexBase = 14000
)

func (b *Builder) addEffectTrack(d *draft.Draft, duration int64, manifest *Manifest) error {
	preset := effectPresets[b.rng.Intn(len(effectPresets))]
	manifest.Effect = preset.name
	effect := d.Registry.AddEffect(draft.Effect{
		Name:       preset.name,
		EffectID:   preset.effectID,
		ResourceID: preset.resourceID,
	})

	track := draft.NewTrack(draft.TrackEffect, "")
	segment := draft.NewEffectSegment(effect, draft.NewTimerange(0, duration), effectRenderIndex)
	if err := track.AddSegment(segment); err != nil {
		return err
	}
	d.AddTrack(track)
	return nil
}
