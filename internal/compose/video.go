package compose

import (
	"path/filepath"

	"draftsmith/internal/draft"
	"draftsmith/internal/kenburns"
)

func (b *Builder) addVideoTrack(d *draft.Draft, shared sharedMaterials, in Input, manifest *Manifest) error {
	r := d.Registry
	track := draft.NewTrack(draft.TrackVideo, "")

	for i, slot := range in.Slots {
		img := in.Images[i]
		scene := Scene{Image: img.Path, Start: slot.Start, Duration: slot.Duration}
		imageID := r.AddImage(draft.Image{
			Path:   img.Path,
			Name:   filepath.Base(img.Path),
			Width:  img.Width,
			Height: img.Height,
		})

		clip := draft.DefaultClip()
		clip.ScaleX = b.cfg.Timeline.ImageScale
		clip.ScaleY = b.cfg.Timeline.ImageScale

		extras := draft.VideoExtras{
			Speed:      r.AddSpeed(draft.Speed{Value: 1}),
			Canvas:     shared.canvas,
			ChannelMap: shared.channelMaps[0],
			VocalSep:   shared.vocalSeps[0],
		}
		// The first image has nothing to transition from.
		if b.cfg.Transitions.Enabled && i > 0 {
			duration := b.cfg.Transitions.DurationMS * 1000
			if duration > slot.Duration {
				duration = slot.Duration
			}
			preset := transitionPresets[b.rng.Intn(len(transitionPresets))]
			scene.Transition = preset.name
			transition := r.AddTransition(draft.Transition{
				Name:       preset.name,
				EffectID:   preset.effectID,
				ResourceID: preset.resourceID,
				Duration:   duration,
				IsOverlap:  true,
			})
			extras.Transition = &transition
			animation := r.AddAnimation(draft.Animation{
				Name:       enterAnimationName,
				Type:       "in",
				ResourceID: enterAnimationResource,
				Duration:   duration,
			})
			extras.Animation = &animation
		}

		segment := draft.NewVideoSegment(
			imageID,
			draft.NewTimerange(0, slot.Duration),
			draft.NewTimerange(slot.Start, slot.Duration),
			clip,
			extras,
		)
		if b.cfg.Animation.Enabled {
			motion, err := kenburns.Plan(kenburns.Mode(b.cfg.Animation.Mode), i, kenburns.Params{
				ScaleMin: b.cfg.Animation.ScaleMin,
				ScaleMax: b.cfg.Animation.ScaleMax,
				MoveMin:  b.cfg.Animation.MoveMin,
				MoveMax:  b.cfg.Animation.MoveMax,
			}, b.rng)
			if err != nil {
				return err
			}
			scene.Archetype = string(motion.Archetype)
			segment.Keyframes = kenburns.Series(motion, slot.Duration)
		}
		if err := track.AddSegment(segment); err != nil {
			return err
		}
		manifest.Scenes = append(manifest.Scenes, scene)
	}

	d.AddTrack(track)
	return nil
}
