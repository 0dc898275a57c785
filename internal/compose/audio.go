package compose

import (
	"fmt"
	"path/filepath"

	"draftsmith/internal/draft"
)

func (b *Builder) addAudioTrack(d *draft.Draft, shared sharedMaterials, in Input) error {
	if in.Audio != nil {
		return b.addSingleAudio(d, shared, in)
	}
	return b.addChunkedAudio(d, shared, in)
}

func (b *Builder) addSingleAudio(d *draft.Draft, shared sharedMaterials, in Input) error {
	r := d.Registry

	audio := r.AddAudio(draft.Audio{
		Path:     in.Audio.Path,
		Name:     filepath.Base(in.Audio.Path),
		Duration: in.Audio.Duration,
	})
	fade := r.AddFade(draft.Fade{
		InDuration:  clampFade(b.cfg.Audio.FadeInMS*1000, in.Duration),
		OutDuration: clampFade(b.cfg.Audio.FadeOutMS*1000, in.Duration),
	})
	segment := draft.NewAudioSegment(
		audio,
		draft.NewTimerange(0, in.Duration),
		draft.NewTimerange(0, in.Duration),
		b.cfg.Audio.Volume,
		draft.AudioExtras{
			Speed:      r.AddSpeed(draft.Speed{Value: 1}),
			Fade:       &fade,
			ChannelMap: shared.channelMaps[1],
			VocalSep:   shared.vocalSeps[1],
		},
	)

	track := draft.NewTrack(draft.TrackAudio, "")
	if err := track.AddSegment(segment); err != nil {
		return err
	}
	d.AddTrack(track)
	return nil
}

func (b *Builder) addChunkedAudio(d *draft.Draft, shared sharedMaterials, in Input) error {
	cursor := int64(0)
	for i, chunk := range in.Chunks {
		if chunk.Duration <= 0 {
			return fmt.Errorf("narration chunk %d has duration %d, want positive", i, chunk.Duration)
		}
		if chunk.Start != cursor {
			return fmt.Errorf("narration chunk %d starts at %d, want %d (gap or overlap)", i, chunk.Start, cursor)
		}
		cursor += chunk.Duration
	}
	if cursor != in.Duration {
		return fmt.Errorf("narration chunks end at %d, want %d (incomplete tiling)", cursor, in.Duration)
	}

	r := d.Registry

	// Chunks cutting the same merged file share one material whose stored
	// duration reaches the furthest chunk end.
	materialEnd := make(map[string]int64)
	for _, chunk := range in.Chunks {
		if end := chunk.Start + chunk.Duration; end > materialEnd[chunk.Path] {
			materialEnd[chunk.Path] = end
		}
	}
	materials := make(map[string]draft.AudioID, len(materialEnd))
	for _, chunk := range in.Chunks {
		if _, ok := materials[chunk.Path]; ok {
			continue
		}
		materials[chunk.Path] = r.AddAudio(draft.Audio{
			Path:     chunk.Path,
			Name:     filepath.Base(chunk.Path),
			Duration: materialEnd[chunk.Path],
		})
	}

	track := draft.NewTrack(draft.TrackAudio, "")
	for i, chunk := range in.Chunks {
		extras := draft.AudioExtras{
			Speed:      r.AddSpeed(draft.Speed{Value: 1}),
			ChannelMap: shared.channelMaps[1],
			VocalSep:   shared.vocalSeps[1],
		}
		// Fades trim only the outer narration edges, never chunk joins.
		var fadeIn, fadeOut int64
		if i == 0 {
			fadeIn = clampFade(b.cfg.Audio.FadeInMS*1000, chunk.Duration)
		}
		if i == len(in.Chunks)-1 {
			fadeOut = clampFade(b.cfg.Audio.FadeOutMS*1000, chunk.Duration)
		}
		if fadeIn > 0 || fadeOut > 0 {
			fade := r.AddFade(draft.Fade{InDuration: fadeIn, OutDuration: fadeOut})
			extras.Fade = &fade
		}

		segment := draft.NewAudioSegment(
			materials[chunk.Path],
			draft.NewTimerange(chunk.Start, chunk.Duration),
			draft.NewTimerange(chunk.Start, chunk.Duration),
			b.cfg.Audio.Volume,
			extras,
		)
		if err := track.AddSegment(segment); err != nil {
			return err
		}
	}
	d.AddTrack(track)
	return nil
}

// clampFade bounds a fade trim to a tenth of the segment it applies to.
func clampFade(fadeUS, segmentUS int64) int64 {
	if fadeUS < 0 {
		return 0
	}
	if limit := segmentUS / 10; fadeUS > limit {
		return limit
	}
	return fadeUS
}
