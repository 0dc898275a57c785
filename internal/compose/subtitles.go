package compose

import (
	"fmt"

	"draftsmith/internal/draft"
	"draftsmith/internal/srt"
)

// fontPathTemplate locates the editor's bundled font files by family name.
const fontPathTemplate = "/Applications/VideoFusion-macOS.app/Contents/Resources/Font/%s/zh-hans.ttf"

func (b *Builder) addSubtitleTrack(d *draft.Draft, cues []srt.Cue) error {
	r := d.Registry
	track := draft.NewTrack(draft.TrackSubtitle, "")

	style := b.cfg.Subtitles
	fontPath := fmt.Sprintf(fontPathTemplate, style.Font)

	clip := draft.DefaultClip()
	clip.TransformY = style.PositionY

	for i, cue := range cues {
		text := r.AddText(draft.Text{
			Content:     cue.Text,
			Font:        style.Font,
			FontPath:    fontPath,
			Size:        style.Size,
			Color:       style.Color,
			BorderColor: style.BorderColor,
			BorderWidth: style.BorderWidth,
		})

		duration := subtitleAnimationDuration
		if cueDuration := cue.Duration(); cueDuration < duration {
			duration = cueDuration
		}
		animation := r.AddAnimation(draft.Animation{
			Name:         subtitleAnimationName,
			Type:         "in",
			MaterialType: "text",
			ResourceID:   subtitleAnimationResource,
			Duration:     duration,
		})

		segment := draft.NewTextSegment(
			text,
			draft.NewTimerange(cue.Start, cue.Duration()),
			clip,
			&animation,
			subtitleRenderIndexBase+i,
		)
		if err := track.AddSegment(segment); err != nil {
			return err
		}
	}

	d.AddTrack(track)
	return nil
}
