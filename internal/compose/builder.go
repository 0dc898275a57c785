package compose

import (
	"fmt"
	"math/rand"

	"draftsmith/internal/config"
	"draftsmith/internal/draft"
	"draftsmith/internal/srt"
	"draftsmith/internal/timeline"
)

// ImageAsset is a probed image ready for placement.
type ImageAsset struct {
	Path   string
	Width  int
	Height int
}

// AudioAsset is the probed narration track for single-file mode.
type AudioAsset struct {
	Path     string
	Duration int64
}

// Chunk is one precomputed narration span in the merged-audio timeline.
// Start and Duration are both segment placement and source offsets.
type Chunk struct {
	Path     string
	Start    int64
	Duration int64
}

// Input carries everything one draft is built from. Exactly one of Audio or
// Chunks must be set; Images is parallel to Slots.
type Input struct {
	Name     string
	Duration int64
	Slots    []timeline.Slot
	Images   []ImageAsset
	Audio    *AudioAsset
	Chunks   []Chunk
	Cues     []srt.Cue
}

// Scene records the composition choices behind one video segment. Archetype
// and Transition stay empty when the matching feature is disabled; the first
// scene never carries a transition.
type Scene struct {
	Image      string
	Start      int64
	Duration   int64
	Archetype  string
	Transition string
}

// Manifest summarizes what Build chose where the configuration left room.
type Manifest struct {
	Scenes []Scene
	Effect string
}

// Builder assembles draft documents from planned inputs. All random choices
// (transition picks, motion archetypes, effect picks) flow through the
// injected RNG, so a seed fixes the structure.
type Builder struct {
	cfg *config.Config
	rng *rand.Rand
}

// NewBuilder returns a Builder over the given configuration and RNG.
func NewBuilder(cfg *config.Config, rng *rand.Rand) *Builder {
	return &Builder{cfg: cfg, rng: rng}
}

// sharedMaterials are the registry entries shared between segments: one
// canvas color plus two-entry channel-mapping and vocal-separation pools,
// index 0 for the video track and index 1 for the audio track.
type sharedMaterials struct {
	canvas      draft.CanvasID
	channelMaps [2]draft.ChannelMapID
	vocalSeps   [2]draft.VocalSepID
}

func newSharedMaterials(r *draft.Registry) sharedMaterials {
	return sharedMaterials{
		canvas: r.AddCanvas(draft.Canvas{}),
		channelMaps: [2]draft.ChannelMapID{
			r.AddChannelMap(draft.ChannelMap{}),
			r.AddChannelMap(draft.ChannelMap{}),
		},
		vocalSeps: [2]draft.VocalSepID{
			r.AddVocalSep(draft.VocalSep{}),
			r.AddVocalSep(draft.VocalSep{}),
		},
	}
}

// Build assembles the draft: video track, audio track, then the optional
// effect and subtitle tracks. The caller validates and serializes.
func (b *Builder) Build(in Input) (*draft.Draft, *Manifest, error) {
	if in.Duration <= 0 {
		return nil, nil, fmt.Errorf("draft duration %d must be positive", in.Duration)
	}
	if len(in.Images) != len(in.Slots) {
		return nil, nil, fmt.Errorf("%d images for %d slots", len(in.Images), len(in.Slots))
	}
	if (in.Audio == nil) == (len(in.Chunks) == 0) {
		return nil, nil, fmt.Errorf("narration must be a single audio file or a chunk list, not both or neither")
	}

	d := draft.New(in.Name, draft.CanvasConfig{
		Width:  b.cfg.Canvas.Width,
		Height: b.cfg.Canvas.Height,
		Ratio:  b.cfg.Canvas.Ratio,
	}, b.cfg.Canvas.FPS)
	d.Duration = in.Duration

	shared := newSharedMaterials(d.Registry)
	manifest := &Manifest{Scenes: make([]Scene, 0, len(in.Slots))}

	if err := b.addVideoTrack(d, shared, in, manifest); err != nil {
		return nil, nil, err
	}
	if err := b.addAudioTrack(d, shared, in); err != nil {
		return nil, nil, err
	}
	if b.cfg.Effects.Enabled {
		if err := b.addEffectTrack(d, in.Duration, manifest); err != nil {
			return nil, nil, err
		}
	}
	if b.cfg.Subtitles.Enabled && len(in.Cues) > 0 {
		if err := b.addSubtitleTrack(d, in.Cues); err != nil {
			return nil, nil, err
		}
	}
	return d, manifest, nil
}
