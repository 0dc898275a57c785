package draft

// PropertyType names an animatable segment property on the wire.
type PropertyType string

const (
	PropScaleX    PropertyType = "KFTypeScaleX"
	PropPositionX PropertyType = "KFTypePositionX"
	PropPositionY PropertyType = "KFTypePositionY"
	PropRotation  PropertyType = "KFTypeRotation"
)

// Keyframe is one timestamped value of an animated property.
type Keyframe struct {
	TimeOffset int64
	Value      float64
}

// KeyframeSeries animates one property over a segment. Synthesized series
// carry exactly two frames, at offset 0 and at the segment duration.
type KeyframeSeries struct {
	Property PropertyType
	Frames   []Keyframe
}

// Clip is the static transform applied to a segment.
type Clip struct {
	Alpha      float64
	FlipH      bool
	FlipV      bool
	Rotation   float64
	ScaleX     float64
	ScaleY     float64
	TransformX float64
	TransformY float64
}

// DefaultClip returns the identity transform.
func DefaultClip() Clip {
	return Clip{Alpha: 1, ScaleX: 1, ScaleY: 1}
}

// Segment is a placed instance of a material on a track's timeline.
type Segment struct {
	id          ID
	kind        TrackKind
	materialRef ID
	extraRefs   []ID

	Source      *Timerange
	Target      Timerange
	Clip        Clip
	Keyframes   []KeyframeSeries
	Speed       float64
	Volume      float64
	Visible     bool
	RenderIndex int
}

// ID returns the segment identifier.
func (s *Segment) ID() ID { return s.id }

// MaterialRef returns the identifier of the segment's primary material.
func (s *Segment) MaterialRef() ID { return s.materialRef }

// ExtraRefs returns the ordered auxiliary material references.
func (s *Segment) ExtraRefs() []ID { return s.extraRefs }

// Kind returns the track kind the segment belongs on.
func (s *Segment) Kind() TrackKind { return s.kind }

// VideoExtras holds the auxiliary materials every video segment references.
// Transition and Animation are optional; segment 0 never carries a
// transition.
type VideoExtras struct {
	Speed      SpeedID
	Canvas     CanvasID
	ChannelMap ChannelMapID
	VocalSep   VocalSepID
	Animation  *AnimationID
	Transition *TransitionID
}

func (e VideoExtras) refs() []ID {
	refs := []ID{e.Speed.Ref(), e.Canvas.Ref(), e.ChannelMap.Ref(), e.VocalSep.Ref()}
	if e.Animation != nil {
		refs = append(refs, e.Animation.Ref())
	}
	if e.Transition != nil {
		refs = append(refs, e.Transition.Ref())
	}
	return refs
}

// AudioExtras holds the auxiliary materials an audio segment references.
type AudioExtras struct {
	Speed      SpeedID
	Fade       *FadeID
	ChannelMap ChannelMapID
	VocalSep   VocalSepID
}

func (e AudioExtras) refs() []ID {
	refs := []ID{e.Speed.Ref()}
	if e.Fade != nil {
		refs = append(refs, e.Fade.Ref())
	}
	refs = append(refs, e.ChannelMap.Ref(), e.VocalSep.Ref())
	return refs
}

// NewVideoSegment places an image on the video timeline. Source covers the
// clipped region of the photo; Target is the placement on the master
// timeline.
func NewVideoSegment(image ImageID, source, target Timerange, clip Clip, extras VideoExtras) *Segment {
	src := source
	return &Segment{
		id:          NewID(),
		kind:        TrackVideo,
		materialRef: image.Ref(),
		extraRefs:   extras.refs(),
		Source:      &src,
		Target:      target,
		Clip:        clip,
		Speed:       1,
		Volume:      1,
		Visible:     true,
	}
}

// NewAudioSegment places narration audio on the timeline.
func NewAudioSegment(audio AudioID, source, target Timerange, volume float64, extras AudioExtras) *Segment {
	src := source
	return &Segment{
		id:          NewID(),
		kind:        TrackAudio,
		materialRef: audio.Ref(),
		extraRefs:   extras.refs(),
		Source:      &src,
		Target:      target,
		Clip:        DefaultClip(),
		Speed:       1,
		Volume:      volume,
		Visible:     true,
	}
}

// NewTextSegment places a subtitle line. The companion enter animation is
// the segment's only extra reference.
func NewTextSegment(text TextID, target Timerange, clip Clip, animation *AnimationID, renderIndex int) *Segment {
	var refs []ID
	if animation != nil {
		refs = append(refs, animation.Ref())
	}
	return &Segment{
		id:          NewID(),
		kind:        TrackSubtitle,
		materialRef: text.Ref(),
		extraRefs:   refs,
		Target:      target,
		Clip:        clip,
		Speed:       1,
		Volume:      1,
		Visible:     true,
		RenderIndex: renderIndex,
	}
}

// NewEffectSegment spans an effect over part of the timeline.
func NewEffectSegment(effect EffectID, target Timerange, renderIndex int) *Segment {
	return &Segment{
		id:          NewID(),
		kind:        TrackEffect,
		materialRef: effect.Ref(),
		Target:      target,
		Clip:        DefaultClip(),
		Speed:       1,
		Volume:      1,
		Visible:     true,
		RenderIndex: renderIndex,
	}
}
