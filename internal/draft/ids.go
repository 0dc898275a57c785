package draft

import (
	"strings"

	"github.com/google/uuid"
)

// ID is an opaque draft-unique identifier: 32 uppercase hex characters.
type ID string

// NewID returns a fresh identifier. Collisions are not expected; the
// Registry still verifies uniqueness on every allocation.
func NewID() ID {
	raw := uuid.NewString()
	return ID(strings.ToUpper(strings.ReplaceAll(raw, "-", "")))
}

// Kind enumerates the closed set of material kinds a Registry owns.
type Kind int

const (
	KindImage Kind = iota
	KindAudio
	KindText
	KindTransition
	KindEffect
	KindCanvas
	KindSpeed
	KindChannelMap
	KindVocalSep
	KindAnimation
	KindFade
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	case KindText:
		return "text"
	case KindTransition:
		return "transition"
	case KindEffect:
		return "effect"
	case KindCanvas:
		return "canvas"
	case KindSpeed:
		return "speed"
	case KindChannelMap:
		return "sound_channel_mapping"
	case KindVocalSep:
		return "vocal_separation"
	case KindAnimation:
		return "animation"
	case KindFade:
		return "audio_fade"
	default:
		return "unknown"
	}
}

// Kind-tagged handles. Each is returned only by the Registry add method for
// its kind, so a segment constructor cannot receive a wrong-kind reference.

// ImageID references an Image material.
type ImageID struct{ id ID }

// AudioID references an Audio material.
type AudioID struct{ id ID }

// TextID references a Text material.
type TextID struct{ id ID }

// TransitionID references a Transition material.
type TransitionID struct{ id ID }

// EffectID references an Effect material.
type EffectID struct{ id ID }

// CanvasID references a Canvas material.
type CanvasID struct{ id ID }

// SpeedID references a Speed material.
type SpeedID struct{ id ID }

// ChannelMapID references a SoundChannelMapping material.
type ChannelMapID struct{ id ID }

// VocalSepID references a VocalSeparation material.
type VocalSepID struct{ id ID }

// AnimationID references an Animation material.
type AnimationID struct{ id ID }

// FadeID references an AudioFade material.
type FadeID struct{ id ID }

// Ref exposes the underlying identifier for wire emission and Resolve.
func (h ImageID) Ref() ID      { return h.id }
func (h AudioID) Ref() ID      { return h.id }
func (h TextID) Ref() ID       { return h.id }
func (h TransitionID) Ref() ID { return h.id }
func (h EffectID) Ref() ID     { return h.id }
func (h CanvasID) Ref() ID     { return h.id }
func (h SpeedID) Ref() ID      { return h.id }
func (h ChannelMapID) Ref() ID { return h.id }
func (h VocalSepID) Ref() ID   { return h.id }
func (h AnimationID) Ref() ID  { return h.id }
func (h FadeID) Ref() ID       { return h.id }
