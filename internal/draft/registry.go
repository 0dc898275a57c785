package draft

import (
	"errors"
	"fmt"
)

// Material lookup failures. Wrapped errors carry the identifier and the
// kinds involved; errors.Is distinguishes the two cases.
var (
	ErrNotFound     = errors.New("material not found")
	ErrKindMismatch = errors.New("material kind mismatch")
)

type imageEntry struct {
	id ID
	Image
}

type audioEntry struct {
	id ID
	Audio
}

type textEntry struct {
	id ID
	Text
}

type transitionEntry struct {
	id ID
	Transition
}

type effectEntry struct {
	id ID
	Effect
}

type canvasEntry struct {
	id ID
	Canvas
}

type speedEntry struct {
	id ID
	Speed
}

type channelMapEntry struct {
	id ID
	ChannelMap
}

type vocalSepEntry struct {
	id ID
	VocalSep
}

type animationEntry struct {
	id ID
	Animation
}

type fadeEntry struct {
	id ID
	Fade
}

// Registry owns every material in a draft. Entries keep insertion order per
// kind; identifiers are unique across all kinds. A Registry is not safe for
// concurrent use; each synthesis call builds its own.
type Registry struct {
	images      []imageEntry
	audios      []audioEntry
	texts       []textEntry
	transitions []transitionEntry
	effects     []effectEntry
	canvases    []canvasEntry
	speeds      []speedEntry
	channelMaps []channelMapEntry
	vocalSeps   []vocalSepEntry
	animations  []animationEntry
	fades       []fadeEntry

	ids map[ID]Kind
}

// NewRegistry returns an empty material arena.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[ID]Kind)}
}

func (r *Registry) allocate(kind Kind) ID {
	for {
		id := NewID()
		if _, taken := r.ids[id]; taken {
			continue
		}
		r.ids[id] = kind
		return id
	}
}

func (r *Registry) AddImage(m Image) ImageID {
	id := r.allocate(KindImage)
	r.images = append(r.images, imageEntry{id: id, Image: m})
	return ImageID{id}
}

func (r *Registry) AddAudio(m Audio) AudioID {
	id := r.allocate(KindAudio)
	r.audios = append(r.audios, audioEntry{id: id, Audio: m})
	return AudioID{id}
}

func (r *Registry) AddText(m Text) TextID {
	id := r.allocate(KindText)
	r.texts = append(r.texts, textEntry{id: id, Text: m})
	return TextID{id}
}

func (r *Registry) AddTransition(m Transition) TransitionID {
	id := r.allocate(KindTransition)
	r.transitions = append(r.transitions, transitionEntry{id: id, Transition: m})
	return TransitionID{id}
}

func (r *Registry) AddEffect(m Effect) EffectID {
	id := r.allocate(KindEffect)
	r.effects = append(r.effects, effectEntry{id: id, Effect: m})
	return EffectID{id}
}

func (r *Registry) AddCanvas(m Canvas) CanvasID {
	id := r.allocate(KindCanvas)
	r.canvases = append(r.canvases, canvasEntry{id: id, Canvas: m})
	return CanvasID{id}
}

func (r *Registry) AddSpeed(m Speed) SpeedID {
	id := r.allocate(KindSpeed)
	r.speeds = append(r.speeds, speedEntry{id: id, Speed: m})
	return SpeedID{id}
}

func (r *Registry) AddChannelMap(m ChannelMap) ChannelMapID {
	id := r.allocate(KindChannelMap)
	r.channelMaps = append(r.channelMaps, channelMapEntry{id: id, ChannelMap: m})
	return ChannelMapID{id}
}

func (r *Registry) AddVocalSep(m VocalSep) VocalSepID {
	id := r.allocate(KindVocalSep)
	r.vocalSeps = append(r.vocalSeps, vocalSepEntry{id: id, VocalSep: m})
	return VocalSepID{id}
}

func (r *Registry) AddAnimation(m Animation) AnimationID {
	id := r.allocate(KindAnimation)
	r.animations = append(r.animations, animationEntry{id: id, Animation: m})
	return AnimationID{id}
}

func (r *Registry) AddFade(m Fade) FadeID {
	id := r.allocate(KindFade)
	r.fades = append(r.fades, fadeEntry{id: id, Fade: m})
	return FadeID{id}
}

// Resolve reports the kind registered for id, if any.
func (r *Registry) Resolve(id ID) (Kind, bool) {
	kind, ok := r.ids[id]
	return kind, ok
}

// MaterialCount returns the total number of registered materials.
func (r *Registry) MaterialCount() int {
	return len(r.ids)
}

func (r *Registry) check(id ID, want Kind) error {
	kind, ok := r.ids[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if kind != want {
		return fmt.Errorf("%w: %s is %s, want %s", ErrKindMismatch, id, kind, want)
	}
	return nil
}

// Image returns the Image registered under id, failing loudly when the id is
// unknown or registered as a different kind.
func (r *Registry) Image(id ID) (Image, error) {
	if err := r.check(id, KindImage); err != nil {
		return Image{}, err
	}
	for i := range r.images {
		if r.images[i].id == id {
			return r.images[i].Image, nil
		}
	}
	return Image{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Audio returns the Audio registered under id.
func (r *Registry) Audio(id ID) (Audio, error) {
	if err := r.check(id, KindAudio); err != nil {
		return Audio{}, err
	}
	for i := range r.audios {
		if r.audios[i].id == id {
			return r.audios[i].Audio, nil
		}
	}
	return Audio{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Text returns the Text registered under id.
func (r *Registry) Text(id ID) (Text, error) {
	if err := r.check(id, KindText); err != nil {
		return Text{}, err
	}
	for i := range r.texts {
		if r.texts[i].id == id {
			return r.texts[i].Text, nil
		}
	}
	return Text{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Transition returns the Transition registered under id.
func (r *Registry) Transition(id ID) (Transition, error) {
	if err := r.check(id, KindTransition); err != nil {
		return Transition{}, err
	}
	for i := range r.transitions {
		if r.transitions[i].id == id {
			return r.transitions[i].Transition, nil
		}
	}
	return Transition{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Effect returns the Effect registered under id.
func (r *Registry) Effect(id ID) (Effect, error) {
	if err := r.check(id, KindEffect); err != nil {
		return Effect{}, err
	}
	for i := range r.effects {
		if r.effects[i].id == id {
			return r.effects[i].Effect, nil
		}
	}
	return Effect{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Animation returns the Animation registered under id.
func (r *Registry) Animation(id ID) (Animation, error) {
	if err := r.check(id, KindAnimation); err != nil {
		return Animation{}, err
	}
	for i := range r.animations {
		if r.animations[i].id == id {
			return r.animations[i].Animation, nil
		}
	}
	return Animation{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Fade returns the Fade registered under id.
func (r *Registry) Fade(id ID) (Fade, error) {
	if err := r.check(id, KindFade); err != nil {
		return Fade{}, err
	}
	for i := range r.fades {
		if r.fades[i].id == id {
			return r.fades[i].Fade, nil
		}
	}
	return Fade{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Asset is a file-backed material the assembler must copy.
type Asset struct {
	ID         ID
	Kind       Kind
	SourcePath string
	Name       string
}

// Assets lists every file-backed material in insertion order, images first.
func (r *Registry) Assets() []Asset {
	out := make([]Asset, 0, len(r.images)+len(r.audios))
	for i := range r.images {
		out = append(out, Asset{
			ID:         r.images[i].id,
			Kind:       KindImage,
			SourcePath: r.images[i].Path,
			Name:       r.images[i].Name,
		})
	}
	for i := range r.audios {
		out = append(out, Asset{
			ID:         r.audios[i].id,
			Kind:       KindAudio,
			SourcePath: r.audios[i].Path,
			Name:       r.audios[i].Name,
		})
	}
	return out
}

// SetAssetLocation records the copied filename and relocation-safe wire path
// for a file-backed material.
func (r *Registry) SetAssetLocation(id ID, name, wirePath string) error {
	kind, ok := r.ids[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	switch kind {
	case KindImage:
		for i := range r.images {
			if r.images[i].id == id {
				r.images[i].Name = name
				r.images[i].WirePath = wirePath
				return nil
			}
		}
	case KindAudio:
		for i := range r.audios {
			if r.audios[i].id == id {
				r.audios[i].Name = name
				r.audios[i].WirePath = wirePath
				return nil
			}
		}
	default:
		return fmt.Errorf("%w: %s is %s, want image or audio", ErrKindMismatch, id, kind)
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
