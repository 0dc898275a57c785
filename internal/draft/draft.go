package draft

import (
	"fmt"
)

// CanvasConfig describes the project canvas.
type CanvasConfig struct {
	Width  int
	Height int
	Ratio  string
}

// Draft is the root of one synthesized project. It is built once per
// synthesis call, validated, serialized, and discarded.
type Draft struct {
	id       ID
	Name     string
	Duration int64
	FPS      int
	Canvas   CanvasConfig
	Registry *Registry
	Tracks   []*Track
}

// New returns an empty draft with a fresh identifier and registry.
func New(name string, canvas CanvasConfig, fps int) *Draft {
	return &Draft{
		id:       NewID(),
		Name:     name,
		Canvas:   canvas,
		FPS:      fps,
		Registry: NewRegistry(),
	}
}

// ID returns the draft identifier.
func (d *Draft) ID() ID { return d.id }

// AddTrack appends a track to the draft.
func (d *Draft) AddTrack(t *Track) {
	d.Tracks = append(d.Tracks, t)
}

// SegmentCount returns the total number of segments across all tracks.
func (d *Draft) SegmentCount() int {
	n := 0
	for _, t := range d.Tracks {
		n += len(t.Segments)
	}
	return n
}

var expectedMaterialKind = map[TrackKind]Kind{
	TrackVideo:    KindImage,
	TrackAudio:    KindAudio,
	TrackEffect:   KindEffect,
	TrackSubtitle: KindText,
}

// Validate checks the draft's global invariants before serialization:
// identifier uniqueness, reference resolution with kind expectations, exact
// timeline tiling on video and audio tracks, and target bounds. Subtitle
// segments are exempt from the bounds check; cues may outlast the narration.
func (d *Draft) Validate() error {
	if d.Duration < 0 {
		return fmt.Errorf("draft duration %d is negative", d.Duration)
	}
	if d.FPS <= 0 {
		return fmt.Errorf("draft fps %d must be positive", d.FPS)
	}
	if d.Canvas.Width <= 0 || d.Canvas.Height <= 0 {
		return fmt.Errorf("canvas %dx%d must be positive", d.Canvas.Width, d.Canvas.Height)
	}

	if err := d.validateIdentifiers(); err != nil {
		return err
	}
	if err := d.validateReferences(); err != nil {
		return err
	}
	return d.validateTracks()
}

func (d *Draft) validateIdentifiers() error {
	seen := make(map[ID]string, d.Registry.MaterialCount()+d.SegmentCount()+len(d.Tracks)+1)
	claim := func(id ID, what string) error {
		if id == "" {
			return fmt.Errorf("%s has an empty identifier", what)
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("identifier %s reused by %s and %s", id, prev, what)
		}
		seen[id] = what
		return nil
	}

	if err := claim(d.id, "draft"); err != nil {
		return err
	}
	for id := range d.Registry.ids {
		if err := claim(id, "material"); err != nil {
			return err
		}
	}
	for _, t := range d.Tracks {
		if err := claim(t.id, fmt.Sprintf("%s track", t.Kind)); err != nil {
			return err
		}
		for _, s := range t.Segments {
			if err := claim(s.id, fmt.Sprintf("%s segment", t.Kind)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Draft) validateReferences() error {
	for _, t := range d.Tracks {
		want := expectedMaterialKind[t.Kind]
		for i, s := range t.Segments {
			kind, ok := d.Registry.Resolve(s.materialRef)
			if !ok {
				return fmt.Errorf("%s segment %d references missing material %s", t.Kind, i, s.materialRef)
			}
			if kind != want {
				return fmt.Errorf("%s segment %d references %s material %s, want %s", t.Kind, i, kind, s.materialRef, want)
			}
			for _, ref := range s.extraRefs {
				if _, ok := d.Registry.Resolve(ref); !ok {
					return fmt.Errorf("%s segment %d extra ref %s does not resolve", t.Kind, i, ref)
				}
			}
		}
	}
	return nil
}

func (d *Draft) validateTracks() error {
	for _, t := range d.Tracks {
		switch t.Kind {
		case TrackVideo, TrackAudio:
			if err := d.validateTiling(t); err != nil {
				return err
			}
		case TrackEffect:
			if len(t.Segments) != 1 {
				return fmt.Errorf("effect track has %d segments, want 1", len(t.Segments))
			}
			s := t.Segments[0]
			if s.Target.Start != 0 || s.Target.Duration != d.Duration {
				return fmt.Errorf("effect segment spans [%d,%d), want [0,%d)", s.Target.Start, s.Target.End(), d.Duration)
			}
		case TrackSubtitle:
			for i, s := range t.Segments {
				if s.Target.Duration < 0 {
					return fmt.Errorf("subtitle segment %d has negative duration", i)
				}
			}
		}
	}
	return nil
}

func (d *Draft) validateTiling(t *Track) error {
	cursor := int64(0)
	for i, s := range t.Segments {
		if s.Target.Duration < 0 {
			return fmt.Errorf("%s segment %d has negative duration", t.Kind, i)
		}
		if s.Target.Start != cursor {
			return fmt.Errorf("%s segment %d starts at %d, want %d (gap or overlap)", t.Kind, i, s.Target.Start, cursor)
		}
		if s.Target.End() > d.Duration {
			return fmt.Errorf("%s segment %d ends at %d past draft duration %d", t.Kind, i, s.Target.End(), d.Duration)
		}
		cursor = s.Target.End()
	}
	if cursor != d.Duration {
		return fmt.Errorf("%s track ends at %d, want %d (incomplete tiling)", t.Kind, cursor, d.Duration)
	}
	return nil
}
