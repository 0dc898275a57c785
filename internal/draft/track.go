package draft

import "fmt"

// TrackKind is the lane type; the value doubles as the wire track type.
type TrackKind string

const (
	TrackVideo    TrackKind = "video"
	TrackAudio    TrackKind = "audio"
	TrackEffect   TrackKind = "effect"
	TrackSubtitle TrackKind = "text"
)

// Track is an ordered lane of segments of one kind.
type Track struct {
	id       ID
	Kind     TrackKind
	Name     string
	Segments []*Segment
}

// NewTrack returns an empty track of the given kind.
func NewTrack(kind TrackKind, name string) *Track {
	return &Track{id: NewID(), Kind: kind, Name: name}
}

// ID returns the track identifier.
func (t *Track) ID() ID { return t.id }

// AddSegment appends a segment, rejecting kind mismatches.
func (t *Track) AddSegment(s *Segment) error {
	if s.kind != t.Kind {
		return fmt.Errorf("segment kind %s cannot join %s track", s.kind, t.Kind)
	}
	t.Segments = append(t.Segments, s)
	return nil
}
