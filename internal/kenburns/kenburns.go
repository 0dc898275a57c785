package kenburns

import (
	"fmt"
	"math/rand"

	"draftsmith/internal/draft"
)

// Archetype names one camera motion template.
type Archetype string

const (
	ZoomIn  Archetype = "zoom_in"
	ZoomOut Archetype = "zoom_out"
	PanUp   Archetype = "pan_up"
	PanDown Archetype = "pan_down"
	ZoomPan Archetype = "zoom_pan"
)

var archetypes = []Archetype{ZoomIn, ZoomOut, PanUp, PanDown, ZoomPan}

// Mode selects how archetypes are assigned to segments.
type Mode string

const (
	ModeRandom    Mode = "random"
	ModeAlternate Mode = "alternate"
)

// Params bound the generated motion. Scale values are multipliers, move
// values are canvas-relative offsets.
type Params struct {
	ScaleMin float64
	ScaleMax float64
	MoveMin  float64
	MoveMax  float64
}

// Motion is the start and end value of each animated property over one
// segment. Rotation is always zero but still emitted on the wire.
type Motion struct {
	Archetype Archetype
	ScaleFrom float64
	ScaleTo   float64
	XFrom     float64
	XTo       float64
	YFrom     float64
	YTo       float64
}

// Plan produces the motion for the segment at index. Random mode draws the
// archetype uniformly from the five templates; alternate mode ignores rng and
// pans even-index segments top to bottom, odd-index segments bottom to top.
func Plan(mode Mode, index int, params Params, rng *rand.Rand) (Motion, error) {
	switch mode {
	case ModeRandom:
		return randomMotion(params, rng), nil
	case ModeAlternate:
		return alternateMotion(index, params), nil
	default:
		return Motion{}, fmt.Errorf("animation mode %q is not supported", mode)
	}
}

func randomMotion(params Params, rng *rand.Rand) Motion {
	archetype := archetypes[rng.Intn(len(archetypes))]
	m := Motion{Archetype: archetype}

	switch archetype {
	case ZoomIn:
		m.ScaleFrom, m.ScaleTo = params.ScaleMin, params.ScaleMax
	case ZoomOut:
		m.ScaleFrom, m.ScaleTo = params.ScaleMax, params.ScaleMin
	case PanUp:
		// Viewing bottom to top: the frame starts shifted up and drifts down.
		m.ScaleFrom, m.ScaleTo = params.ScaleMax, params.ScaleMax
		m.YFrom, m.YTo = params.MoveMax, params.MoveMin
	case PanDown:
		m.ScaleFrom, m.ScaleTo = params.ScaleMax, params.ScaleMax
		m.YFrom, m.YTo = params.MoveMin, params.MoveMax
	case ZoomPan:
		m.ScaleFrom, m.ScaleTo = params.ScaleMin, params.ScaleMax
		if rng.Intn(2) == 0 {
			m.XFrom, m.XTo = params.MoveMin, params.MoveMax
		} else {
			m.XFrom, m.XTo = params.MoveMax, params.MoveMin
		}
	}
	return m
}

func alternateMotion(index int, params Params) Motion {
	m := Motion{
		ScaleFrom: params.ScaleMax,
		ScaleTo:   params.ScaleMax,
	}
	if index%2 == 0 {
		m.Archetype = PanDown
		m.YFrom, m.YTo = params.MoveMin, params.MoveMax
	} else {
		m.Archetype = PanUp
		m.YFrom, m.YTo = params.MoveMax, params.MoveMin
	}
	return m
}

// Series renders a motion as the editor's four keyframe series over a
// segment of the given duration: scale, position x, position y, rotation,
// each with a frame at offset 0 and a frame at offset duration.
func Series(m Motion, duration int64) []draft.KeyframeSeries {
	return []draft.KeyframeSeries{
		{Property: draft.PropScaleX, Frames: pair(duration, m.ScaleFrom, m.ScaleTo)},
		{Property: draft.PropPositionX, Frames: pair(duration, m.XFrom, m.XTo)},
		{Property: draft.PropPositionY, Frames: pair(duration, m.YFrom, m.YTo)},
		{Property: draft.PropRotation, Frames: pair(duration, 0, 0)},
	}
}

func pair(duration int64, from, to float64) []draft.Keyframe {
	return []draft.Keyframe{
		{TimeOffset: 0, Value: from},
		{TimeOffset: duration, Value: to},
	}
}
