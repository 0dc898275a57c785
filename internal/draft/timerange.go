package draft

// Timerange is a half-open span on a microsecond timeline.
type Timerange struct {
	Start    int64
	Duration int64
}

// NewTimerange builds a span from start and duration, both in microseconds.
func NewTimerange(start, duration int64) Timerange {
	return Timerange{Start: start, Duration: duration}
}

// End returns the exclusive end of the span.
func (t Timerange) End() int64 {
	return t.Start + t.Duration
}
