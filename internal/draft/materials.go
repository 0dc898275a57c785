package draft

// Image is a still picture placed on a video track as a photo material.
// Path is the source file on disk; WirePath, when set by the assembler,
// is the relocation-safe path written to the document.
type Image struct {
	Path     string
	WirePath string
	Name     string
	Width    int
	Height   int
}

// Audio is a narration or music asset.
type Audio struct {
	Path     string
	WirePath string
	Name     string
	Duration int64
}

// Text is a styled subtitle line.
type Text struct {
	Content     string
	Font        string
	FontPath    string
	Size        int
	Color       string
	BorderColor string
	BorderWidth float64
}

// Transition joins two adjacent video segments.
type Transition struct {
	Name       string
	EffectID   string
	ResourceID string
	Duration   int64
	IsOverlap  bool
}

// Effect is a full-frame video effect.
type Effect struct {
	Name       string
	EffectID   string
	ResourceID string
}

// Canvas is the background behind undersized video content.
type Canvas struct {
	Color string
}

// Speed is a per-segment playback rate.
type Speed struct {
	Value float64
}

// ChannelMap is the editor's per-track sound channel mapping record.
type ChannelMap struct{}

// VocalSep is the editor's per-track vocal separation record.
type VocalSep struct{}

// Animation is an enter/exit animation applied to a segment. MaterialType
// is "video" for image segments and "text" for subtitle segments; empty
// defaults to "video" on the wire.
type Animation struct {
	Name         string
	Type         string
	MaterialType string
	ResourceID   string
	Duration     int64
}

// Fade trims audio in and out.
type Fade struct {
	InDuration  int64
	OutDuration int64
}
