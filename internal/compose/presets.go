package compose

// Editor resource catalog entries. The effect_id/resource_id pairs identify
// assets in the editor's built-in library; names match its English UI.

type transitionPreset struct {
	name       string
	effectID   string
	resourceID string
}

var transitionPresets = []transitionPreset{
	{name: "Dissolve", effectID: "321493", resourceID: "6724239388189921806"},
	{name: "Fade To Black", effectID: "321494", resourceID: "6724239388189938190"},
	{name: "Fade To White", effectID: "321495", resourceID: "6724239388189954574"},
	{name: "Slide Left", effectID: "321502", resourceID: "6724239388190070286"},
	{name: "Slide Right", effectID: "321503", resourceID: "6724239388190086670"},
	{name: "Zoom In", effectID: "321508", resourceID: "6724239388190103054"},
	{name: "Zoom Out", effectID: "321509", resourceID: "6724239388190119438"},
	{name: "Blur", effectID: "321516", resourceID: "6724239388190135822"},
	{name: "Wind", effectID: "321522", resourceID: "6724239388190152206"},
	{name: "Page Turn", effectID: "321528", resourceID: "6724239388190168590"},
}

type effectPreset struct {
	name       string
	effectID   string
	resourceID string
}

var effectPresets = []effectPreset{
	{name: "Film Grain", effectID: "399423", resourceID: "7012933035333615134"},
	{name: "Old TV", effectID: "399428", resourceID: "7012933035333631518"},
	{name: "Light Leak", effectID: "399441", resourceID: "7012933035333647902"},
	{name: "Dust", effectID: "399457", resourceID: "7012933035333664286"},
	{name: "Soft Glow", effectID: "399470", resourceID: "7012933035333680670"},
	{name: "Vignette", effectID: "399486", resourceID: "7012933035333697054"},
}

// enterAnimationResource is the editor's fade-in enter animation, paired
// with transitions on image segments.
const (
	enterAnimationName     = "Fade In"
	enterAnimationResource = "6798320778182921742"
)

// subtitleAnimationResource is the enter animation attached to every
// subtitle segment.
const (
	subtitleAnimationName     = "Fade In"
	subtitleAnimationResource = "6896801833570423048"
	subtitleAnimationDuration = int64(500_000)
)
