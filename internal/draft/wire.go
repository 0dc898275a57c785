package draft

import (
	"encoding/json"
	"fmt"
)

// PathPlaceholder is the fixed token the editor substitutes with the draft
// folder location, making copied material paths relocation-safe.
const PathPlaceholder = "##_draftpath_placeholder_##"

// ImageWireDuration is the constant duration the editor expects on photo
// materials regardless of their placement.
const ImageWireDuration int64 = 10800000000

// wire structs mirror the editor's draft_content.json schema. Field names
// are part of the output contract.

type wireTimerange struct {
	Duration int64 `json:"duration"`
	Start    int64 `json:"start"`
}

type wirePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type wireFlip struct {
	Horizontal bool `json:"horizontal"`
	Vertical   bool `json:"vertical"`
}

type wireClip struct {
	Alpha     float64   `json:"alpha"`
	Flip      wireFlip  `json:"flip"`
	Rotation  float64   `json:"rotation"`
	Scale     wirePoint `json:"scale"`
	Transform wirePoint `json:"transform"`
}

type wireKeyframe struct {
	CurveType    string    `json:"curveType"`
	GraphID      string    `json:"graphID"`
	ID           string    `json:"id"`
	LeftControl  wirePoint `json:"left_control"`
	RightControl wirePoint `json:"right_control"`
	TimeOffset   int64     `json:"time_offset"`
	Values       []float64 `json:"values"`
}

type wireKeyframeSeries struct {
	ID           string         `json:"id"`
	KeyframeList []wireKeyframe `json:"keyframe_list"`
	MaterialID   string         `json:"material_id"`
	PropertyType string         `json:"property_type"`
}

type wireSegment struct {
	Clip              wireClip             `json:"clip"`
	CommonKeyframes   []wireKeyframeSeries `json:"common_keyframes"`
	EnableAdjust      bool                 `json:"enable_adjust"`
	ExtraMaterialRefs []string             `json:"extra_material_refs"`
	GroupID           string               `json:"group_id"`
	ID                string               `json:"id"`
	IsPlaceholder     bool                 `json:"is_placeholder"`
	KeyframeRefs      []string             `json:"keyframe_refs"`
	LastNonzeroVolume float64              `json:"last_nonzero_volume"`
	MaterialID        string               `json:"material_id"`
	RenderIndex       int                  `json:"render_index"`
	Reverse           bool                 `json:"reverse"`
	SourceTimerange   *wireTimerange       `json:"source_timerange"`
	Speed             float64              `json:"speed"`
	TargetTimerange   wireTimerange        `json:"target_timerange"`
	TemplateScene     string               `json:"template_scene"`
	TrackAttribute    int                  `json:"track_attribute"`
	TrackRenderIndex  int                  `json:"track_render_index"`
	Visible           bool                 `json:"visible"`
	Volume            float64              `json:"volume"`
}

type wireTrack struct {
	Attribute     int           `json:"attribute"`
	Flag          int           `json:"flag"`
	ID            string        `json:"id"`
	IsDefaultName bool          `json:"is_default_name"`
	Name          string        `json:"name"`
	Segments      []wireSegment `json:"segments"`
	Type          string        `json:"type"`
}

type wireCrop struct {
	LowerLeftX  float64 `json:"lower_left_x"`
	LowerLeftY  float64 `json:"lower_left_y"`
	LowerRightX float64 `json:"lower_right_x"`
	LowerRightY float64 `json:"lower_right_y"`
	UpperLeftX  float64 `json:"upper_left_x"`
	UpperLeftY  float64 `json:"upper_left_y"`
	UpperRightX float64 `json:"upper_right_x"`
	UpperRightY float64 `json:"upper_right_y"`
}

func defaultWireCrop() wireCrop {
	return wireCrop{
		LowerLeftY:  1,
		LowerRightX: 1,
		LowerRightY: 1,
		UpperRightX: 1,
	}
}

type wireVideo struct {
	AIGCType     string   `json:"aigc_type"`
	CategoryID   string   `json:"category_id"`
	CategoryName string   `json:"category_name"`
	CheckFlag    int      `json:"check_flag"`
	Crop         wireCrop `json:"crop"`
	CropRatio    string   `json:"crop_ratio"`
	CropScale    float64  `json:"crop_scale"`
	Duration     int64    `json:"duration"`
	HasAudio     bool     `json:"has_audio"`
	Height       int      `json:"height"`
	ID           string   `json:"id"`
	MaterialName string   `json:"material_name"`
	Path         string   `json:"path"`
	Type         string   `json:"type"`
	Width        int      `json:"width"`
}

type wireAudio struct {
	AppID        int    `json:"app_id"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	CheckFlag    int    `json:"check_flag"`
	Duration     int64  `json:"duration"`
	ID           string `json:"id"`
	MusicID      string `json:"music_id"`
	Name         string `json:"name"`
	Path         string `json:"path"`
	Type         string `json:"type"`
}

type wireText struct {
	AddType                    int       `json:"add_type"`
	Alignment                  int       `json:"alignment"`
	BackgroundAlpha            float64   `json:"background_alpha"`
	BackgroundColor            string    `json:"background_color"`
	BackgroundHeight           float64   `json:"background_height"`
	BackgroundHorizontalOffset float64   `json:"background_horizontal_offset"`
	BackgroundRoundRadius      float64   `json:"background_round_radius"`
	BackgroundVerticalOffset   float64   `json:"background_vertical_offset"`
	BackgroundWidth            float64   `json:"background_width"`
	BoldWidth                  float64   `json:"bold_width"`
	BorderColor                string    `json:"border_color"`
	BorderWidth                float64   `json:"border_width"`
	CheckFlag                  int       `json:"check_flag"`
	Content                    string    `json:"content"`
	FontCategoryID             string    `json:"font_category_id"`
	FontCategoryName           string    `json:"font_category_name"`
	FontID                     string    `json:"font_id"`
	FontName                   string    `json:"font_name"`
	FontPath                   string    `json:"font_path"`
	FontResourceID             string    `json:"font_resource_id"`
	FontSize                   float64   `json:"font_size"`
	FontTitle                  string    `json:"font_title"`
	FontURL                    string    `json:"font_url"`
	Fonts                      []any     `json:"fonts"`
	GlobalAlpha                float64   `json:"global_alpha"`
	HasShadow                  bool      `json:"has_shadow"`
	ID                         string    `json:"id"`
	InitialScale               float64   `json:"initial_scale"`
	IsRichText                 bool      `json:"is_rich_text"`
	ItalicDegree               int       `json:"italic_degree"`
	KTVColor                   string    `json:"ktv_color"`
	LayerWeight                int       `json:"layer_weight"`
	LetterSpacing              float64   `json:"letter_spacing"`
	LineSpacing                float64   `json:"line_spacing"`
	RecognizeType              int       `json:"recognize_type"`
	ShadowAlpha                float64   `json:"shadow_alpha"`
	ShadowAngle                float64   `json:"shadow_angle"`
	ShadowColor                string    `json:"shadow_color"`
	ShadowDistance             float64   `json:"shadow_distance"`
	ShadowPoint                wirePoint `json:"shadow_point"`
	ShadowSmoothing            float64   `json:"shadow_smoothing"`
	ShapeClipX                 bool      `json:"shape_clip_x"`
	ShapeClipY                 bool      `json:"shape_clip_y"`
	StyleName                  string    `json:"style_name"`
	SubType                    int       `json:"sub_type"`
	TextAlpha                  float64   `json:"text_alpha"`
	TextColor                  string    `json:"text_color"`
	TextSize                   int       `json:"text_size"`
	TextToAudioIDs             []string  `json:"text_to_audio_ids"`
	Type                       string    `json:"type"`
	Typesetting                int       `json:"typesetting"`
	Underline                  bool      `json:"underline"`
	UnderlineOffset            float64   `json:"underline_offset"`
	UnderlineWidth             float64   `json:"underline_width"`
	UseEffectDefaultColor      bool      `json:"use_effect_default_color"`
}

type wireTransition struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Duration     int64  `json:"duration"`
	EffectID     string `json:"effect_id"`
	ID           string `json:"id"`
	IsOverlap    bool   `json:"is_overlap"`
	Name         string `json:"name"`
	Platform     string `json:"platform"`
	RenderIndex  int    `json:"render_index"`
	ResourceID   string `json:"resource_id"`
	Type         string `json:"type"`
}

type wireSpeed struct {
	CurveSpeed any     `json:"curve_speed"`
	ID         string  `json:"id"`
	Mode       int     `json:"mode"`
	Speed      float64 `json:"speed"`
	Type       string  `json:"type"`
}

type wireCanvas struct {
	AlbumImage     string  `json:"album_image"`
	Blur           float64 `json:"blur"`
	Color          string  `json:"color"`
	ID             string  `json:"id"`
	Image          string  `json:"image"`
	ImageID        string  `json:"image_id"`
	ImageName      string  `json:"image_name"`
	SourcePlatform int     `json:"source_platform"`
	TeamID         string  `json:"team_id"`
	Type           string  `json:"type"`
}

type wireChannelMap struct {
	AudioChannelMapping int    `json:"audio_channel_mapping"`
	ID                  string `json:"id"`
	IsConfigOpen        bool   `json:"is_config_open"`
	Type                string `json:"type"`
}

type wireVocalSep struct {
	ChoiceID       string `json:"choice_id"`
	ID             string `json:"id"`
	ProductionPath string `json:"production_path"`
	TimeRange      any    `json:"time_range"`
	Type           string `json:"type"`
}

type wireAnimation struct {
	AnimAdjustParams any    `json:"anim_adjust_params"`
	Duration         int64  `json:"duration"`
	ID               string `json:"id"`
	MaterialType     string `json:"material_type"`
	Name             string `json:"name"`
	Panel            string `json:"panel"`
	Platform         string `json:"platform"`
	ResourceID       string `json:"resource_id"`
	Start            int64  `json:"start"`
	Type             string `json:"type"`
}

type wireAnimationGroup struct {
	Animations           []wireAnimation `json:"animations"`
	ID                   string          `json:"id"`
	MultiLanguageCurrent string          `json:"multi_language_current"`
	Type                 string          `json:"type"`
}

type wireEffect struct {
	AdjustParams    []any   `json:"adjust_params"`
	ApplyTargetType int     `json:"apply_target_type"`
	CategoryID      string  `json:"category_id"`
	CategoryName    string  `json:"category_name"`
	EffectID        string  `json:"effect_id"`
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	RenderIndex     int     `json:"render_index"`
	ResourceID      string  `json:"resource_id"`
	Type            string  `json:"type"`
	Value           float64 `json:"value"`
}

type wireFade struct {
	FadeInDuration  int64  `json:"fade_in_duration"`
	FadeOutDuration int64  `json:"fade_out_duration"`
	FadeType        int    `json:"fade_type"`
	ID              string `json:"id"`
	Type            string `json:"type"`
}

type wireMaterials struct {
	AudioBalances        []any                `json:"audio_balances"`
	AudioEffects         []any                `json:"audio_effects"`
	AudioFades           []wireFade           `json:"audio_fades"`
	Audios               []wireAudio          `json:"audios"`
	Beats                []any                `json:"beats"`
	Canvases             []wireCanvas         `json:"canvases"`
	Chromas              []any                `json:"chromas"`
	ColorCurves          []any                `json:"color_curves"`
	Effects              []any                `json:"effects"`
	Flowers              []any                `json:"flowers"`
	GreenScreens         []any                `json:"green_screens"`
	Handwrites           []any                `json:"handwrites"`
	HSL                  []any                `json:"hsl"`
	Images               []any                `json:"images"`
	LogColorWheels       []any                `json:"log_color_wheels"`
	Loudnesses           []any                `json:"loudnesses"`
	ManualDeformations   []any                `json:"manual_deformations"`
	Masks                []any                `json:"masks"`
	MaterialAnimations   []wireAnimationGroup `json:"material_animations"`
	MaterialColors       []any                `json:"material_colors"`
	Placeholders         []any                `json:"placeholders"`
	PluginEffects        []any                `json:"plugin_effects"`
	PrimaryColorWheels   []any                `json:"primary_color_wheels"`
	RealtimeDenoises     []any                `json:"realtime_denoises"`
	Shapes               []any                `json:"shapes"`
	SmartCrops           []any                `json:"smart_crops"`
	SoundChannelMappings []wireChannelMap     `json:"sound_channel_mappings"`
	Speeds               []wireSpeed          `json:"speeds"`
	Stickers             []any                `json:"stickers"`
	TailLeaders          []any                `json:"tail_leaders"`
	TextTemplates        []any                `json:"text_templates"`
	Texts                []wireText           `json:"texts"`
	Transitions          []wireTransition     `json:"transitions"`
	VideoEffects         []wireEffect         `json:"video_effects"`
	Videos               []wireVideo          `json:"videos"`
	VocalSeparations     []wireVocalSep       `json:"vocal_separations"`
}

type wireCanvasConfig struct {
	Height int    `json:"height"`
	Ratio  string `json:"ratio"`
	Width  int    `json:"width"`
}

type wireConfig struct {
	AdjustMaxIndex         int    `json:"adjust_max_index"`
	AttachmentInfo         []any  `json:"attachment_info"`
	CombinationMaxIndex    int    `json:"combination_max_index"`
	ExportRange            any    `json:"export_range"`
	ExtractAudioLastIndex  int    `json:"extract_audio_last_index"`
	LyricsRecognitionID    string `json:"lyrics_recognition_id"`
	LyricsSync             bool   `json:"lyrics_sync"`
	LyricsTaskinfo         []any  `json:"lyrics_taskinfo"`
	MaintrackAdsorb        bool   `json:"maintrack_adsorb"`
	MaterialSaveMode       int    `json:"material_save_mode"`
	OriginalSoundLastIndex int    `json:"original_sound_last_index"`
	RecordAudioLastIndex   int    `json:"record_audio_last_index"`
	StickerMaxIndex        int    `json:"sticker_max_index"`
	SubtitleRecognitionID  string `json:"subtitle_recognition_id"`
	SubtitleSync           bool   `json:"subtitle_sync"`
	SubtitleTaskinfo       []any  `json:"subtitle_taskinfo"`
	SystemFontList         []any  `json:"system_font_list"`
	VideoMute              bool   `json:"video_mute"`
	ZoomInfoParams         any    `json:"zoom_info_params"`
}

func defaultWireConfig() wireConfig {
	return wireConfig{
		AdjustMaxIndex:         1,
		AttachmentInfo:         []any{},
		CombinationMaxIndex:    1,
		ExtractAudioLastIndex:  1,
		LyricsSync:             true,
		LyricsTaskinfo:         []any{},
		MaintrackAdsorb:        true,
		OriginalSoundLastIndex: 1,
		RecordAudioLastIndex:   1,
		StickerMaxIndex:        1,
		SubtitleSync:           true,
		SubtitleTaskinfo:       []any{},
		SystemFontList:         []any{},
	}
}

type wirePlatform struct {
	AppID      int    `json:"app_id"`
	AppSource  string `json:"app_source"`
	AppVersion string `json:"app_version"`
	DeviceID   string `json:"device_id"`
	HardDiskID string `json:"hard_disk_id"`
	MacAddress string `json:"mac_address"`
	OS         string `json:"os"`
	OSVersion  string `json:"os_version"`
}

func defaultWirePlatform() wirePlatform {
	return wirePlatform{
		AppID:      3704,
		AppSource:  "lv",
		AppVersion: "5.9.0",
		OS:         "mac",
		OSVersion:  "12.3",
	}
}

type wireKeyframesIndex struct {
	Adjusts    []any `json:"adjusts"`
	Audios     []any `json:"audios"`
	Effects    []any `json:"effects"`
	Filters    []any `json:"filters"`
	Handwrites []any `json:"handwrites"`
	Stickers   []any `json:"stickers"`
	Texts      []any `json:"texts"`
	Videos     []any `json:"videos"`
}

func emptyWireKeyframesIndex() wireKeyframesIndex {
	return wireKeyframesIndex{
		Adjusts:    []any{},
		Audios:     []any{},
		Effects:    []any{},
		Filters:    []any{},
		Handwrites: []any{},
		Stickers:   []any{},
		Texts:      []any{},
		Videos:     []any{},
	}
}

type wireDraft struct {
	CanvasConfig           wireCanvasConfig   `json:"canvas_config"`
	ColorSpace             int                `json:"color_space"`
	Config                 wireConfig         `json:"config"`
	Cover                  any                `json:"cover"`
	CreateTime             int64              `json:"create_time"`
	Duration               int64              `json:"duration"`
	ExtraInfo              any                `json:"extra_info"`
	FPS                    float64            `json:"fps"`
	FreeRenderIndexModeOn  bool               `json:"free_render_index_mode_on"`
	GroupContainer         any                `json:"group_container"`
	ID                     string             `json:"id"`
	KeyframeGraphList      []any              `json:"keyframe_graph_list"`
	Keyframes              wireKeyframesIndex `json:"keyframes"`
	LastModifiedPlatform   wirePlatform       `json:"last_modified_platform"`
	Materials              wireMaterials      `json:"materials"`
	MutableConfig          any                `json:"mutable_config"`
	Name                   string             `json:"name"`
	NewVersion             string             `json:"new_version"`
	Platform               wirePlatform       `json:"platform"`
	Relationships          []any              `json:"relationships"`
	RenderIndexTrackModeOn bool               `json:"render_index_track_mode_on"`
	RetouchCover           any                `json:"retouch_cover"`
	Source                 string             `json:"source"`
	StaticCoverImagePath   string             `json:"static_cover_image_path"`
	TimeMarks              any                `json:"time_marks"`
	Tracks                 []wireTrack        `json:"tracks"`
	UpdateTime             int64              `json:"update_time"`
	Version                int                `json:"version"`
}

// EncodeWire serializes the draft into the editor's draft_content.json
// format, indented with four spaces. Callers validate first; EncodeWire does
// not re-check invariants.
func (d *Draft) EncodeWire() ([]byte, error) {
	doc := wireDraft{
		CanvasConfig: wireCanvasConfig{
			Height: d.Canvas.Height,
			Ratio:  d.Canvas.Ratio,
			Width:  d.Canvas.Width,
		},
		Config:               defaultWireConfig(),
		Duration:             d.Duration,
		FPS:                  float64(d.FPS),
		ID:                   string(d.id),
		KeyframeGraphList:    []any{},
		Keyframes:            emptyWireKeyframesIndex(),
		LastModifiedPlatform: defaultWirePlatform(),
		Materials:            d.encodeMaterials(),
		Name:                 d.Name,
		NewVersion:           "110.0.0",
		Platform:             defaultWirePlatform(),
		Relationships:        []any{},
		Source:               "default",
		Tracks:               []wireTrack{},
		Version:              360000,
	}

	for trackIndex, t := range d.Tracks {
		doc.Tracks = append(doc.Tracks, encodeTrack(t, trackIndex))
	}

	return json.MarshalIndent(doc, "", "    ")
}

func (d *Draft) encodeMaterials() wireMaterials {
	r := d.Registry
	m := wireMaterials{
		AudioBalances:      []any{},
		AudioEffects:       []any{},
		Beats:              []any{},
		Chromas:            []any{},
		ColorCurves:        []any{},
		Effects:            []any{},
		Flowers:            []any{},
		GreenScreens:       []any{},
		Handwrites:         []any{},
		HSL:                []any{},
		Images:             []any{},
		LogColorWheels:     []any{},
		Loudnesses:         []any{},
		ManualDeformations: []any{},
		Masks:              []any{},
		MaterialColors:     []any{},
		Placeholders:       []any{},
		PluginEffects:      []any{},
		PrimaryColorWheels: []any{},
		RealtimeDenoises:   []any{},
		Shapes:             []any{},
		SmartCrops:         []any{},
		Stickers:           []any{},
		TailLeaders:        []any{},
		TextTemplates:      []any{},
	}

	for _, e := range r.images {
		path := e.WirePath
		if path == "" {
			path = e.Path
		}
		m.Videos = append(m.Videos, wireVideo{
			AIGCType:     "none",
			CategoryName: "local",
			CheckFlag:    63487,
			Crop:         defaultWireCrop(),
			CropRatio:    "free",
			CropScale:    1,
			Duration:     ImageWireDuration,
			Height:       e.Height,
			ID:           string(e.id),
			MaterialName: e.Name,
			Path:         path,
			Type:         "photo",
			Width:        e.Width,
		})
	}

	for _, e := range r.audios {
		path := e.WirePath
		if path == "" {
			path = e.Path
		}
		m.Audios = append(m.Audios, wireAudio{
			CategoryName: "local",
			CheckFlag:    1,
			Duration:     e.Duration,
			ID:           string(e.id),
			Name:         e.Name,
			Path:         path,
			Type:         "extract_music",
		})
	}

	for _, e := range r.texts {
		m.Texts = append(m.Texts, encodeText(e))
	}

	for _, e := range r.transitions {
		m.Transitions = append(m.Transitions, wireTransition{
			CategoryName: "transition",
			Duration:     e.Duration,
			EffectID:     e.EffectID,
			ID:           string(e.id),
			IsOverlap:    e.IsOverlap,
			Name:         e.Name,
			Platform:     "all",
			ResourceID:   e.ResourceID,
			Type:         "transition",
		})
	}

	for _, e := range r.effects {
		m.VideoEffects = append(m.VideoEffects, wireEffect{
			AdjustParams:    []any{},
			ApplyTargetType: 2,
			CategoryName:    "effect",
			EffectID:        e.EffectID,
			ID:              string(e.id),
			Name:            e.Name,
			ResourceID:      e.ResourceID,
			Type:            "video_effect",
			Value:           1,
		})
	}

	for _, e := range r.canvases {
		m.Canvases = append(m.Canvases, wireCanvas{
			Color: e.Color,
			ID:    string(e.id),
			Type:  "canvas_color",
		})
	}

	for _, e := range r.speeds {
		m.Speeds = append(m.Speeds, wireSpeed{
			ID:    string(e.id),
			Speed: e.Value,
			Type:  "speed",
		})
	}

	for _, e := range r.channelMaps {
		m.SoundChannelMappings = append(m.SoundChannelMappings, wireChannelMap{
			AudioChannelMapping: 0,
			ID:                  string(e.id),
			IsConfigOpen:        false,
			Type:                "",
		})
	}

	for _, e := range r.vocalSeps {
		m.VocalSeparations = append(m.VocalSeparations, wireVocalSep{
			ID:   string(e.id),
			Type: "vocal_separation",
		})
	}

	for _, e := range r.animations {
		materialType := e.Animation.MaterialType
		if materialType == "" {
			materialType = "video"
		}
		panel := ""
		if materialType == "video" {
			panel = "video"
		}
		m.MaterialAnimations = append(m.MaterialAnimations, wireAnimationGroup{
			Animations: []wireAnimation{{
				Duration:     e.Animation.Duration,
				ID:           string(NewID()),
				MaterialType: materialType,
				Name:         e.Animation.Name,
				Panel:        panel,
				Platform:     "all",
				ResourceID:   e.Animation.ResourceID,
				Type:         e.Animation.Type,
			}},
			ID:                   string(e.id),
			MultiLanguageCurrent: "none",
			Type:                 "sticker_animation",
		})
	}

	for _, e := range r.fades {
		m.AudioFades = append(m.AudioFades, wireFade{
			FadeInDuration:  e.InDuration,
			FadeOutDuration: e.OutDuration,
			ID:              string(e.id),
			Type:            "audio_fade",
		})
	}

	ensureBuckets(&m)
	return m
}

// ensureBuckets replaces nil slices with empty ones so every bucket encodes
// as [] rather than null.
func ensureBuckets(m *wireMaterials) {
	if m.AudioFades == nil {
		m.AudioFades = []wireFade{}
	}
	if m.Audios == nil {
		m.Audios = []wireAudio{}
	}
	if m.Canvases == nil {
		m.Canvases = []wireCanvas{}
	}
	if m.MaterialAnimations == nil {
		m.MaterialAnimations = []wireAnimationGroup{}
	}
	if m.SoundChannelMappings == nil {
		m.SoundChannelMappings = []wireChannelMap{}
	}
	if m.Speeds == nil {
		m.Speeds = []wireSpeed{}
	}
	if m.Texts == nil {
		m.Texts = []wireText{}
	}
	if m.Transitions == nil {
		m.Transitions = []wireTransition{}
	}
	if m.VideoEffects == nil {
		m.VideoEffects = []wireEffect{}
	}
	if m.Videos == nil {
		m.Videos = []wireVideo{}
	}
	if m.VocalSeparations == nil {
		m.VocalSeparations = []wireVocalSep{}
	}
}

func encodeText(e textEntry) wireText {
	return wireText{
		AddType:               2,
		Alignment:             1,
		BackgroundAlpha:       1,
		BackgroundHeight:      1,
		BackgroundWidth:       1,
		BorderColor:           e.BorderColor,
		BorderWidth:           e.BorderWidth,
		CheckFlag:             7,
		Content:               richTextContent(e.Text),
		FontPath:              e.FontPath,
		FontSize:              wireFontSize(e.Size),
		FontTitle:             "none",
		Fonts:                 []any{},
		GlobalAlpha:           1,
		ID:                    string(e.id),
		InitialScale:          1,
		LayerWeight:           1,
		LineSpacing:           0.02,
		ShadowAlpha:           0.8,
		ShadowAngle:           -45,
		ShadowDistance:        8,
		ShadowPoint:           wirePoint{X: 1.0182337649086284, Y: -1.0182337649086284},
		ShadowSmoothing:       1,
		TextAlpha:             1,
		TextColor:             e.Color,
		TextSize:              e.Size,
		TextToAudioIDs:        []string{},
		Type:                  "subtitle",
		UnderlineOffset:       0.22,
		UnderlineWidth:        0.05,
		UseEffectDefaultColor: true,
	}
}

func encodeTrack(t *Track, trackIndex int) wireTrack {
	wt := wireTrack{
		Flag:          0,
		ID:            string(t.id),
		IsDefaultName: t.Name == "",
		Name:          t.Name,
		Segments:      []wireSegment{},
		Type:          string(t.Kind),
	}
	for _, s := range t.Segments {
		wt.Segments = append(wt.Segments, encodeSegment(s, trackIndex))
	}
	return wt
}

func encodeSegment(s *Segment, trackIndex int) wireSegment {
	ws := wireSegment{
		Clip: wireClip{
			Alpha:     s.Clip.Alpha,
			Flip:      wireFlip{Horizontal: s.Clip.FlipH, Vertical: s.Clip.FlipV},
			Rotation:  s.Clip.Rotation,
			Scale:     wirePoint{X: s.Clip.ScaleX, Y: s.Clip.ScaleY},
			Transform: wirePoint{X: s.Clip.TransformX, Y: s.Clip.TransformY},
		},
		CommonKeyframes:   []wireKeyframeSeries{},
		ExtraMaterialRefs: []string{},
		ID:                string(s.id),
		KeyframeRefs:      []string{},
		LastNonzeroVolume: 1,
		MaterialID:        string(s.materialRef),
		RenderIndex:       s.RenderIndex,
		Speed:             s.Speed,
		TargetTimerange:   wireTimerange{Duration: s.Target.Duration, Start: s.Target.Start},
		TemplateScene:     "default",
		TrackRenderIndex:  trackIndex,
		Visible:           s.Visible,
		Volume:            s.Volume,
	}
	if s.Source != nil {
		ws.SourceTimerange = &wireTimerange{Duration: s.Source.Duration, Start: s.Source.Start}
	}
	for _, ref := range s.extraRefs {
		ws.ExtraMaterialRefs = append(ws.ExtraMaterialRefs, string(ref))
	}
	for _, series := range s.Keyframes {
		ws.CommonKeyframes = append(ws.CommonKeyframes, encodeKeyframeSeries(series))
	}
	return ws
}

func encodeKeyframeSeries(series KeyframeSeries) wireKeyframeSeries {
	out := wireKeyframeSeries{
		ID:           string(NewID()),
		KeyframeList: make([]wireKeyframe, 0, len(series.Frames)),
		PropertyType: string(series.Property),
	}
	for _, frame := range series.Frames {
		out.KeyframeList = append(out.KeyframeList, wireKeyframe{
			CurveType:  "Line",
			ID:         string(NewID()),
			TimeOffset: frame.TimeOffset,
			Values:     []float64{frame.Value},
		})
	}
	return out
}

// TrackInfo summarizes one track of a decoded wire document.
type TrackInfo struct {
	Type     string
	Name     string
	Segments int
}

// WireInfo summarizes a decoded draft_content.json for inspection.
type WireInfo struct {
	ID             string
	Name           string
	Duration       int64
	FPS            float64
	Width          int
	Height         int
	Ratio          string
	Tracks         []TrackInfo
	SegmentCount   int
	MaterialCounts map[string]int
}

// DecodeWire parses a draft_content.json document into a summary.
func DecodeWire(data []byte) (*WireInfo, error) {
	var doc wireDraft
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse draft document: %w", err)
	}

	info := &WireInfo{
		ID:       doc.ID,
		Name:     doc.Name,
		Duration: doc.Duration,
		FPS:      doc.FPS,
		Width:    doc.CanvasConfig.Width,
		Height:   doc.CanvasConfig.Height,
		Ratio:    doc.CanvasConfig.Ratio,
		MaterialCounts: map[string]int{
			"videos":                 len(doc.Materials.Videos),
			"audios":                 len(doc.Materials.Audios),
			"texts":                  len(doc.Materials.Texts),
			"transitions":            len(doc.Materials.Transitions),
			"video_effects":          len(doc.Materials.VideoEffects),
			"speeds":                 len(doc.Materials.Speeds),
			"canvases":               len(doc.Materials.Canvases),
			"sound_channel_mappings": len(doc.Materials.SoundChannelMappings),
			"vocal_separations":      len(doc.Materials.VocalSeparations),
			"material_animations":    len(doc.Materials.MaterialAnimations),
			"audio_fades":            len(doc.Materials.AudioFades),
		},
	}
	for _, t := range doc.Tracks {
		info.Tracks = append(info.Tracks, TrackInfo{
			Type:     t.Type,
			Name:     t.Name,
			Segments: len(t.Segments),
		})
		info.SegmentCount += len(t.Segments)
	}
	return info, nil
}
