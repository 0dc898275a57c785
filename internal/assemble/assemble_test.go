package assemble_test

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"draftsmith/internal/assemble"
	"draftsmith/internal/compose"
	"draftsmith/internal/config"
	"draftsmith/internal/draft"
	"draftsmith/internal/logging"
	"draftsmith/internal/stage"
	"draftsmith/internal/testsupport"
	"draftsmith/internal/timeline"
)

// fixtureDraft composes a two-image draft over real files. The second image
// shares the first one's filename to exercise copy de-duplication.
func fixtureDraft(t *testing.T, cfg *config.Config) (*draft.Draft, *compose.Manifest) {
	t.Helper()

	assets := t.TempDir()
	imageA := filepath.Join(assets, "scene.png")
	imageB := filepath.Join(assets, "alt", "scene.png")
	narration := filepath.Join(assets, "narration.wav")
	testsupport.WritePNG(t, imageA, 8, 6)
	testsupport.WritePNG(t, imageB, 8, 6)
	testsupport.WriteWAV(t, narration, 1, 8000)

	const total = int64(10_000_000)
	slots, err := timeline.Plan(total, 5_000_000)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	builder := compose.NewBuilder(cfg, rand.New(rand.NewSource(1)))
	d, manifest, err := builder.Build(compose.Input{
		Name:     "Demo Draft",
		Duration: total,
		Slots:    slots,
		Images: []compose.ImageAsset{
			{Path: imageA, Width: 8, Height: 6},
			{Path: imageB, Width: 8, Height: 6},
		},
		Audio: &compose.AudioAsset{Path: narration, Duration: total},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return d, manifest
}

func mustWrite(t *testing.T, d *draft.Draft, root string, opts assemble.Options) *assemble.Layout {
	t.Helper()

	layout, err := assemble.Write(context.Background(), logging.NewNop(), d, root, opts)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	return layout
}

func TestWriteProducesDraftFolder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, _ := fixtureDraft(t, cfg)

	layout := mustWrite(t, d, cfg.Paths.OutputDir, assemble.Options{})

	if got, want := layout.Dir, filepath.Join(cfg.Paths.OutputDir, "Demo Draft"); got != want {
		t.Fatalf("layout dir = %s, want %s", got, want)
	}
	for _, name := range []string{
		"draft_content.json",
		"draft_meta_info.json",
		"draft_agency_config.json",
		"draft_virtual_store.json",
		"template.tmp",
	} {
		if _, err := os.Stat(filepath.Join(layout.Dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}

	entries, err := os.ReadDir(filepath.Join(layout.Dir, "materials"))
	if err != nil {
		t.Fatalf("read materials dir: %v", err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	for _, want := range []string{"scene.png", "scene-1.png", "narration.wav"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("materials %v missing %s", names, want)
		}
	}

	content, err := os.ReadFile(layout.ContentPath)
	if err != nil {
		t.Fatalf("read content: %v", err)
	}
	if !strings.Contains(string(content), draft.PathPlaceholder+"/materials/scene-1.png") {
		t.Fatal("content does not reference the de-duplicated asset path")
	}
	info, err := draft.DecodeWire(content)
	if err != nil {
		t.Fatalf("DecodeWire: %v", err)
	}
	if got, want := info.SegmentCount, 3; got != want {
		t.Fatalf("segment count = %d, want %d", got, want)
	}

	// No staging leftovers once the folder is in place.
	rootEntries, err := os.ReadDir(cfg.Paths.OutputDir)
	if err != nil {
		t.Fatalf("read output root: %v", err)
	}
	for _, entry := range rootEntries {
		if strings.HasPrefix(entry.Name(), ".") {
			t.Fatalf("staging leftover %s in output root", entry.Name())
		}
	}
}

func TestWriteMetaInfo(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, _ := fixtureDraft(t, cfg)

	layout := mustWrite(t, d, cfg.Paths.OutputDir, assemble.Options{})

	data, err := os.ReadFile(layout.MetaPath)
	if err != nil {
		t.Fatalf("read meta: %v", err)
	}
	var meta struct {
		DraftID       string `json:"draft_id"`
		DraftName     string `json:"draft_name"`
		DraftFoldPath string `json:"draft_fold_path"`
		DraftRootPath string `json:"draft_root_path"`
		TmCreate      int64  `json:"tm_draft_create"`
		TmDuration    int64  `json:"tm_duration"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("decode meta: %v", err)
	}
	if got, want := meta.DraftID, string(d.ID()); got != want {
		t.Fatalf("draft_id = %s, want %s", got, want)
	}
	if got, want := meta.DraftName, "Demo Draft"; got != want {
		t.Fatalf("draft_name = %s, want %s", got, want)
	}
	if got, want := meta.DraftFoldPath, layout.Dir; got != want {
		t.Fatalf("draft_fold_path = %s, want %s", got, want)
	}
	if got, want := meta.DraftRootPath, cfg.Paths.OutputDir; got != want {
		t.Fatalf("draft_root_path = %s, want %s", got, want)
	}
	if got, want := meta.TmDuration, d.Duration; got != want {
		t.Fatalf("tm_duration = %d, want %d", got, want)
	}
	if meta.TmCreate <= 0 {
		t.Fatalf("tm_draft_create = %d, want positive", meta.TmCreate)
	}
}

func TestWriteVirtualStoreIndexesMaterials(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, _ := fixtureDraft(t, cfg)

	layout := mustWrite(t, d, cfg.Paths.OutputDir, assemble.Options{})

	data, err := os.ReadFile(filepath.Join(layout.Dir, "draft_virtual_store.json"))
	if err != nil {
		t.Fatalf("read virtual store: %v", err)
	}
	var store struct {
		DraftMaterials []string `json:"draft_materials"`
		Groups         []struct {
			Type  int `json:"type"`
			Value []struct {
				ID string `json:"id"`
			} `json:"value"`
		} `json:"draft_virtual_store"`
	}
	if err := json.Unmarshal(data, &store); err != nil {
		t.Fatalf("decode virtual store: %v", err)
	}
	// Two images plus one audio.
	if got, want := len(store.DraftMaterials), 3; got != want {
		t.Fatalf("draft_materials = %d ids, want %d", got, want)
	}
	if len(store.Groups) != 2 || store.Groups[0].Type != 0 || store.Groups[1].Type != 1 {
		t.Fatalf("virtual store groups malformed: %+v", store.Groups)
	}
	// Blank head entry plus one per material.
	if got, want := len(store.Groups[0].Value), 4; got != want {
		t.Fatalf("group 0 entries = %d, want %d", got, want)
	}
}

func TestWriteRejectsMissingAsset(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, _ := fixtureDraft(t, cfg)
	d.Registry.AddImage(draft.Image{
		Path: filepath.Join(t.TempDir(), "vanished.png"),
		Name: "vanished.png",
	})

	_, err := assemble.Write(context.Background(), logging.NewNop(), d, cfg.Paths.OutputDir, assemble.Options{})
	if err == nil {
		t.Fatal("Write succeeded with a missing asset")
	}
	if !errors.Is(err, stage.ErrAssetCopy) {
		t.Fatalf("error %v is not an asset copy failure", err)
	}

	if _, statErr := os.Stat(filepath.Join(cfg.Paths.OutputDir, "Demo Draft")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("draft folder exists after failed write: %v", statErr)
	}
	entries, readErr := os.ReadDir(cfg.Paths.OutputDir)
	if readErr != nil {
		t.Fatalf("read output root: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("output root not empty after failure: %v", entries)
	}
}

func TestWriteRejectsInvalidDraft(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	d := draft.New("Broken", draft.CanvasConfig{Width: 1920, Height: 1080, Ratio: "original"}, 30)
	d.Duration = 10_000_000
	image := d.Registry.AddImage(draft.Image{Path: "/assets/a.png", Name: "a.png"})
	track := draft.NewTrack(draft.TrackVideo, "")
	segment := draft.NewVideoSegment(image,
		draft.NewTimerange(0, 5_000_000),
		draft.NewTimerange(0, 5_000_000),
		draft.DefaultClip(),
		draft.VideoExtras{
			Speed:      d.Registry.AddSpeed(draft.Speed{Value: 1}),
			Canvas:     d.Registry.AddCanvas(draft.Canvas{}),
			ChannelMap: d.Registry.AddChannelMap(draft.ChannelMap{}),
			VocalSep:   d.Registry.AddVocalSep(draft.VocalSep{}),
		},
	)
	if err := track.AddSegment(segment); err != nil {
		t.Fatalf("AddSegment: %v", err)
	}
	d.AddTrack(track)

	_, err := assemble.Write(context.Background(), logging.NewNop(), d, cfg.Paths.OutputDir, assemble.Options{})
	if err == nil {
		t.Fatal("Write accepted a draft with an incomplete timeline")
	}
	if !errors.Is(err, stage.ErrValidation) {
		t.Fatalf("error %v is not a validation failure", err)
	}
	if _, statErr := os.Stat(filepath.Join(cfg.Paths.OutputDir, "Broken")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("draft folder exists after validation failure: %v", statErr)
	}
}

func TestWriteRefusesExistingFolder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, _ := fixtureDraft(t, cfg)

	existing := filepath.Join(cfg.Paths.OutputDir, "Demo Draft")
	if err := os.MkdirAll(existing, 0o755); err != nil {
		t.Fatalf("mkdir existing: %v", err)
	}
	marker := filepath.Join(existing, "keep.txt")
	if err := os.WriteFile(marker, []byte("keep"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	_, err := assemble.Write(context.Background(), logging.NewNop(), d, cfg.Paths.OutputDir, assemble.Options{})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("Write error = %v, want folder collision", err)
	}
	if _, statErr := os.Stat(marker); statErr != nil {
		t.Fatalf("existing folder was disturbed: %v", statErr)
	}
}

func TestWriteStoryboard(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, manifest := fixtureDraft(t, cfg)

	sb := &assemble.Storyboard{
		Canvas: assemble.StoryboardCanvas{
			Width:  cfg.Canvas.Width,
			Height: cfg.Canvas.Height,
			FPS:    cfg.Canvas.FPS,
			Ratio:  cfg.Canvas.Ratio,
		},
		Audio: []assemble.StoryboardClip{{Path: "narration.wav", StartUS: 0, DurationUS: d.Duration}},
	}
	for _, scene := range manifest.Scenes {
		sb.Scenes = append(sb.Scenes, assemble.StoryboardScene{
			Image:      scene.Image,
			StartUS:    scene.Start,
			DurationUS: scene.Duration,
			Archetype:  scene.Archetype,
			Transition: scene.Transition,
		})
	}

	layout := mustWrite(t, d, cfg.Paths.OutputDir, assemble.Options{Storyboard: sb})
	if layout.StoryboardPath == "" {
		t.Fatal("storyboard path missing from layout")
	}

	data, err := os.ReadFile(layout.StoryboardPath)
	if err != nil {
		t.Fatalf("read storyboard: %v", err)
	}
	var decoded assemble.Storyboard
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode storyboard: %v", err)
	}
	if got, want := len(decoded.Scenes), len(manifest.Scenes); got != want {
		t.Fatalf("storyboard scenes = %d, want %d", got, want)
	}
	if decoded.Canvas != sb.Canvas {
		t.Fatalf("storyboard canvas = %+v, want %+v", decoded.Canvas, sb.Canvas)
	}
	if decoded.Scenes[1].Transition == "" {
		t.Fatal("second scene lost its transition in the round trip")
	}
}

func TestWriteArchive(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, _ := fixtureDraft(t, cfg)

	layout := mustWrite(t, d, cfg.Paths.OutputDir, assemble.Options{Archive: true})
	if got, want := layout.ArchivePath, layout.Dir+".zip"; got != want {
		t.Fatalf("archive path = %s, want %s", got, want)
	}

	reader, err := zip.OpenReader(layout.ArchivePath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer reader.Close()

	found := make(map[string]bool)
	for _, file := range reader.File {
		found[file.Name] = true
	}
	for _, want := range []string{
		"Demo Draft/draft_content.json",
		"Demo Draft/draft_meta_info.json",
		"Demo Draft/materials/narration.wav",
	} {
		if !found[want] {
			t.Fatalf("archive missing %s; has %v", want, keys(found))
		}
	}
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
