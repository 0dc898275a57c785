package draft_test

import (
	"errors"
	"testing"

	"draftsmith/internal/draft"
)

func TestNewIDFormat(t *testing.T) {
	seen := make(map[draft.ID]bool)
	for i := 0; i < 64; i++ {
		id := draft.NewID()
		if len(id) != 32 {
			t.Fatalf("id %q has length %d, want 32", id, len(id))
		}
		for _, c := range string(id) {
			if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
				t.Fatalf("id %q contains %q, want uppercase hex", id, c)
			}
		}
		if seen[id] {
			t.Fatalf("id %q repeated", id)
		}
		seen[id] = true
	}
}

func TestRegistryResolveTracksKinds(t *testing.T) {
	r := draft.NewRegistry()
	img := r.AddImage(draft.Image{Path: "/tmp/cover.png", Width: 1280, Height: 720})
	aud := r.AddAudio(draft.Audio{Path: "/tmp/narration.mp3", Duration: 5_000_000})

	kind, ok := r.Resolve(img.Ref())
	if !ok || kind != draft.KindImage {
		t.Fatalf("Resolve(image) = %v, %v, want KindImage, true", kind, ok)
	}
	kind, ok = r.Resolve(aud.Ref())
	if !ok || kind != draft.KindAudio {
		t.Fatalf("Resolve(audio) = %v, %v, want KindAudio, true", kind, ok)
	}
	if _, ok := r.Resolve(draft.NewID()); ok {
		t.Fatal("Resolve(unknown) reported a registered id")
	}
	if got := r.MaterialCount(); got != 2 {
		t.Fatalf("MaterialCount() = %d, want 2", got)
	}
}

func TestRegistryGettersDistinguishErrors(t *testing.T) {
	r := draft.NewRegistry()
	img := r.AddImage(draft.Image{Path: "/tmp/cover.png"})
	aud := r.AddAudio(draft.Audio{Path: "/tmp/narration.mp3"})

	if _, err := r.Image(img.Ref()); err != nil {
		t.Fatalf("Image(image ref) returned error: %v", err)
	}

	_, err := r.Image(aud.Ref())
	if !errors.Is(err, draft.ErrKindMismatch) {
		t.Fatalf("Image(audio ref) error = %v, want ErrKindMismatch", err)
	}
	if errors.Is(err, draft.ErrNotFound) {
		t.Fatalf("kind mismatch error %v also matches ErrNotFound", err)
	}

	_, err = r.Audio(draft.NewID())
	if !errors.Is(err, draft.ErrNotFound) {
		t.Fatalf("Audio(unknown) error = %v, want ErrNotFound", err)
	}
	if errors.Is(err, draft.ErrKindMismatch) {
		t.Fatalf("not-found error %v also matches ErrKindMismatch", err)
	}
}

func TestRegistryGetterReturnsPayload(t *testing.T) {
	r := draft.NewRegistry()
	h := r.AddTransition(draft.Transition{
		Name:       "Dissolve",
		EffectID:   "321493",
		ResourceID: "6724239388189921806",
		Duration:   500_000,
		IsOverlap:  true,
	})

	got, err := r.Transition(h.Ref())
	if err != nil {
		t.Fatalf("Transition() returned error: %v", err)
	}
	if got.Name != "Dissolve" || got.EffectID != "321493" || !got.IsOverlap {
		t.Fatalf("Transition() = %+v, want stored payload", got)
	}
}

func TestRegistryAssetsKeepInsertionOrder(t *testing.T) {
	r := draft.NewRegistry()
	first := r.AddImage(draft.Image{Path: "/tmp/one.png", Name: "one.png"})
	second := r.AddImage(draft.Image{Path: "/tmp/two.png", Name: "two.png"})
	narration := r.AddAudio(draft.Audio{Path: "/tmp/voice.wav", Name: "voice.wav"})
	r.AddCanvas(draft.Canvas{Color: ""})

	assets := r.Assets()
	if len(assets) != 3 {
		t.Fatalf("Assets() returned %d entries, want 3", len(assets))
	}
	wantOrder := []draft.ID{first.Ref(), second.Ref(), narration.Ref()}
	for i, want := range wantOrder {
		if assets[i].ID != want {
			t.Fatalf("assets[%d].ID = %s, want %s", i, assets[i].ID, want)
		}
	}
	if assets[2].Kind != draft.KindAudio {
		t.Fatalf("assets[2].Kind = %v, want KindAudio", assets[2].Kind)
	}
}

func TestSetAssetLocation(t *testing.T) {
	r := draft.NewRegistry()
	img := r.AddImage(draft.Image{Path: "/tmp/cover.png"})
	txt := r.AddText(draft.Text{Content: "hello"})

	if err := r.SetAssetLocation(img.Ref(), "cover.png", "##_draftpath_placeholder_##/materials/cover.png"); err != nil {
		t.Fatalf("SetAssetLocation(image) returned error: %v", err)
	}
	stored, err := r.Image(img.Ref())
	if err != nil {
		t.Fatalf("Image() returned error: %v", err)
	}
	if stored.WirePath != "##_draftpath_placeholder_##/materials/cover.png" {
		t.Fatalf("WirePath = %q after SetAssetLocation", stored.WirePath)
	}
	if stored.Name != "cover.png" {
		t.Fatalf("Name = %q, want cover.png", stored.Name)
	}

	if err := r.SetAssetLocation(txt.Ref(), "x", "y"); !errors.Is(err, draft.ErrKindMismatch) {
		t.Fatalf("SetAssetLocation(text) error = %v, want ErrKindMismatch", err)
	}
}
