package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"draftsmith/internal/catalog"
	"draftsmith/internal/testsupport"
)

func TestRecordAndFetch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)

	ctx := context.Background()
	recorded, err := store.Record(ctx, catalog.Entry{
		DraftID:      "9A1B2C3D4E5F60718293A4B5C6D7E8F9",
		Name:         "Demo Draft",
		OutputDir:    "/tmp/drafts/Demo Draft",
		AudioPath:    "/tmp/audio/narration.mp3",
		ImageCount:   4,
		SegmentCount: 5,
		DurationUS:   20_000_000,
		Seed:         42,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if recorded.ID == 0 {
		t.Fatal("expected entry ID to be assigned")
	}
	if recorded.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	fetched, err := store.GetByID(ctx, recorded.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.Name != "Demo Draft" || fetched.Seed != 42 || fetched.DurationUS != 20_000_000 {
		t.Fatalf("unexpected fetched entry: %#v", fetched)
	}
	if fetched.AudioPath != "/tmp/audio/narration.mp3" {
		t.Fatalf("audio path = %q", fetched.AudioPath)
	}
}

func TestRecordAllowsEmptyAudioPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)

	recorded, err := store.Record(context.Background(), catalog.Entry{
		DraftID:   "0123456789ABCDEF0123456789ABCDEF",
		Name:      "Chunked",
		OutputDir: "/tmp/drafts/Chunked",
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if recorded.AudioPath != "" {
		t.Fatalf("audio path = %q, want empty", recorded.AudioPath)
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := store.Record(ctx, catalog.Entry{
			DraftID:   fmt.Sprintf("%032d", i),
			Name:      fmt.Sprintf("draft-%d", i),
			OutputDir: "/tmp/drafts",
		}); err != nil {
			t.Fatalf("Record %d failed: %v", i, err)
		}
	}

	entries, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Recent returned %d entries, want 3", len(entries))
	}
	if entries[0].Name != "draft-4" || entries[2].Name != "draft-2" {
		t.Fatalf("unexpected order: %s, %s, %s", entries[0].Name, entries[1].Name, entries[2].Name)
	}

	all, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("Recent(0) returned %d entries, want 5", len(all))
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 5 {
		t.Fatalf("Count = %d, want 5", count)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first := testsupport.MustOpenCatalog(t, cfg)
	if _, err := first.Record(context.Background(), catalog.Entry{
		DraftID:   "AA1B2C3D4E5F60718293A4B5C6D7E8F9",
		Name:      "persisted",
		OutputDir: "/tmp/drafts",
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second := testsupport.MustOpenCatalog(t, cfg)
	entries, err := second.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "persisted" {
		t.Fatalf("reopened catalog lost data: %#v", entries)
	}
}
