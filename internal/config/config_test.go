package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"draftsmith/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("DRAFTSMITH_CONFIG", "")

	cfg, path, exists, err := config.Load(filepath.Join(dir, "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatalf("exists = true for missing file %s", path)
	}
	if got, want := cfg.Canvas.Width, 1920; got != want {
		t.Fatalf("Canvas.Width = %d, want %d", got, want)
	}
	if got, want := cfg.Canvas.FPS, 30; got != want {
		t.Fatalf("Canvas.FPS = %d, want %d", got, want)
	}
	if got, want := cfg.Timeline.PerImageMS, int64(5000); got != want {
		t.Fatalf("Timeline.PerImageMS = %d, want %d", got, want)
	}
	if got, want := cfg.Animation.Mode, "random"; got != want {
		t.Fatalf("Animation.Mode = %q, want %q", got, want)
	}
	if !cfg.Transitions.Enabled {
		t.Fatal("Transitions.Enabled = false, want true by default")
	}
	if cfg.Effects.Enabled {
		t.Fatal("Effects.Enabled = true, want false by default")
	}
	if got, want := cfg.Subtitles.Color, "#FFFFFF"; got != want {
		t.Fatalf("Subtitles.Color = %q, want %q", got, want)
	}
	if got, want := cfg.Logging.Format, "auto"; got != want {
		t.Fatalf("Logging.Format = %q, want %q", got, want)
	}
}

func TestLoadParsesAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	configPath := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`output_dir = "~/drafts"`,
		"[canvas]",
		"width = 1080",
		"height = 1920",
		"[timeline]",
		"per_image_ms = 7000",
		"[logging]",
		`level = "debug"`,
		`format = "json"`,
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("exists = false, want true")
	}
	if resolved != configPath {
		t.Fatalf("resolved = %q, want %q", resolved, configPath)
	}
	if got, want := cfg.Paths.OutputDir, filepath.Join(dir, "drafts"); got != want {
		t.Fatalf("OutputDir = %q, want %q", got, want)
	}
	if got, want := cfg.Canvas.Width, 1080; got != want {
		t.Fatalf("Canvas.Width = %d, want %d", got, want)
	}
	if got, want := cfg.Timeline.PerImageMS, int64(7000); got != want {
		t.Fatalf("PerImageMS = %d, want %d", got, want)
	}
	if got, want := cfg.Logging.Level, "debug"; got != want {
		t.Fatalf("Logging.Level = %q, want %q", got, want)
	}
}

func TestLoadHonorsEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	configPath := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(configPath, []byte("[canvas]\nfps = 60\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DRAFTSMITH_CONFIG", configPath)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("exists = false, want true via DRAFTSMITH_CONFIG")
	}
	if resolved != configPath {
		t.Fatalf("resolved = %q, want %q", resolved, configPath)
	}
	if got, want := cfg.Canvas.FPS, 60; got != want {
		t.Fatalf("Canvas.FPS = %d, want %d", got, want)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "negative canvas width",
			content: "[canvas]\nwidth = -1\n",
			wantMsg: "canvas.width",
		},
		{
			name:    "zero per image duration",
			content: "[timeline]\nper_image_ms = -5\n",
			wantMsg: "timeline.per_image_ms",
		},
		{
			name:    "bad animation mode",
			content: "[animation]\nenabled = true\nmode = \"spiral\"\n",
			wantMsg: "animation.mode",
		},
		{
			name:    "inverted scale bounds",
			content: "[animation]\nenabled = true\nscale_min = 2.0\nscale_max = 1.0\n",
			wantMsg: "animation.scale_max",
		},
		{
			name:    "excessive volume",
			content: "[audio]\nvolume = 5.0\n",
			wantMsg: "audio.volume",
		},
		{
			name:    "subtitle position out of range",
			content: "[subtitles]\nenabled = true\nposition_y = -3.0\n",
			wantMsg: "subtitles.position_y",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("HOME", dir)
			configPath := filepath.Join(dir, "config.toml")
			if err := os.WriteFile(configPath, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			_, _, _, err := config.Load(configPath)
			if err == nil {
				t.Fatal("Load succeeded, want validation error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestNormalizeHexColors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	configPath := filepath.Join(dir, "config.toml")
	content := "[subtitles]\nenabled = true\ncolor = \"ffcc00\"\nborder_color = \" #112233 \"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got, want := cfg.Subtitles.Color, "#FFCC00"; got != want {
		t.Fatalf("Color = %q, want %q", got, want)
	}
	if got, want := cfg.Subtitles.BorderColor, "#112233"; got != want {
		t.Fatalf("BorderColor = %q, want %q", got, want)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	samplePath := filepath.Join(dir, "nested", "config.toml")

	if err := config.CreateSample(samplePath); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(samplePath)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for freshly written sample")
	}
	if cfg.Canvas.Width != 1920 || cfg.Canvas.Height != 1080 {
		t.Fatalf("sample canvas = %dx%d, want 1920x1080", cfg.Canvas.Width, cfg.Canvas.Height)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(dir, "drafts")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Paths.CatalogPath = filepath.Join(dir, "state", "catalog.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	for _, p := range []string{cfg.Paths.OutputDir, cfg.Paths.LogDir, filepath.Join(dir, "state")} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a directory", p)
		}
	}
}
