package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Assets.Dir != "assets" || cfg.Assets.CameraSettings != "settings.camera" {
		t.Fatalf("assets defaults %+v", cfg.Assets)
	}
	if cfg.Assets.DebounceMs != 100 {
		t.Fatalf("debounce default %d", cfg.Assets.DebounceMs)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log default %+v", cfg.Log)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Fatalf("window defaults %+v", cfg.Window)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prisma.toml")
	content := `
[assets]
dir = "content"
debounce_ms = 250

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Assets.Dir != "content" || cfg.Assets.DebounceMs != 250 {
		t.Fatalf("assets %+v", cfg.Assets)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log %+v", cfg.Log)
	}
	// Untouched sections keep their defaults.
	if cfg.Assets.CameraSettings != "settings.camera" {
		t.Fatalf("camera settings %q", cfg.Assets.CameraSettings)
	}
	if cfg.Window.Title != "Prisma" {
		t.Fatalf("window %+v", cfg.Window)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prisma.toml")
	if err := os.WriteFile(path, []byte("[assets\ndir ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadValidates(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty assets dir", "[assets]\ndir = \"\"\n"},
		{"negative debounce", "[assets]\ndebounce_ms = -1\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prisma.toml")
			if err := os.WriteFile(path, []byte(c.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
