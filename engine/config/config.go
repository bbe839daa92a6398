package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the designer application configuration, loaded from a TOML
// file (prisma.toml by default).
type Config struct {
	// Assets holds everything about the watched content tree.
	Assets AssetsConfig `toml:"assets"`
	// Log holds logging options.
	Log LogConfig `toml:"log"`
	// Window is the desired window configuration, handed to the rendering
	// backend as-is.
	Window WindowConfig `toml:"window"`
}

type AssetsConfig struct {
	// Dir is the root of the asset tree (objects/, materials/, shaders/).
	Dir string `toml:"dir"`
	// CameraSettings is the camera settings file, relative to Dir.
	CameraSettings string `toml:"camera_settings"`
	// DebounceMs is the hot-reload debounce window in milliseconds. Editors
	// tend to produce bursts of write events for a single save.
	DebounceMs int `toml:"debounce_ms"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Dir:            "assets",
			CameraSettings: "settings.camera",
			DebounceMs:     100,
		},
		Log: LogConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Title:  "Prisma",
			Width:  1280,
			Height: 720,
		},
	}
}

// Load reads the configuration from path. Missing file returns defaults;
// a present but malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Assets.Dir == "" {
		return fmt.Errorf("assets.dir must not be empty")
	}
	if c.Assets.DebounceMs < 0 {
		return fmt.Errorf("assets.debounce_ms must not be negative")
	}
	return nil
}
