package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the application settings loaded from flyoutkit.toml.
type Config struct {
	Menu   MenuConfig   `toml:"menu"`
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
}

// MenuConfig controls the shared placement policy of the menu bar.
type MenuConfig struct {
	// Placement is one of auto, top, bottom, left, right.
	Placement string `toml:"placement"`
	// OpenOffset is the gap in pixels between the anchor item and its
	// popup at the primary position.
	OpenOffset float32 `toml:"open_offset"`
}

type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the settings used when no configuration file exists.
func Default() Config {
	return Config{
		Menu: MenuConfig{
			Placement:  "bottom",
			OpenOffset: 2,
		},
		Window: WindowConfig{
			Width:  900,
			Height: 600,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration file at path, filling unset fields from the
// defaults. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Menu.Placement {
	case "auto", "top", "bottom", "left", "right":
	default:
		return fmt.Errorf("config: unknown placement %q", c.Menu.Placement)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %gx%g must be positive", c.Window.Width, c.Window.Height)
	}

	return nil
}
