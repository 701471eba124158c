package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/iconclip/iconclip/pkg/render"
)

// configFile is the config file name under the config directory.
const configFile = "config.toml"

// Config holds user preferences from ~/.config/iconclip/config.toml.
// Every field is optional; command-line flags override config values.
type Config struct {
	// Pack is the default pack for bare icon references.
	Pack string `toml:"pack"`

	// Color is the default icon color.
	Color string `toml:"color"`

	// Background is the default background color.
	Background string `toml:"background"`

	// Padding is the default padding fraction.
	Padding float64 `toml:"padding"`

	// Radius is the default corner radius percentage.
	Radius float64 `toml:"radius"`

	// Size is the default raster size in pixels.
	Size int `toml:"size"`

	// PacksDir overrides the user packs directory.
	PacksDir string `toml:"packs_dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Pack:       "outline",
		Color:      render.DefaultColor,
		Background: render.Transparent,
		Size:       render.DefaultSizePx,
	}
}

// LoadConfig reads the user config file, falling back to defaults when
// the file is missing or malformed. A broken config never blocks the
// CLI; it just loses its customizations.
func LoadConfig() Config {
	cfg := DefaultConfig()
	dir, err := configDir()
	if err != nil {
		return cfg
	}
	return loadConfigFile(filepath.Join(dir, configFile), cfg)
}

func loadConfigFile(path string, cfg Config) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Style builds the config's default style.
func (c Config) Style() render.Style {
	return render.Style{
		Color:        c.Color,
		Background:   c.Background,
		Padding:      c.Padding,
		CornerRadius: c.Radius,
		SizePx:       c.Size,
	}
}
