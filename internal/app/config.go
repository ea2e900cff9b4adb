package app

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"stardrag/internal/engine/starfield"
	"stardrag/internal/page"
	"stardrag/internal/utils"

	"github.com/pelletier/go-toml/v2"
)

// ConfigName is the file looked up by FindConfigFile when no path is given.
const ConfigName = "stardrag.toml"

type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	FPS       int    `toml:"fps"`
	Wallpaper bool   `toml:"wallpaper"`
}

type StarsConfig struct {
	Seed  int64  `toml:"seed"`
	Color string `toml:"color"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Config is the on-disk configuration. Page is optional; without it the
// default layout is sized to the window.
type Config struct {
	Window WindowConfig `toml:"window"`
	Stars  StarsConfig  `toml:"stars"`
	Log    LogConfig    `toml:"log"`
	Page   *page.Layout `toml:"page"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "stardrag",
			FPS:    60,
		},
		Stars: StarsConfig{
			Seed:  1,
			Color: "#00d4ff",
		},
		Log: LogConfig{Level: "warn"},
	}
}

// LoadConfig reads path over the defaults. An empty path searches the
// default locations, and finding nothing there is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = utils.FindConfigFile(ConfigName)
		if path == "" {
			utils.Debug("Config: no %s found, using defaults", ConfigName)
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	utils.Info("Config loaded from %s", path)
	return cfg, nil
}

// Validate rejects values the window or logger cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS < 0 {
		errs = append(errs, fmt.Errorf("fps %d must not be negative", c.Window.FPS))
	}
	if _, err := ParseHexColor(c.Stars.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := utils.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Layout returns the configured page, or the default one for the window.
func (c Config) Layout() page.Layout {
	if c.Page != nil {
		return *c.Page
	}
	return page.DefaultLayout(c.Window.Width, c.Window.Height)
}

// Material returns the star material with the configured colour.
func (c Config) Material() starfield.Material {
	m := starfield.DefaultMaterial()
	if col, err := ParseHexColor(c.Stars.Color); err == nil {
		m.Color = col
	}
	return m
}

// ParseHexColor accepts "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
