package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

var (
	// ErrUnknownLevel is returned for a [log] level zap cannot parse.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrInvalid wraps every other validation failure.
	ErrInvalid = errors.New("invalid config")
)

// Quality presets understood by the renderer.
var QualityPresets = []string{"default", "high", "performance"}

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Scene   SceneConfig   `toml:"scene"`
	Page    PageConfig    `toml:"page"`
	Content ContentConfig `toml:"content"`
	Fonts   FontsConfig   `toml:"fonts"`
	Log     LogConfig     `toml:"log"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	MSAA   int    `toml:"msaa"`
	VSync  bool   `toml:"vsync"`
}

type SceneConfig struct {
	ParticleCount int    `toml:"particle_count"`
	Seed          int64  `toml:"seed"` // 0 seeds from the clock
	Quality       string `toml:"quality"`
}

type PageConfig struct {
	LookAhead         float64            `toml:"look_ahead"`
	ScrolledThreshold float64            `toml:"scrolled_threshold"`
	DebounceMS        int                `toml:"debounce_ms"`
	ScrollSpeed       float64            `toml:"scroll_speed"`
	SectionHeights    map[string]float64 `toml:"section_heights"`
}

type ContentConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

// FontsConfig points at TrueType files replacing the embedded Go fonts.
// Empty or unreadable paths keep the embedded face.
type FontsConfig struct {
	Regular  string `toml:"regular"`
	Bold     string `toml:"bold"`
	Mono     string `toml:"mono"`
	MonoBold string `toml:"mono_bold"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a complete working configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Folio3D",
			MSAA:   4,
			VSync:  true,
		},
		Scene: SceneConfig{
			ParticleCount: 50,
			Quality:       "default",
		},
		Page: PageConfig{
			LookAhead:         300,
			ScrolledThreshold: 50,
			DebounceMS:        50,
			ScrollSpeed:       60,
			SectionHeights: map[string]float64{
				"home":     800,
				"about":    900,
				"skills":   700,
				"projects": 1000,
				"contact":  800,
			},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load overlays the TOML file at path onto Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.MSAA < 0 {
		return fmt.Errorf("%w: msaa %d", ErrInvalid, c.Window.MSAA)
	}
	if c.Scene.ParticleCount < 0 {
		return fmt.Errorf("%w: particle_count %d", ErrInvalid, c.Scene.ParticleCount)
	}
	if !knownQuality(c.Scene.Quality) {
		return fmt.Errorf("%w: quality preset %q", ErrInvalid, c.Scene.Quality)
	}
	if c.Page.LookAhead < 0 || c.Page.ScrollSpeed <= 0 || c.Page.DebounceMS < 0 {
		return fmt.Errorf("%w: page look_ahead=%v scroll_speed=%v debounce_ms=%d",
			ErrInvalid, c.Page.LookAhead, c.Page.ScrollSpeed, c.Page.DebounceMS)
	}
	for name, h := range c.Page.SectionHeights {
		if h <= 0 {
			return fmt.Errorf("%w: section %q height %v", ErrInvalid, name, h)
		}
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, c.Log.Level)
	}
	return nil
}

func knownQuality(name string) bool {
	for _, q := range QualityPresets {
		if q == name {
			return true
		}
	}
	return false
}
