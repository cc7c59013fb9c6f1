package tagball

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the user-facing configuration of a tag cloud. Only Tags is
// required; every other field falls back to DefaultConfig when zero.
type Config struct {
	Tags []Tag `yaml:"tags"`

	// Origin is the sphere center in surface coordinates. Nil centers the
	// sphere on the surface.
	Origin *Vec2 `yaml:"origin,omitempty"`

	RadiusDivisor float64 `yaml:"radius_divisor,omitempty"`
	FontSize      float64 `yaml:"font_size,omitempty"`
	SpiralDensity int     `yaml:"spiral_density,omitempty"`
	BaseSpeed     float64 `yaml:"base_speed,omitempty"`
	SpeedDivisor  float64 `yaml:"speed_divisor,omitempty"`

	Colors ColorConfig `yaml:"colors,omitempty"`

	// FadeFrames eases the highlight color over this many frames. Zero
	// switches colors instantly.
	FadeFrames int `yaml:"fade_frames,omitempty"`
	// RenormalizeEvery rescales item positions to the unit sphere every N
	// frames. Zero accepts floating-point drift.
	RenormalizeEvery int `yaml:"renormalize_every,omitempty"`
}

// ColorConfig holds "#rrggbb" colors.
type ColorConfig struct {
	Normal     string `yaml:"normal,omitempty"`
	Highlight  string `yaml:"highlight,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// DefaultConfig returns a configuration with every optional field set.
// Tags is empty.
func DefaultConfig() Config {
	lo := DefaultLayoutOptions()
	return Config{
		Tags:          []Tag{},
		RadiusDivisor: lo.RadiusDivisor,
		FontSize:      lo.FontSize,
		SpiralDensity: lo.SpiralDensity,
		BaseSpeed:     lo.BaseSpeed,
		SpeedDivisor:  lo.SpeedDivisor,
		Colors: ColorConfig{
			Normal:     "#000000",
			Highlight:  "#ff0000",
			Background: "#ffffff",
		},
	}
}

// withDefaults fills zero-valued optional fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RadiusDivisor <= 0 {
		c.RadiusDivisor = d.RadiusDivisor
	}
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.SpiralDensity <= 0 {
		c.SpiralDensity = d.SpiralDensity
	}
	if c.BaseSpeed <= 0 {
		c.BaseSpeed = d.BaseSpeed
	}
	if c.SpeedDivisor <= 0 {
		c.SpeedDivisor = d.SpeedDivisor
	}
	if c.Colors.Normal == "" {
		c.Colors.Normal = d.Colors.Normal
	}
	if c.Colors.Highlight == "" {
		c.Colors.Highlight = d.Colors.Highlight
	}
	if c.Colors.Background == "" {
		c.Colors.Background = d.Colors.Background
	}
	return c
}

// Validate reports configuration errors. All errors wrap ErrConfiguration.
func (c Config) Validate() error {
	if c.Tags == nil {
		return fmt.Errorf("config: tags required: %w", ErrConfiguration)
	}
	if c.FadeFrames < 0 {
		return fmt.Errorf("config: fade_frames %d is negative: %w", c.FadeFrames, ErrConfiguration)
	}
	if c.RenormalizeEvery < 0 {
		return fmt.Errorf("config: renormalize_every %d is negative: %w", c.RenormalizeEvery, ErrConfiguration)
	}
	c = c.withDefaults()
	for name, hex := range map[string]string{
		"normal":     c.Colors.Normal,
		"highlight":  c.Colors.Highlight,
		"background": c.Colors.Background,
	} {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("config: %s color %q: %v: %w", name, hex, err, ErrConfiguration)
		}
	}
	return nil
}

// LayoutOptions returns the layout parameters described by c.
func (c Config) LayoutOptions() LayoutOptions {
	c = c.withDefaults()
	return LayoutOptions{
		RadiusDivisor: c.RadiusDivisor,
		FontSize:      c.FontSize,
		SpiralDensity: c.SpiralDensity,
		BaseSpeed:     c.BaseSpeed,
		SpeedDivisor:  c.SpeedDivisor,
	}
}

// palette returns the parsed colors. c must have passed Validate.
func (c Config) palette() (normal, highlight, background Color) {
	c = c.withDefaults()
	normal, _ = ParseColor(c.Colors.Normal)
	highlight, _ = ParseColor(c.Colors.Highlight)
	background, _ = ParseColor(c.Colors.Background)
	return normal, highlight, background
}

// Background returns the parsed background color, or white if it does not
// parse.
func (c Config) Background() Color {
	_, _, bg := c.palette()
	if bg == (Color{}) {
		return ColorWhite
	}
	return bg
}

// ParseConfig decodes YAML configuration data and validates it.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if c.Tags == nil {
		c.Tags = []Tag{}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c.withDefaults(), nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}
