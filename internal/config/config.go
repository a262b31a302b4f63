// Package config holds the built-in look of the network map and loads
// overrides from a YAML scene file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/netmap-visualization/internal/geom"
)

const (
	WindowTitle = "Network Map"

	DefaultBackground = "assets/images/map.jpg"

	// Scene geometry, logical units
	DefaultRatio   = 2
	ArcHeight      = 100
	PulseMax       = 60
	ConnectorWidth = 1
	ParticleRadius = 4
	GlowBlur       = 8

	// Device pixels, not scaled
	RingWidth = 4

	MarkerAlpha = 0.95

	DefaultRingColor      = "#ed6663"
	DefaultConnectorColor = "#b52b65"
	DefaultParticleColor  = "#ed6663"

	DefaultResetDelay = 200 * time.Millisecond
	DefaultTPS        = 60
	// SyncWithDisplay as tps ties ticks to the display refresh rate.
	SyncWithDisplay = -1

	// Audio
	ChimeFrequency = 880
	ChimeDuration  = 350 * time.Millisecond
	DefaultVolume  = -1.0
)

// DefaultCenter is the hub every connector runs to.
var DefaultCenter = geom.Point{X: 1025, Y: 383}

// DefaultMarkers lists the reference sites. One of them is the center.
var DefaultMarkers = []geom.Point{
	{X: 1198, Y: 640},
	{X: 1129, Y: 270},
	{X: 1128, Y: 394},
	{X: 1025, Y: 383},
	{X: 841, Y: 317},
	{X: 756, Y: 276},
	{X: 700, Y: 500},
	{X: 480, Y: 200},
	{X: 430, Y: 400},
	{X: 470, Y: 600},
	{X: 250, Y: 360},
}

var (
	ErrNoMarkers = errors.New("scene has no markers")
	ErrBadRatio  = errors.New("ratio must be positive")
)

// Colors are hex strings such as "#ed6663".
type Colors struct {
	Ring      string `yaml:"ring"`
	Connector string `yaml:"connector"`
	Particle  string `yaml:"particle"`
}

type Timing struct {
	ResetDelay time.Duration `yaml:"reset_delay"`
	TPS        int           `yaml:"tps"`
}

type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Soundtrack string  `yaml:"soundtrack"`
	Chime      bool    `yaml:"chime"`
	Volume     float64 `yaml:"volume"`
}

// Config is a scene file. Fields left out of the file keep their defaults.
type Config struct {
	Background string       `yaml:"background"`
	Ratio      float64      `yaml:"ratio"`
	Center     geom.Point   `yaml:"center"`
	Markers    []geom.Point `yaml:"markers"`
	Colors     Colors       `yaml:"colors"`
	Timing     Timing       `yaml:"timing"`
	Audio      Audio        `yaml:"audio"`
}

// Palette is Colors parsed.
type Palette struct {
	Ring, Connector, Particle color.RGBA
}

func Default() Config {
	markers := make([]geom.Point, len(DefaultMarkers))
	copy(markers, DefaultMarkers)
	return Config{
		Background: DefaultBackground,
		Ratio:      DefaultRatio,
		Center:     DefaultCenter,
		Markers:    markers,
		Colors: Colors{
			Ring:      DefaultRingColor,
			Connector: DefaultConnectorColor,
			Particle:  DefaultParticleColor,
		},
		Timing: Timing{
			ResetDelay: DefaultResetDelay,
			TPS:        DefaultTPS,
		},
		Audio: Audio{
			Chime:  true,
			Volume: DefaultVolume,
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first problem found.
func (c Config) Validate() error {
	if c.Ratio <= 0 {
		return fmt.Errorf("%w, got %g", ErrBadRatio, c.Ratio)
	}
	if len(c.Markers) == 0 {
		return ErrNoMarkers
	}
	if c.Timing.ResetDelay < 0 {
		return fmt.Errorf("negative reset delay %s", c.Timing.ResetDelay)
	}
	if c.Timing.TPS == 0 || c.Timing.TPS < SyncWithDisplay {
		return fmt.Errorf("tps must be positive or %d, got %d", SyncWithDisplay, c.Timing.TPS)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the configured colors.
func (c Config) Palette() (Palette, error) {
	var p Palette
	for _, f := range []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"ring", c.Colors.Ring, &p.Ring},
		{"connector", c.Colors.Connector, &p.Connector},
		{"particle", c.Colors.Particle, &p.Particle},
	} {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%s color %q: %w", f.name, f.hex, err)
		}
		r, g, b := col.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p, nil
}
