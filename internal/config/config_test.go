package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/netmap-visualization/internal/geom"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2.0, cfg.Ratio)
	assert.Equal(t, geom.Point{X: 1025, Y: 383}, cfg.Center)
	assert.Len(t, cfg.Markers, 11)
	assert.Contains(t, cfg.Markers, cfg.Center)
	assert.Equal(t, 200*time.Millisecond, cfg.Timing.ResetDelay)
	assert.False(t, cfg.Audio.Enabled)

	cfg.Markers[0].X = -1
	assert.Equal(t, 1198.0, DefaultMarkers[0].X, "defaults are copied")
}

func TestPalette(t *testing.T) {
	p, err := Default().Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xed, G: 0x66, B: 0x63, A: 0xff}, p.Ring)
	assert.Equal(t, color.RGBA{R: 0xb5, G: 0x2b, B: 0x65, A: 0xff}, p.Connector)
	assert.Equal(t, p.Ring, p.Particle)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
background: maps/world.png
ratio: 3
center: {x: 10, y: 20}
markers:
  - {x: 10, y: 20}
  - {x: 30, y: 40}
colors:
  particle: "#00ff00"
timing:
  reset_delay: 500ms
audio:
  enabled: true
  soundtrack: ambient.mp3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "maps/world.png", cfg.Background)
	assert.Equal(t, 3.0, cfg.Ratio)
	assert.Equal(t, geom.Point{X: 10, Y: 20}, cfg.Center)
	assert.Equal(t, []geom.Point{{X: 10, Y: 20}, {X: 30, Y: 40}}, cfg.Markers)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.ResetDelay)
	assert.Equal(t, DefaultTPS, cfg.Timing.TPS)
	assert.Equal(t, DefaultRingColor, cfg.Colors.Ring)
	assert.True(t, cfg.Audio.Enabled)
	assert.True(t, cfg.Audio.Chime)
	assert.Equal(t, "ambient.mp3", cfg.Audio.Soundtrack)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, p.Particle)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "ratio: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "ratio: 0"))
	assert.ErrorIs(t, err, ErrBadRatio)

	_, err = Load(writeConfig(t, "markers: []"))
	assert.ErrorIs(t, err, ErrNoMarkers)

	_, err = Load(writeConfig(t, "colors: {ring: \"#zzzzzz\"}"))
	assert.ErrorContains(t, err, "ring color")
}

func TestValidateTiming(t *testing.T) {
	cfg := Default()
	cfg.Timing.ResetDelay = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Timing.TPS = 0
	assert.Error(t, cfg.Validate())

	cfg.Timing.TPS = -2
	assert.Error(t, cfg.Validate())

	cfg.Timing.TPS = SyncWithDisplay
	assert.NoError(t, cfg.Validate())
}

func TestExampleSceneMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "scene.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
