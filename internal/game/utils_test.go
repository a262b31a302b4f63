package game

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 0.95, clamp01(0.95))
	assert.Equal(t, 1.0, clamp01(3))
}

func TestColorComponents(t *testing.T) {
	r, g, b, a := colorComponents(color.RGBA{R: 0xff, G: 0x00, B: 0x33, A: 0xff}, 0.5)
	assert.Equal(t, float32(1), r)
	assert.Equal(t, float32(0), g)
	assert.InDelta(t, 0.2, b, 1e-6)
	assert.InDelta(t, 0.5, a, 1e-6)

	// premultiplied input comes back straight
	r, _, _, a = colorComponents(color.RGBA{R: 0x80, A: 0x80}, 1)
	assert.InDelta(t, 1, r, 0.01)
	assert.InDelta(t, 0.5, a, 0.01)
}

func TestGlowPixels(t *testing.T) {
	const size = 32
	px := glowPixels(size)
	require.Len(t, px, size*size*4)

	alpha := func(x, y int) uint8 { return px[(y*size+x)*4+3] }
	assert.Zero(t, alpha(0, 0), "corners are transparent")
	mid := alpha(size/2, size/2)
	assert.Greater(t, mid, uint8(200))
	assert.Greater(t, mid, alpha(size/2+6, size/2))
	assert.Greater(t, alpha(size/2+6, size/2), alpha(size/2+12, size/2))
	assert.Equal(t, alpha(size/2-1, size/2), alpha(size/2, size/2-1), "radially symmetric")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", formatDuration(0))
	assert.Equal(t, "01:05", formatDuration(65*time.Second))
	assert.Equal(t, "61:01", formatDuration(time.Hour+time.Minute+time.Second))
}
