package game

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// colorComponents returns straight-alpha components of c in 0-1, with alpha
// multiplied by the layer's global alpha.
func colorComponents(c color.Color, alpha float64) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 0xff,
		float32(n.G) / 0xff,
		float32(n.B) / 0xff,
		float32(float64(n.A) / 0xff * clamp01(alpha))
}

// glowPixels builds a white RGBA sprite of size x size whose alpha falls off
// from the center like a gaussian and reaches zero at the inscribed circle.
func glowPixels(size int) []byte {
	pixels := make([]byte, size*size*4)
	center, maxDist := float64(size)/2, float64(size)/2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-center, float64(y)+0.5-center
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= maxDist {
				continue
			}
			d := dist / maxDist
			val := math.Exp(-4*d*d) * (1 - d)
			i := (y*size + x) * 4
			pixels[i+0], pixels[i+1], pixels[i+2] = 0xff, 0xff, 0xff
			pixels[i+3] = uint8(val * 0xff)
		}
	}
	return pixels
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
