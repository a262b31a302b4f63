package render

import (
	"image/color"

	"github.com/iburimskiy/netmap-visualization/internal/scene"
)

var opaque = color.RGBA{A: 0xff}

// Markers fades the marker layer and strokes every ring at its current
// radius. The fade is a destination-in fill under the layer's global alpha,
// which leaves a trail of older rings instead of wiping them.
func Markers(layer Surface, sc *scene.Scene, st Style) {
	w, h := layer.Size()
	layer.SetComposite(DestinationIn)
	layer.FillRect(0, 0, float64(w), float64(h), opaque)
	layer.SetComposite(SourceOver)

	for _, m := range sc.Markers {
		// a zero-radius ring has no outline
		if m.Radius <= 0 {
			continue
		}
		var p Path
		p.Circle(m.Point, m.Radius)
		layer.StrokePath(&p, st.Ring)
	}
}

// Particles wipes the track layer and fills one glowing disc per connector
// at progress (0-100). All connectors share the same progress.
func Particles(layer Surface, sc *scene.Scene, progress int, st Style) {
	w, h := layer.Size()
	layer.ClearRect(0, 0, float64(w), float64(h))

	t := float64(progress) / 100
	for _, c := range sc.Connectors() {
		var p Path
		p.Circle(c.At(t), st.ParticleRadius)
		layer.FillPath(&p, st.Particle)
	}
}
