package render

import (
	"image"

	"github.com/iburimskiy/netmap-visualization/internal/scene"
)

// Style carries the fixed device-space look of the scene.
type Style struct {
	Ring           Stroke
	Connector      Stroke
	Particle       Fill
	ParticleRadius float64
	// MarkerAlpha is the marker layer's global alpha. It also sets how much
	// of last frame's rings survives each fade.
	MarkerAlpha float64
}

// Background stretches img over the whole background layer and gives the
// marker layer its persistent alpha. It must run after the image has loaded
// and the layers have been sized, and before Connectors.
func Background(bg, markers Surface, img image.Image, st Style) {
	w, h := bg.Size()
	bg.DrawImage(img, float64(w), float64(h))
	markers.SetGlobalAlpha(st.MarkerAlpha)
}

// Connectors strokes every marker-to-center curve onto the background layer
// in a single path. The layer is never redrawn afterwards.
func Connectors(bg Surface, sc *scene.Scene, st Style) {
	conns := sc.Connectors()
	if len(conns) == 0 {
		return
	}
	var p Path
	for _, c := range conns {
		p.MoveTo(c.Start)
		p.QuadTo(c.Control, c.End)
	}
	bg.StrokePath(&p, st.Connector)
}
