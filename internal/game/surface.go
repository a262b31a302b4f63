package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/netmap-visualization/internal/geom"
	"github.com/iburimskiy/netmap-visualization/internal/render"
)

const glowSize = 64

// brushes are the source images shared by every layer: a white texel for
// triangle fills and the glow sprite.
type brushes struct {
	white *ebiten.Image
	glow  *ebiten.Image
}

func newBrushes() (*brushes, error) {
	white, err := newImage(3, 3)
	if err != nil {
		return nil, &SurfaceUnavailableError{Layer: "brush", Err: err}
	}
	white.Fill(color.White)

	glow, err := newImage(glowSize, glowSize)
	if err != nil {
		return nil, &SurfaceUnavailableError{Layer: "glow", Err: err}
	}
	glow.WritePixels(glowPixels(glowSize))

	return &brushes{
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		glow:  glow,
	}, nil
}

// SurfaceUnavailableError means a drawing layer could not be created.
type SurfaceUnavailableError struct {
	Layer string
	Err   error
}

func (e *SurfaceUnavailableError) Error() string {
	return fmt.Sprintf("%s layer unavailable: %v", e.Layer, e.Err)
}

func (e *SurfaceUnavailableError) Unwrap() error {
	return e.Err
}

// layer is a render.Surface drawn into an offscreen ebiten image.
type layer struct {
	name    string
	img     *ebiten.Image
	brushes *brushes
	alpha   float64
	blend   ebiten.Blend

	vertices []ebiten.Vertex
	indices  []uint16
}

func newLayer(name string, width, height int, br *brushes) (*layer, error) {
	if width <= 0 || height <= 0 {
		return nil, &SurfaceUnavailableError{Layer: name, Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}
	img, err := newImage(width, height)
	if err != nil {
		return nil, &SurfaceUnavailableError{Layer: name, Err: err}
	}
	return &layer{
		name:    name,
		img:     img,
		brushes: br,
		alpha:   1,
		blend:   ebiten.BlendSourceOver,
	}, nil
}

// newImage turns ebiten's allocation panic into an error.
func newImage(width, height int) (img *ebiten.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("allocate %dx%d image: %v", width, height, r)
		}
	}()
	return ebiten.NewImage(width, height), nil
}

func (l *layer) Size() (int, int) {
	b := l.img.Bounds()
	return b.Dx(), b.Dy()
}

func (l *layer) SetGlobalAlpha(alpha float64) {
	l.alpha = clamp01(alpha)
}

func (l *layer) SetComposite(op render.Composite) {
	switch op {
	case render.DestinationIn:
		l.blend = ebiten.BlendDestinationIn
	default:
		l.blend = ebiten.BlendSourceOver
	}
}

func (l *layer) DrawImage(src image.Image, width, height float64) {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	img := ebiten.NewImageFromImage(src)
	defer img.Deallocate()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(b.Dx()), height/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	op.ColorScale.ScaleAlpha(float32(l.alpha))
	op.Blend = l.blend
	l.img.DrawImage(img, op)
}

func (l *layer) FillRect(x, y, width, height float64, c color.Color) {
	var p vector.Path
	rect(&p, x, y, width, height)
	l.vertices, l.indices = p.AppendVerticesAndIndicesForFilling(l.vertices[:0], l.indices[:0])
	l.drawTriangles(c, ebiten.NonZero, l.blend)
}

func (l *layer) ClearRect(x, y, width, height float64) {
	w, h := l.Size()
	if x <= 0 && y <= 0 && x+width >= float64(w) && y+height >= float64(h) {
		l.img.Clear()
		return
	}
	var p vector.Path
	rect(&p, x, y, width, height)
	l.vertices, l.indices = p.AppendVerticesAndIndicesForFilling(l.vertices[:0], l.indices[:0])
	l.drawTriangles(color.White, ebiten.NonZero, ebiten.BlendClear)
}

func (l *layer) StrokePath(p *render.Path, s render.Stroke) {
	vp := toVectorPath(p)
	l.vertices, l.indices = vp.AppendVerticesAndIndicesForStroke(l.vertices[:0], l.indices[:0], &vector.StrokeOptions{
		Width:    float32(s.Width),
		LineJoin: vector.LineJoinRound,
	})
	l.drawTriangles(s.Color, ebiten.FillAll, l.blend)
}

func (l *layer) FillPath(p *render.Path, f render.Fill) {
	if f.Shadow.Blur > 0 && f.Shadow.Color != nil {
		l.drawGlow(p, f.Shadow)
	}
	vp := toVectorPath(p)
	l.vertices, l.indices = vp.AppendVerticesAndIndicesForFilling(l.vertices[:0], l.indices[:0])
	l.drawTriangles(f.Color, ebiten.NonZero, l.blend)
}

// drawGlow stamps the glow sprite under the path, reaching Blur pixels past
// its bounds.
func (l *layer) drawGlow(p *render.Path, s render.Shadow) {
	min, max := p.Bounds()
	cx, cy := (min.X+max.X)/2, (min.Y+max.Y)/2
	radius := math.Max(max.X-min.X, max.Y-min.Y)/2 + s.Blur
	if radius <= 0 {
		return
	}
	scale := radius * 2 / glowSize

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-glowSize/2, -glowSize/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	op.ColorScale.ScaleWithColor(s.Color)
	op.ColorScale.ScaleAlpha(float32(l.alpha))
	op.Blend = l.blend
	l.img.DrawImage(l.brushes.glow, op)
}

func (l *layer) drawTriangles(c color.Color, rule ebiten.FillRule, blend ebiten.Blend) {
	if len(l.indices) == 0 {
		return
	}
	r, g, b, a := colorComponents(c, l.alpha)
	for i := range l.vertices {
		l.vertices[i].SrcX = 1
		l.vertices[i].SrcY = 1
		l.vertices[i].ColorR = r
		l.vertices[i].ColorG = g
		l.vertices[i].ColorB = b
		l.vertices[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = rule
	op.Blend = blend
	l.img.DrawTriangles(l.vertices, l.indices, l.brushes.white, op)
}

func rect(p *vector.Path, x, y, width, height float64) {
	p.MoveTo(float32(x), float32(y))
	p.LineTo(float32(x+width), float32(y))
	p.LineTo(float32(x+width), float32(y+height))
	p.LineTo(float32(x), float32(y+height))
	p.Close()
}

// toVectorPath converts a recorded path. Every arc begins its own subpath.
func toVectorPath(p *render.Path) vector.Path {
	var vp vector.Path
	for _, s := range p.Segments() {
		switch s.Kind {
		case render.MoveTo:
			vp.MoveTo(float32(s.Point.X), float32(s.Point.Y))
		case render.QuadTo:
			vp.QuadTo(float32(s.Control.X), float32(s.Control.Y), float32(s.Point.X), float32(s.Point.Y))
		case render.Arc:
			start := arcStart(s)
			vp.MoveTo(float32(start.X), float32(start.Y))
			vp.Arc(float32(s.Point.X), float32(s.Point.Y), float32(s.Radius), float32(s.StartAngle), float32(s.EndAngle), vector.Clockwise)
		case render.Close:
			vp.Close()
		}
	}
	return vp
}

func arcStart(s render.Segment) geom.Point {
	return geom.Point{
		X: s.Point.X + s.Radius*math.Cos(s.StartAngle),
		Y: s.Point.Y + s.Radius*math.Sin(s.StartAngle),
	}
}
