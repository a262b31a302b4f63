// Package render draws the network map onto abstract drawing surfaces.
//
// The renderers are stateless functions: everything they read lives in a
// scene.Scene and the progress value handed in by the animation driver, and
// nothing they do mutates either. The host provides Surface implementations
// (one per layer) backed by whatever graphics library it runs on.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/iburimskiy/netmap-visualization/internal/geom"
)

// Composite selects how drawing combines with what is already on a surface.
type Composite int

const (
	// SourceOver paints new pixels over existing ones.
	SourceOver Composite = iota
	// DestinationIn keeps existing pixels, scaled by the alpha of what is
	// drawn. Filling with an opaque color under a global alpha fades the
	// layer by that alpha.
	DestinationIn
)

func (c Composite) String() string {
	switch c {
	case SourceOver:
		return "source-over"
	case DestinationIn:
		return "destination-in"
	}
	return "unknown"
}

// Stroke styles the outline of a path.
type Stroke struct {
	Color color.Color
	Width float64
}

// Shadow is a glow drawn beneath a filled shape.
type Shadow struct {
	Color color.Color
	Blur  float64
}

// Fill styles the interior of a path.
type Fill struct {
	Color  color.Color
	Shadow Shadow
}

// Surface is one drawing layer. Coordinates are device pixels.
type Surface interface {
	Size() (width, height int)
	// SetGlobalAlpha multiplies the alpha of everything drawn afterwards.
	SetGlobalAlpha(alpha float64)
	SetComposite(op Composite)
	// DrawImage blits src stretched to width x height at the origin.
	DrawImage(src image.Image, width, height float64)
	FillRect(x, y, width, height float64, c color.Color)
	ClearRect(x, y, width, height float64)
	StrokePath(p *Path, s Stroke)
	FillPath(p *Path, f Fill)
}

// SegmentKind identifies a path command.
type SegmentKind int

const (
	MoveTo SegmentKind = iota
	QuadTo
	Arc
	Close
)

// Segment is a single path command. Point is the destination for MoveTo and
// QuadTo and the center for Arc.
type Segment struct {
	Kind       SegmentKind
	Point      geom.Point
	Control    geom.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Path records drawing commands for a Surface to tessellate.
type Path struct {
	segments []Segment
}

func (p *Path) MoveTo(pt geom.Point) {
	p.segments = append(p.segments, Segment{Kind: MoveTo, Point: pt})
}

func (p *Path) QuadTo(control, pt geom.Point) {
	p.segments = append(p.segments, Segment{Kind: QuadTo, Point: pt, Control: control})
}

// Arc adds a clockwise arc around center, angles in radians.
func (p *Path) Arc(center geom.Point, radius, startAngle, endAngle float64) {
	p.segments = append(p.segments, Segment{
		Kind:       Arc,
		Point:      center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	})
}

// Circle adds a closed full circle.
func (p *Path) Circle(center geom.Point, radius float64) {
	p.Arc(center, radius, 0, 2*math.Pi)
	p.Close()
}

func (p *Path) Close() {
	p.segments = append(p.segments, Segment{Kind: Close})
}

func (p *Path) Segments() []Segment {
	return p.segments
}

// Bounds returns a box containing the path. Quadratic segments are bounded
// by their control polygon and arcs by their full circle.
func (p *Path) Bounds() (min, max geom.Point) {
	min = geom.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = geom.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	grow := func(pt geom.Point) {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	for _, s := range p.segments {
		switch s.Kind {
		case MoveTo:
			grow(s.Point)
		case QuadTo:
			grow(s.Control)
			grow(s.Point)
		case Arc:
			grow(geom.Point{X: s.Point.X - s.Radius, Y: s.Point.Y - s.Radius})
			grow(geom.Point{X: s.Point.X + s.Radius, Y: s.Point.Y + s.Radius})
		}
	}
	if len(p.segments) == 0 || math.IsInf(min.X, 1) {
		return geom.Point{}, geom.Point{}
	}
	return min, max
}

// Layers are the three stacked surfaces of the scene, bottom first.
type Layers struct {
	Background Surface
	Markers    Surface
	Track      Surface
}
