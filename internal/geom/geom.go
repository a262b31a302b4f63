// Package geom holds the plane geometry of the network map: logical to
// device scaling, the connector control point and quadratic Bézier
// evaluation.
package geom

// Point is a position in either logical or device space. Which one is
// implied by where it came from; nothing is stored to tell them apart.
type Point struct {
	X, Y float64
}

// Scaler converts logical units into device units.
type Scaler struct {
	Ratio float64
}

// Scale returns v multiplied by the ratio. It is used for coordinates,
// lengths, stroke widths and blur radii alike.
func (s Scaler) Scale(v float64) float64 {
	return v * s.Ratio
}

// Point scales both coordinates of p.
func (s Scaler) Point(p Point) Point {
	return Point{X: s.Scale(p.X), Y: s.Scale(p.Y)}
}

// QuadraticBezier returns the point at progress (0-1) along the curve from
// start to end bent towards control.
func QuadraticBezier(start, control, end Point, progress float64) Point {
	t := 1 - progress
	return Point{
		X: t*t*start.X + 2*progress*t*control.X + progress*progress*end.X,
		Y: t*t*start.Y + 2*progress*t*control.Y + progress*progress*end.Y,
	}
}

// ControlPoint returns the control point of the connector from p to center.
// It sits halfway between the two horizontally and a fixed height above p,
// so every arc bows upwards by the same amount regardless of its length.
func ControlPoint(p, center Point, height float64) Point {
	return Point{
		X: (p.X + center.X) / 2,
		Y: p.Y - height,
	}
}
