package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaler(t *testing.T) {
	s := Scaler{Ratio: 2}
	assert.Equal(t, 200.0, s.Scale(100))
	assert.Equal(t, Point{X: 1682, Y: 634}, s.Point(Point{X: 841, Y: 317}))
	assert.Equal(t, 0.0, s.Scale(0))
}

func TestQuadraticBezierEndpoints(t *testing.T) {
	start := Point{X: 1682, Y: 634}
	control := Point{X: 1866, Y: 434}
	end := Point{X: 2050, Y: 766}

	assert.Equal(t, start, QuadraticBezier(start, control, end, 0))
	p := QuadraticBezier(start, control, end, 1)
	assert.InDelta(t, end.X, p.X, 1e-9)
	assert.InDelta(t, end.Y, p.Y, 1e-9)
}

func TestQuadraticBezierMidpoint(t *testing.T) {
	start := Point{X: 1682, Y: 634}
	control := Point{X: 1866, Y: 434}
	end := Point{X: 2050, Y: 766}

	p := QuadraticBezier(start, control, end, 50.0/100)
	// 0.25*start + 0.5*control + 0.25*end
	assert.InDelta(t, 0.25*1682+0.5*1866+0.25*2050, p.X, 1e-9)
	assert.InDelta(t, 0.25*634+0.5*434+0.25*766, p.Y, 1e-9)
	assert.InDelta(t, 1866.0, p.X, 1e-9)
	assert.InDelta(t, 567.0, p.Y, 1e-9)
}

func TestControlPoint(t *testing.T) {
	s := Scaler{Ratio: 2}
	center := Point{X: 2050, Y: 766}

	c := ControlPoint(Point{X: 1682, Y: 634}, center, s.Scale(100))
	assert.Equal(t, Point{X: 1866, Y: 434}, c)

	for _, p := range []Point{{X: 0, Y: 0}, {X: 2396, Y: 1280}, {X: 500, Y: -40}} {
		c := ControlPoint(p, center, s.Scale(100))
		assert.Equal(t, p.Y-200, c.Y, "arc height is constant for %v", p)
		assert.Less(t, c.Y, p.Y)
	}
}
