// Package scene owns the mutable state of the network map: the markers with
// their pulsing ring radii and the center every connector converges on.
package scene

import (
	"slices"

	"github.com/iburimskiy/netmap-visualization/internal/geom"
)

// Marker is a device-space point with the current radius of its pulse ring.
type Marker struct {
	geom.Point
	Radius float64
}

// Connector is the static curve from a marker to the center.
type Connector struct {
	Start, Control, End geom.Point
}

// At returns the position along the connector at progress 0-1.
func (c Connector) At(progress float64) geom.Point {
	return geom.QuadraticBezier(c.Start, c.Control, c.End, progress)
}

// Config describes a scene in logical units.
type Config struct {
	Markers   []geom.Point
	Center    geom.Point
	Ratio     float64
	ArcHeight float64
	PulseMax  float64
}

// Scene is the device-space model. Positions and the center never change
// after New; only marker radii move, through Pulse.
type Scene struct {
	Markers []Marker
	Center  geom.Point
	Scaler  geom.Scaler

	arcHeight  float64
	pulseMax   float64
	connectors []Connector
}

// New scales every logical coordinate exactly once, markers first and the
// center second, and precomputes the connectors.
func New(cfg Config) *Scene {
	s := &Scene{
		Scaler:   geom.Scaler{Ratio: cfg.Ratio},
		pulseMax: cfg.PulseMax,
	}
	s.Markers = make([]Marker, len(cfg.Markers))
	for i, p := range cfg.Markers {
		s.Markers[i] = Marker{Point: s.Scaler.Point(p)}
	}
	s.Center = s.Scaler.Point(cfg.Center)
	s.arcHeight = s.Scaler.Scale(cfg.ArcHeight)

	for _, m := range s.Markers {
		if s.IsCenter(m.Point) {
			continue
		}
		s.connectors = append(s.connectors, Connector{
			Start:   m.Point,
			Control: s.ControlPoint(m.Point),
			End:     s.Center,
		})
	}
	return s
}

// IsCenter reports whether p is exactly the center. No tolerance is applied:
// markers and center come out of the same scaling pass, so a coincident
// marker compares equal bit for bit.
func (s *Scene) IsCenter(p geom.Point) bool {
	return p.X == s.Center.X && p.Y == s.Center.Y
}

// ControlPoint derives the connector control point for p.
func (s *Scene) ControlPoint(p geom.Point) geom.Point {
	return geom.ControlPoint(p, s.Center, s.arcHeight)
}

// Connectors returns a copy of the connectors, one per marker that is not
// the center.
func (s *Scene) Connectors() []Connector {
	return slices.Clone(s.connectors)
}

// Pulse grows every ring by one and wraps it to zero once it exceeds the
// maximum, so a ring shows 0..max inclusive.
func (s *Scene) Pulse() {
	for i := range s.Markers {
		m := &s.Markers[i]
		m.Radius++
		if m.Radius > s.pulseMax {
			m.Radius = 0
		}
	}
}
