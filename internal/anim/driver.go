// Package anim drives the per-frame animation of the network map.
//
// The driver is a two-state machine:
//
//	state       tick                                   timer fires
//	Advancing   progress <= 100: draw, progress++      -
//	            progress >  100: arm reset, Resetting  -
//	Resetting   particles hold                         progress = 0, draw, Advancing
//
// Marker pulsing runs on every tick in both states. Only one reset is ever
// pending.
package anim

import (
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"github.com/iburimskiy/netmap-visualization/internal/render"
	"github.com/iburimskiy/netmap-visualization/internal/scene"
)

// MaxProgress is the last progress value drawn before a cycle resets.
const MaxProgress = 100

// State is the driver's position in its cycle.
type State int

const (
	Advancing State = iota
	Resetting
)

func (s State) String() string {
	switch s {
	case Advancing:
		return "advancing"
	case Resetting:
		return "resetting"
	}
	return "unknown"
}

// Driver owns the progress counter and is the only writer of scene state
// once setup has finished.
type Driver struct {
	Logger *bslogger.Logger

	scene  *scene.Scene
	layers render.Layers
	style  render.Style
	timer  Timer
	delay  time.Duration

	state    State
	progress int
	running  bool
	cycles   int
	started  time.Time
	onCycle  []func(cycle int)
	verbose  bool
}

// NewDriver returns a stopped driver at progress 0.
func NewDriver(sc *scene.Scene, layers render.Layers, st render.Style, timer Timer, delay time.Duration) *Driver {
	logger := bslogger.NewLogger("Driver", bslogger.Normal, nil)
	return &Driver{
		Logger: &logger,
		scene:  sc,
		layers: layers,
		style:  st,
		timer:  timer,
		delay:  delay,
	}
}

// SetVerbose logs every completed cycle when on.
func (d *Driver) SetVerbose(on bool) {
	d.verbose = on
}

// OnCycle registers f to run each time the particles reach the center.
func (d *Driver) OnCycle(f func(cycle int)) {
	d.onCycle = append(d.onCycle, f)
}

// Start arms the driver. Ticks before Start do nothing.
func (d *Driver) Start() {
	d.running = true
	d.started = time.Now()
}

// Stop makes every later tick and any pending reset a no-op.
func (d *Driver) Stop() {
	d.running = false
}

func (d *Driver) Running() bool {
	return d.running
}

func (d *Driver) State() State {
	return d.state
}

func (d *Driver) Progress() int {
	return d.progress
}

// Cycles counts how many times the particles have reached the center.
func (d *Driver) Cycles() int {
	return d.cycles
}

// Tick renders one frame and advances the state machine.
func (d *Driver) Tick() {
	if !d.running {
		return
	}

	render.Markers(d.layers.Markers, d.scene, d.style)
	d.scene.Pulse()

	if d.state != Advancing {
		return
	}
	if d.progress <= MaxProgress {
		render.Particles(d.layers.Track, d.scene, d.progress, d.style)
		d.progress++
		return
	}

	d.state = Resetting
	d.cycles++
	d.timer.AfterFunc(d.delay, d.reset)
	if d.verbose {
		d.Logger.Infof("cycle %d complete after %s", d.cycles, time.Since(d.started).Round(time.Millisecond))
	}
	for _, f := range d.onCycle {
		f(d.cycles)
	}
}

func (d *Driver) reset() {
	if !d.running || d.state != Resetting {
		return
	}
	d.progress = 0
	render.Particles(d.layers.Track, d.scene, d.progress, d.style)
	d.state = Advancing
}
