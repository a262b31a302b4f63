// Package game hosts the network map in an ebiten window.
//
// The background, marker and track layers are offscreen images at device
// size (the background scaled by the ratio). The window opens at the
// background's natural size while Layout reports the device size, so ebiten
// downsamples every frame and curves come out smooth.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/netmap-visualization/internal/anim"
	"github.com/iburimskiy/netmap-visualization/internal/asset"
	"github.com/iburimskiy/netmap-visualization/internal/config"
	"github.com/iburimskiy/netmap-visualization/internal/render"
	"github.com/iburimskiy/netmap-visualization/internal/scene"
	"github.com/iburimskiy/netmap-visualization/internal/sound"
)

// Options are the host settings that do not belong in a scene file.
type Options struct {
	Verbose bool
	// Player is nil when audio is off.
	Player *sound.Player
}

type Game struct {
	Logger *bslogger.Logger

	ctx        context.Context
	cfg        config.Config
	opts       Options
	background *asset.Image
	scene      *scene.Scene
	style      render.Style

	width, height int

	layers render.Layers
	bg     *layer
	marks  *layer
	track  *layer

	timer   *anim.DeadlineTimer
	driver  *anim.Driver
	started time.Time
	ready   bool
}

// New loads the background and builds the scene. Nothing is drawn until the
// first frame; see Update.
func New(ctx context.Context, cfg config.Config, opts Options) (*Game, error) {
	logger := bslogger.NewLogger("Game", bslogger.Normal, nil)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	bg, err := asset.Load(cfg.Background)
	if err != nil {
		return nil, err
	}
	width, height := bg.Scaled(cfg.Ratio)
	if width <= 0 || height <= 0 {
		return nil, &SurfaceUnavailableError{Layer: "background", Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}
	logger.Infof("Loaded %s background %s (%dx%d, device %dx%d)", bg.Format, bg.Path, bg.Width, bg.Height, width, height)

	sc := scene.New(scene.Config{
		Markers:   cfg.Markers,
		Center:    cfg.Center,
		Ratio:     cfg.Ratio,
		ArcHeight: config.ArcHeight,
		PulseMax:  config.PulseMax,
	})
	logger.Infof("Scene has %d markers, %d connectors, center at (%g, %g)",
		len(sc.Markers), len(sc.Connectors()), sc.Center.X, sc.Center.Y)

	return &Game{
		Logger:     &logger,
		ctx:        ctx,
		cfg:        cfg,
		opts:       opts,
		background: bg,
		scene:      sc,
		style:      newStyle(sc.Scaler.Scale, palette),
		width:      width,
		height:     height,
		timer:      anim.NewDeadlineTimer(anim.SystemClock{}),
	}, nil
}

func newStyle(scale func(float64) float64, p config.Palette) render.Style {
	return render.Style{
		Ring:      render.Stroke{Color: p.Ring, Width: config.RingWidth},
		Connector: render.Stroke{Color: p.Connector, Width: scale(config.ConnectorWidth)},
		Particle: render.Fill{
			Color:  p.Particle,
			Shadow: render.Shadow{Color: p.Particle, Blur: scale(config.GlowBlur)},
		},
		ParticleRadius: scale(config.ParticleRadius),
		MarkerAlpha:    config.MarkerAlpha,
	}
}

// setup allocates the layers, draws the static layer and starts the driver.
// It runs once, on the first frame, before any animation.
func (g *Game) setup() error {
	br, err := newBrushes()
	if err != nil {
		return err
	}
	if g.bg, err = newLayer("background", g.width, g.height, br); err != nil {
		return err
	}
	if g.marks, err = newLayer("markers", g.width, g.height, br); err != nil {
		return err
	}
	if g.track, err = newLayer("track", g.width, g.height, br); err != nil {
		return err
	}
	g.layers = render.Layers{Background: g.bg, Markers: g.marks, Track: g.track}

	render.Background(g.bg, g.marks, g.background.Pixels, g.style)
	render.Connectors(g.bg, g.scene, g.style)

	g.driver = anim.NewDriver(g.scene, g.layers, g.style, g.timer, g.cfg.Timing.ResetDelay)
	g.driver.SetVerbose(g.opts.Verbose)
	if p := g.opts.Player; p != nil && g.cfg.Audio.Chime {
		g.driver.OnCycle(func(int) {
			p.Chime(config.ChimeFrequency, config.ChimeDuration)
		})
	}
	g.driver.Start()
	g.started = time.Now()
	g.Logger.Info("Static layer drawn, animation started")
	return nil
}

func (g *Game) Update() error {
	if !g.ready {
		if err := g.setup(); err != nil {
			return err
		}
		g.ready = true
	}

	if g.ctx.Err() != nil && g.driver.Running() {
		g.driver.Stop()
		g.Logger.Infof("Stopped after %s, %d cycles", formatDuration(time.Since(g.started)), g.driver.Cycles())
	}
	if !g.driver.Running() {
		return ebiten.Termination
	}

	g.timer.Poll()
	g.driver.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.ready {
		return
	}
	screen.DrawImage(g.bg.img, nil)
	screen.DrawImage(g.marks.img, nil)
	screen.DrawImage(g.track.img, nil)
}

// Layout always reports the device size; the window is the natural size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the context is cancelled or the
// window is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.background.Width, g.background.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	if g.cfg.Timing.TPS == config.SyncWithDisplay {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	} else {
		ebiten.SetTPS(g.cfg.Timing.TPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
