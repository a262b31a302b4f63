package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/netmap-visualization/internal/asset"
	"github.com/iburimskiy/netmap-visualization/internal/config"
	"github.com/iburimskiy/netmap-visualization/internal/game"
	"github.com/iburimskiy/netmap-visualization/internal/sound"
)

type flags struct {
	configPath string
	background string
	soundtrack string
	sound      bool
	pick       bool
	noDialog   bool
	verbose    bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "YAML scene file (defaults are built in)")
	flag.StringVar(&f.background, "bg", "", "background image, overrides the scene file")
	flag.StringVar(&f.soundtrack, "soundtrack", "", "wav, mp3 or flac file to loop (implies -sound)")
	flag.BoolVar(&f.sound, "sound", false, "enable audio")
	flag.BoolVar(&f.pick, "pick", false, "choose the background image in a file dialog")
	flag.BoolVar(&f.noDialog, "nodialog", false, "report fatal errors on the console only")
	flag.BoolVar(&f.verbose, "v", false, "log every animation cycle")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()
	logger := bslogger.NewLogger("NetMap", bslogger.Normal, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, f, &logger)
	stop()

	if err != nil {
		logger.Error(err.Error())
		if !f.noDialog {
			_ = zenity.Error(describe(err), zenity.Title(config.WindowTitle))
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags, logger *bslogger.Logger) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.background != "" {
		cfg.Background = f.background
	}
	if f.pick {
		path, err := pickBackground()
		if err != nil {
			return err
		}
		if path != "" {
			cfg.Background = path
		}
	}
	if f.soundtrack != "" {
		cfg.Audio.Soundtrack = f.soundtrack
		cfg.Audio.Enabled = true
	}
	if f.sound {
		cfg.Audio.Enabled = true
	}

	var player *sound.Player
	if cfg.Audio.Enabled {
		player = startAudio(cfg.Audio, logger)
		if player != nil {
			defer player.Close()
		}
	}

	g, err := game.New(ctx, cfg, game.Options{
		Verbose: f.verbose,
		Player:  player,
	})
	if err != nil {
		return err
	}
	return g.Run()
}

// startAudio returns nil when the speaker cannot be opened. A soundtrack
// that fails to play leaves the chime working.
func startAudio(a config.Audio, logger *bslogger.Logger) *sound.Player {
	player := sound.NewPlayer(a.Volume)
	if err := player.Init(); err != nil {
		logger.Warningf("Audio disabled: %v", err)
		return nil
	}
	if a.Soundtrack != "" {
		if err := player.PlaySoundtrack(a.Soundtrack); err != nil {
			logger.Warningf("Soundtrack not played: %v", err)
		}
	}
	return player
}

// pickBackground returns "" when the dialog is cancelled.
func pickBackground() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Map Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.jpg", "*.jpeg", "*.png", "*.bmp", "*.tif", "*.tiff", "*.webp"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func describe(err error) string {
	var le *asset.LoadError
	var se *game.SurfaceUnavailableError
	switch {
	case errors.As(err, &le):
		return fmt.Sprintf("The map image could not be loaded.\n\n%v", err)
	case errors.As(err, &se):
		return fmt.Sprintf("No drawing surface is available.\n\n%v", err)
	}
	return err.Error()
}
