// Package sound plays the optional audio of the network map: a looping
// soundtrack and a short chime each time the particles reach the center.
package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// SampleRate is the speaker rate. Soundtracks at other rates are resampled.
const SampleRate = beep.SampleRate(44100)

// ErrUnsupported is returned for files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported file type")

// Player owns the speaker.
type Player struct {
	Logger *bslogger.Logger

	volume   float64
	initDone bool
	streamer beep.StreamSeekCloser
}

func NewPlayer(volume float64) *Player {
	logger := bslogger.NewLogger("Sound", bslogger.Normal, nil)
	return &Player{
		Logger: &logger,
		volume: volume,
	}
}

// Init opens the speaker with a 50ms buffer.
func (p *Player) Init() error {
	if p.initDone {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.initDone = true
	return nil
}

// Decode opens path and picks a decoder by extension. The caller closes the
// returned streamer, which also closes the file.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return streamer, format, nil
}

// PlaySoundtrack loops the file at path until Close.
func (p *Player) PlaySoundtrack(path string) error {
	if err := p.Init(); err != nil {
		return err
	}
	streamer, format, err := Decode(path)
	if err != nil {
		return err
	}

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, s)
	}

	p.replace(streamer)
	speaker.Play(p.withVolume(s))
	p.Logger.Infof("Playing soundtrack %s", path)
	return nil
}

// Chime plays a short tone. It is a no-op before Init.
func (p *Player) Chime(freq float64, d time.Duration) {
	if !p.initDone {
		return
	}
	speaker.Play(p.withVolume(Chime(SampleRate, freq, d)))
}

// Close stops all playback and releases the soundtrack.
func (p *Player) Close() {
	if !p.initDone {
		return
	}
	p.replace(nil)
}

// replace stops everything the speaker is mixing and closes the current
// soundtrack. speaker.Clear takes the speaker lock itself, so it must not be
// called between speaker.Lock and speaker.Unlock.
func (p *Player) replace(next beep.StreamSeekCloser) {
	speaker.Clear()
	if p.streamer != nil {
		_ = p.streamer.Close()
	}
	p.streamer = next
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume,
	}
}
