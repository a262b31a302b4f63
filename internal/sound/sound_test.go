package sound

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestChimeLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(Chime(sr, 440, 250*time.Millisecond))
	assert.Len(t, samples, sr.N(250*time.Millisecond))
}

func TestChimeShape(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(Chime(sr, 440, time.Second))
	require.NotEmpty(t, samples)

	assert.Zero(t, samples[0][0], "starts at a zero crossing")
	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			assert.Equal(t, s[0], s[1])
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	head := peak(0, 800)
	tail := peak(len(samples)-800, len(samples))
	assert.LessOrEqual(t, head, chimeAmplitude)
	assert.Greater(t, head, tail*10, "tone decays")
}

func TestChimeFinished(t *testing.T) {
	s := Chime(beep.SampleRate(1000), 100, 10*time.Millisecond)
	drain(s)
	n, ok := s.Stream(make([][2]float64, 4))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestDecodeUnsupported(t *testing.T) {
	_, _, err := Decode("track.ogg")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDecodeMissing(t *testing.T) {
	_, _, err := Decode(filepath.Join(t.TempDir(), "track.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF but not really"), 0o644))
	_, _, err := Decode(path)
	assert.Error(t, err)
}

func TestChimeBeforeInit(t *testing.T) {
	p := NewPlayer(-1)
	p.Chime(880, time.Millisecond)
	p.Close()
}

type trackStub struct {
	beep.StreamSeekCloser
	closed bool
}

func (s *trackStub) Close() error {
	s.closed = true
	return nil
}

func returnsWithin(t *testing.T, d time.Duration, f func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		f()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("did not return within %s", d)
	}
}

func TestCloseAfterInit(t *testing.T) {
	p := NewPlayer(-1)
	p.initDone = true
	track := &trackStub{}
	p.streamer = track

	returnsWithin(t, 2*time.Second, p.Close)
	assert.True(t, track.closed)
	assert.Nil(t, p.streamer)
}

func TestReplaceSoundtrack(t *testing.T) {
	p := NewPlayer(-1)
	p.initDone = true
	first, second := &trackStub{}, &trackStub{}
	p.streamer = first

	returnsWithin(t, 2*time.Second, func() { p.replace(second) })
	assert.True(t, first.closed)
	assert.False(t, second.closed)
	assert.Same(t, second, p.streamer)
}
