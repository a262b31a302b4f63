package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const chimeAmplitude = 0.4

// Chime returns a sine tone at freq lasting d, with an exponential decay that
// reaches silence at the end. Both channels carry the same signal.
func Chime(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			frac := float64(pos) / float64(total)
			env := math.Exp(-6*frac) * (1 - frac)
			v := chimeAmplitude * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
