package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine wave with a linear fade-out, long enough for a short click.
type tone struct {
	freq     float64
	volume   float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewTone creates a faded sine tone streamer
func NewTone(freq float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		volume:   volume,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		fade := 1 - float64(t.position)/float64(t.duration)
		val := math.Sin(2*math.Pi*t.phase) * t.volume * fade

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
