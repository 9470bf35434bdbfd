package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a beep.Streamer producing a sine wave with an exponential decay
// envelope, used as a short UI click.
type tone struct {
	sampleRate beep.SampleRate
	freq       float64
	volume     float64
	decay      float64 // envelope time constant in seconds
	total      int     // number of samples to produce
	pos        int
}

func newTone(sr beep.SampleRate, freq, volume float64, length time.Duration) *tone {
	return &tone{
		sampleRate: sr,
		freq:       freq,
		volume:     volume,
		decay:      length.Seconds() / 5,
		total:      sr.N(length),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := min(len(samples), t.total-t.pos)
	rate := float64(t.sampleRate)
	for i := 0; i < n; i++ {
		sec := float64(t.pos+i) / rate
		v := t.volume * math.Exp(-sec/t.decay) * math.Sin(2*math.Pi*t.freq*sec)
		samples[i] = [2]float64{v, v}
	}
	t.pos += n
	return n, true
}

func (t *tone) Err() error { return nil }

// Len returns the total number of samples.
func (t *tone) Len() int { return t.total }
