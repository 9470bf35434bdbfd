// Package audio synthesizes the short feedback click played when the
// visualizer changes page or curve.
package audio

import (
	"time"

	"github.com/faiface/beep"
)

const (
	SampleRate = beep.SampleRate(44100)

	clickLength = 60 * time.Millisecond
	clickVolume = 0.25

	pageFreq = 660.0
	kindFreq = 880.0
)

// PlayFunc hands streamers to the output device, such as speaker.Play.
type PlayFunc func(s ...beep.Streamer)

// Clicker plays feedback tones. A nil *Clicker is valid and silent.
type Clicker struct {
	sr   beep.SampleRate
	play PlayFunc
}

// NewClicker returns a clicker that sends tones at sample rate sr to play.
func NewClicker(sr beep.SampleRate, play PlayFunc) *Clicker {
	return &Clicker{sr: sr, play: play}
}

// PageClick plays the tone for a page transition.
func (c *Clicker) PageClick() { c.click(pageFreq) }

// KindClick plays the tone for a curve selection.
func (c *Clicker) KindClick() { c.click(kindFreq) }

func (c *Clicker) click(freq float64) {
	if c == nil || c.play == nil {
		return
	}
	c.play(newTone(c.sr, freq, clickVolume, clickLength))
}
