package game

import (
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/curves-visualizer/internal/app"
	"github.com/iburimskiy/curves-visualizer/internal/audio"
	"seehuhn.de/go/geom/vec"
)

// pollPointer samples the cursor and the level of the left mouse button.
func pollPointer() app.Pointer {
	x, y := ebiten.CursorPosition()
	return app.Pointer{
		Pos:     vec.Vec2{X: float64(x), Y: float64(y)},
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// openSpeaker initializes the audio device and returns a clicker bound to it.
// Without a usable device it logs a warning and returns a silent nil clicker.
func openSpeaker() *audio.Clicker {
	sr := audio.SampleRate
	if err := speaker.Init(sr, sr.N(audioBuffer)); err != nil {
		logger.Warn("audio disabled", "err", err)
		return nil
	}
	logger.Info("audio ready", "sampleRate", int(sr))
	return audio.NewClicker(sr, speaker.Play)
}
