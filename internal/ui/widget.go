package ui

import (
	"fmt"

	"github.com/iburimskiy/curves-visualizer/internal/config"
	"github.com/iburimskiy/curves-visualizer/internal/draw"
	"seehuhn.de/go/geom/vec"
)

// Button is a labelled clickable rectangle in panel-local coordinates.
type Button struct {
	Rect  draw.Rect
	Label string
}

// Hit reports whether the local point p is over the button.
func (b Button) Hit(p vec.Vec2) bool { return b.Rect.Contains(p) }

// Draw emits the button into l. A hovered button uses the hover fill and
// takes precedence over selection.
func (b Button) Draw(l *draw.List, panel Panel, hover, selected bool) {
	r := panel.RectToWindow(b.Rect)

	fill := config.ColorButton
	if selected {
		fill = config.ColorAccent
	}
	if hover {
		fill = config.ColorButtonOver
	}
	l.FillRect(r, fill)
	l.StrokeRect(r, config.BorderWidth, config.ColorAccent)
	l.CenteredText(b.Label, r, config.BodySize, config.ColorText)
}

// Slider maps horizontal pointer positions over its track onto [Min, Max].
type Slider struct {
	Track    draw.Rect
	Label    string
	Min, Max float64
}

// Hit reports whether the local point p grabs the slider. The grab area is
// the track widened vertically by config.SliderGrabSlop on both sides.
func (s Slider) Hit(p vec.Vec2) bool {
	return s.Track.Grow(0, config.SliderGrabSlop).Contains(p)
}

// ValueAt returns the value for a pointer at local x. Positions left of the
// track give Min, positions right of it give Max.
func (s Slider) ValueAt(x float64) float64 {
	ratio := Clamp01((x - s.Track.X) / s.Track.W)
	return (1-ratio)*s.Min + ratio*s.Max
}

// ThumbRect returns the local rectangle of the thumb for value v.
func (s Slider) ThumbRect(v float64) draw.Rect {
	v = max(s.Min, min(s.Max, v))
	ratio := (v - s.Min) / (s.Max - s.Min)
	x := s.Track.X + ratio*s.Track.W
	x = max(s.Track.X, min(s.Track.X+s.Track.W-config.SliderThumbW, x))
	return draw.Rect{
		X: x,
		Y: s.Track.Y - config.SliderThumbPad,
		W: config.SliderThumbW,
		H: s.Track.H + 2*config.SliderThumbPad,
	}
}

// Draw emits the track, the thumb and the "label: value" caption. The thumb of
// the slider being dragged is drawn in the highlight color.
func (s Slider) Draw(l *draw.List, panel Panel, v float64, active bool) {
	l.FillRect(panel.RectToWindow(s.Track), config.ColorPanel)

	thumb := config.ColorAccent
	if active {
		thumb = config.ColorHighlight
	}
	l.FillRect(panel.RectToWindow(s.ThumbRect(v)), thumb)

	caption := panel.ToWindow(vec.Vec2{X: s.Track.X, Y: s.Track.Y - config.SliderLabelRise})
	l.Text(fmt.Sprintf("%s: %.2f", s.Label, v), caption, config.LabelSize, config.ColorText)
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
