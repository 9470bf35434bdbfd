package app

import (
	"github.com/iburimskiy/curves-visualizer/internal/config"
	"github.com/iburimskiy/curves-visualizer/internal/curve"
	"github.com/iburimskiy/curves-visualizer/internal/draw"
	"github.com/iburimskiy/curves-visualizer/internal/ui"
)

// layout holds the fixed panels and buttons. Sliders depend on the curve kind
// and are derived on demand.
type layout struct {
	window ui.Panel // start and info pages

	left ui.Panel // curve selection and sliders
	plot ui.Panel // world coordinates, origin at the center
	info ui.Panel // fact strip across the top of the plot

	start    ui.Button
	back     ui.Button
	cont     ui.Button
	curveBtn [len(curve.Kinds)]ui.Button
}

func newLayout() layout {
	w, h := float64(config.WindowWidth), float64(config.WindowHeight)
	leftW := float64(int(w * config.LeftPanelFraction))
	plotW := float64(int(w * (1 - config.LeftPanelFraction)))
	infoH := float64(int(h * config.InfoPanelFraction))

	ly := layout{
		window: ui.NewPanel(draw.Rect{W: w, H: h}),
		left:   ui.NewPanel(draw.Rect{W: leftW, H: h}),
		plot:   ui.NewCenteredPanel(draw.Rect{X: leftW, W: plotW, H: h}, config.PlotHalfExtent),
		info:   ui.NewPanel(draw.Rect{X: leftW, W: plotW, H: infoH}),

		start: ui.Button{
			Rect: draw.Rect{
				X: config.WindowWidth/2 - config.StartButtonWidth/2,
				Y: config.WindowHeight/2 + config.StartButtonDrop,
				W: config.StartButtonWidth,
				H: config.StartButtonHeight,
			},
			Label: "Start",
		},
		back: ui.Button{
			Rect:  draw.Rect{X: config.BackButtonX, Y: config.InfoButtonY, W: config.InfoButtonWidth, H: config.InfoButtonHeight},
			Label: "Back",
		},
		cont: ui.Button{
			Rect:  draw.Rect{X: config.ContinueButtonX, Y: config.InfoButtonY, W: config.InfoButtonWidth, H: config.InfoButtonHeight},
			Label: "Continue",
		},
	}
	for i, k := range curve.Kinds {
		ly.curveBtn[i] = ui.Button{
			Rect: draw.Rect{
				X: config.CurveButtonX,
				Y: float64(config.CurveButtonY + i*config.CurveButtonStride),
				W: config.CurveButtonWidth,
				H: config.CurveButtonHeight,
			},
			Label: k.String(),
		}
	}
	return ly
}

// sliderY lists the track positions in control order: the first control sits
// lowest, the second above it.
var sliderY = [...]float64{config.FirstSliderY, config.SecondSliderY}

// sliders returns the sliders of kind k in the left panel's local space.
func (ly layout) sliders(k curve.Kind) []ui.Slider {
	cs := k.Controls()
	out := make([]ui.Slider, 0, len(cs))
	for i, c := range cs {
		if i >= len(sliderY) {
			break
		}
		out = append(out, ui.Slider{
			Track: draw.Rect{X: config.SliderX, Y: sliderY[i], W: config.SliderWidth, H: config.SliderHeight},
			Label: c.Label,
			Min:   c.Range.Min,
			Max:   c.Range.Max,
		})
	}
	return out
}
