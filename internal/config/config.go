package config

import "image/color"

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Math Curves Visualizer"
	TPS          = 60

	// Main page panels, as fractions of the window
	LeftPanelFraction = 0.3
	InfoPanelFraction = 0.2

	// Half height of the plot panel in world units; the width follows the aspect ratio.
	PlotHalfExtent = 2.0

	// Start page
	StartButtonWidth  = 200
	StartButtonHeight = 50
	StartButtonDrop   = 50 // below the window center
	StartTitleX       = WindowWidth/2 - 300
	StartTitleY       = WindowHeight/2 - 100

	// Info page
	InfoButtonWidth  = 150
	InfoButtonHeight = 50
	InfoButtonY      = 600
	BackButtonX      = 300
	ContinueButtonX  = 750

	// Curve selection buttons, left panel local coordinates
	CurveButtonX      = 20
	CurveButtonY      = 100
	CurveButtonWidth  = 240
	CurveButtonHeight = 40
	CurveButtonStride = 80

	// Parameter sliders, left panel local coordinates
	SliderX         = 30
	SliderWidth     = 240
	SliderHeight    = 20
	FirstSliderY    = WindowHeight - 210
	SecondSliderY   = WindowHeight - 280
	SliderGrabSlop  = 10
	SliderThumbW    = 12
	SliderThumbPad  = 4
	SliderLabelRise = 30

	// Left panel headings and info panel text, panel local coordinates
	HeadingX      = 30
	SelectHeaderY = 50
	ParamsHeaderY = WindowHeight - 260
	FactX         = 20
	FactY         = 20

	// Info page text
	InfoTextX      = 100
	InfoTitleY     = 100
	InfoFirstLineY = 170
	InfoLineStride = 50

	// Stroke widths in pixels
	BorderWidth = 2
	GridWidth   = 1
	CurveWidth  = 3

	// Text sizes in pixels
	TitleSize   = 48
	HeadingSize = 36
	SectionSize = 28
	BodySize    = 24
	FactSize    = 22
	LabelSize   = 20
)

var (
	ColorBG         = nrgba(0.12, 0.12, 0.16, 1)
	ColorPanel      = nrgba(0.18, 0.18, 0.22, 1)
	ColorAccent     = nrgba(0.26, 0.59, 0.98, 1)
	ColorText       = nrgba(0.9, 0.9, 0.9, 1)
	ColorHighlight  = nrgba(0.32, 0.64, 1.0, 1)
	ColorButton     = nrgba(0.2, 0.2, 0.3, 1)
	ColorButtonOver = nrgba(0.3, 0.3, 0.4, 1)
	ColorGrid       = nrgba(0.4, 0.4, 0.4, 0.3)
)

// nrgba converts a 0-1 float color into 8-bit non-premultiplied channels.
func nrgba(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: uint8(a * 255)}
}
